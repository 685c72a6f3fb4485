package main

import (
	"talkerbase/cmd/client/cmd"
)

func main() {
	cmd.Execute()
}
