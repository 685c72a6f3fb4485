// cmd/client/cmd/init.go
package cmd

import (
	"talkerbase/cmd/client/cmd/talker"
)

func init() {
	rootCmd.AddCommand(loginCmd)

	rootCmd.AddCommand(talker.TalkerCmd)
	talker.TalkerCmd.AddCommand(talker.ListCmd)
	talker.TalkerCmd.AddCommand(talker.GetCmd)
	talker.TalkerCmd.AddCommand(talker.CreateCmd)
	talker.TalkerCmd.AddCommand(talker.UpdateCmd)
	talker.TalkerCmd.AddCommand(talker.DeleteCmd)
}
