package health

// Input represents the input for the root probe endpoint.
type Input struct{}

// Output carries no body: the probe answers with a bare 200.
type Output struct{}
