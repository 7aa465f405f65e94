package application

type RunOptions struct {
	// Verbose enables progress logging at the pipeline checkpoints.
	Verbose bool
	// Trim caps how many incidents per assignment group reach the output. Zero or less disables it.
	Trim int
}
