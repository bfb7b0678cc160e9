package dfc

// DefaultWindowLength is the sliding-window span, in timepoints, used
// when Options.WindowLength is zero.
const DefaultWindowLength = 20

// Options configures a dynamic FC computation.
type Options struct {
	// WindowLength is the sliding-window span in timepoints. Zero selects
	// DefaultWindowLength, negative values are rejected. A span covering
	// the whole series leaves no windows, so the dynamics come out NaN.
	WindowLength int

	// Workers is the number of subjects processed concurrently. Values
	// below 1 select sequential processing. Results do not depend on it.
	Workers int
}

// DefaultOptions returns the default configuration.
func DefaultOptions() Options {
	return Options{
		WindowLength: DefaultWindowLength,
		Workers:      1,
	}
}
