// Package led pushes serialized frames to a strand.
package led

// Driver abstracts an LED output sink.
type Driver interface {
	// Write pushes an RGB frame to the strand. len(rgb) must be 3*N.
	Write(rgb []byte) error
	// Close blanks the strand and releases resources.
	Close() error
}
