package clearpng

import "fmt"

// A DecodeError is returned when a file exists but does
// not hold a valid PNG image.
type DecodeError struct {
	Path string
	Err  error
}

func (d *DecodeError) Error() string {
	return fmt.Sprintf("decode %s: %v", d.Path, d.Err)
}

func (d *DecodeError) Unwrap() error {
	return d.Err
}

// A WriteError is returned when the converted image cannot
// be saved.
type WriteError struct {
	Path string
	Err  error
}

func (w *WriteError) Error() string {
	return fmt.Sprintf("write %s: %v", w.Path, w.Err)
}

func (w *WriteError) Unwrap() error {
	return w.Err
}
