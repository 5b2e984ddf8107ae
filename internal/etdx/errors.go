package etdx

import "fmt"

// LoadError reports a missing or malformed base template. It is fatal:
// no unit work starts until the template loads cleanly.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load template %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// ValidationError reports input that was rejected before any filesystem
// mutation, such as a wrong image count.
type ValidationError struct {
	Unit string
	Msg  string
}

func (e *ValidationError) Error() string {
	if e.Unit != "" {
		return fmt.Sprintf("unit %s: %s", e.Unit, e.Msg)
	}
	return e.Msg
}

// ImageReadError reports an unreadable or undecodable source image. It
// aborts only the unit being packaged; earlier units in the same batch
// remain valid.
type ImageReadError struct {
	Unit string
	Path string
	Err  error
}

func (e *ImageReadError) Error() string {
	return fmt.Sprintf("unit %s: read image %s: %v", e.Unit, e.Path, e.Err)
}

func (e *ImageReadError) Unwrap() error {
	return e.Err
}
