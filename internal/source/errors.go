package source

import (
	"errors"
	"fmt"
	"syscall"
)

// ErrResourceExhausted marks a failure to obtain another OS handle.
var ErrResourceExhausted = errors.New("resource exhausted")

// ErrUnsupported marks a file that is neither an image, a video nor a PDF.
var ErrUnsupported = errors.New("unsupported media")

// AssetError is a failure to read or decode one source file.
type AssetError struct {
	Path string
	Err  error
}

func (e *AssetError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *AssetError) Unwrap() error {
	return e.Err
}

func assetError(path string, err error) error {
	if errors.Is(err, syscall.EMFILE) || errors.Is(err, syscall.ENFILE) || errors.Is(err, syscall.ENOMEM) {
		err = fmt.Errorf("%w: %v", ErrResourceExhausted, err)
	}
	return &AssetError{Path: path, Err: err}
}
