package model

import "fmt"

// UnsupportedLanguageError reports a file whose extension has no
// registered syntax. It is recoverable: batch processing records it
// against the file and keeps going.
type UnsupportedLanguageError struct {
	Path Path
	Ext  string
}

func (e *UnsupportedLanguageError) Error() string {
	return fmt.Sprintf("unsupported language for %s (extension %q)", e.Path, e.Ext)
}

// FileAccessError reports a file that could not be read as source
// text: missing, permission denied, or binary content.
type FileAccessError struct {
	Path Path
	Err  error
}

func (e *FileAccessError) Error() string {
	return fmt.Sprintf("read %s: %v", e.Path, e.Err)
}

func (e *FileAccessError) Unwrap() error {
	return e.Err
}
