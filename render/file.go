package render

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tsawler/deckbuilder/model"
)

// IOError reports a failure to produce an output file. On an IOError no
// file is left at Path.
type IOError struct {
	Op   string // encode, create, write, sync, close, chmod, rename, preview
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// WriteFile encodes doc and writes it to path. The package is encoded in
// memory, written to a temporary file beside path and renamed into place,
// so path either holds the complete deck or is untouched. Every failure
// is returned as an *IOError.
func WriteFile(doc *model.Document, path string) error {
	var buf bytes.Buffer
	if err := Encode(doc, &buf); err != nil {
		return &IOError{Op: "encode", Path: path, Err: err}
	}
	return writeFileAtomic(path, buf.Bytes(), 0o644)
}

func writeFileAtomic(path string, data []byte, perm os.FileMode) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return &IOError{Op: "create", Path: path, Err: err}
	}
	name := tmp.Name()
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(name)
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		return &IOError{Op: "write", Path: path, Err: err}
	}
	if err = tmp.Sync(); err != nil {
		return &IOError{Op: "sync", Path: path, Err: err}
	}
	if err = tmp.Close(); err != nil {
		return &IOError{Op: "close", Path: path, Err: err}
	}
	if err = os.Chmod(name, perm); err != nil {
		return &IOError{Op: "chmod", Path: path, Err: err}
	}
	if err = os.Rename(name, path); err != nil {
		return &IOError{Op: "rename", Path: path, Err: err}
	}
	return nil
}
