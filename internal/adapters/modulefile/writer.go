package modulefile

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"

	"go.trai.ch/pkgmod/internal/core/domain"
	"go.trai.ch/zerr"
)

// Writer implements ports.ModulefileWriter by storing the tcl rendering
// at <dir>/<name>/<version>, the layout module avail expects.
type Writer struct {
	renderer *Renderer
}

// NewWriter creates a new Writer.
func NewWriter(renderer *Renderer) *Writer {
	return &Writer{renderer: renderer}
}

// Write renders and atomically stores the modulefile of record below dir.
func (w *Writer) Write(dir string, record domain.InstallationRecord, descriptor domain.EnvironmentDescriptor) (string, error) {
	var buf bytes.Buffer
	if err := w.renderer.Render(&buf, FormatTcl, record, descriptor); err != nil {
		return "", err
	}

	path := domain.InstallPath(dir, record.Name, record.Version)
	if err := os.MkdirAll(filepath.Dir(path), domain.SharedDirPerm); err != nil {
		return "", zerr.With(errors.Join(domain.ErrModulefileWriteFailed, err), "path", path)
	}
	if err := atomicWriteFile(path, buf.Bytes()); err != nil {
		return "", zerr.With(errors.Join(domain.ErrModulefileWriteFailed, err), "path", path)
	}
	return path, nil
}

// atomicWriteFile writes data to a temporary file and renames it over path.
func atomicWriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmpFile, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmpFile.Name()

	success := false
	defer func() {
		if !success {
			_ = tmpFile.Close()
			_ = os.Remove(tmpName)
		}
	}()

	if _, err = tmpFile.Write(data); err != nil {
		return err
	}
	if err = tmpFile.Sync(); err != nil {
		return err
	}
	if err = tmpFile.Close(); err != nil {
		return err
	}
	if err = os.Chmod(tmpName, domain.FilePerm); err != nil {
		return err
	}
	if err = os.Rename(tmpName, path); err != nil {
		return err
	}

	success = true
	return nil
}
