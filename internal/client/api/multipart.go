package api

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
)

// MultipartBody accumulates a multipart/form-data request body, mirroring
// the browser's FormData. Build it with WriteField/WriteFile, then hand it
// to Client.Do; Finish is called by the gateway.
type MultipartBody struct {
	buf bytes.Buffer
	w   *multipart.Writer
	err error
}

func NewMultipartBody() *MultipartBody {
	m := &MultipartBody{}
	m.w = multipart.NewWriter(&m.buf)
	return m
}

// WriteField adds a simple form field. Errors are sticky and surface from
// Finish.
func (m *MultipartBody) WriteField(name, value string) *MultipartBody {
	if m.err == nil {
		m.err = m.w.WriteField(name, value)
	}
	return m
}

// WriteFile adds the contents of the file at path under the given field
// name, keeping the file's base name.
func (m *MultipartBody) WriteFile(field, path string) *MultipartBody {
	if m.err != nil {
		return m
	}

	f, err := os.Open(path)
	if err != nil {
		m.err = fmt.Errorf("open %s: %w", path, err)
		return m
	}
	defer f.Close()

	part, err := m.w.CreateFormFile(field, filepath.Base(path))
	if err != nil {
		m.err = err
		return m
	}
	if _, err := io.Copy(part, f); err != nil {
		m.err = fmt.Errorf("read %s: %w", path, err)
	}
	return m
}

// Finish closes the writer and returns the body reader and its Content-Type
// (including the boundary).
func (m *MultipartBody) Finish() (io.Reader, string, error) {
	if m.err != nil {
		return nil, "", m.err
	}
	if err := m.w.Close(); err != nil {
		return nil, "", err
	}
	return &m.buf, m.w.FormDataContentType(), nil
}
