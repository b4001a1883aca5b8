package content

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
)

// ReadJSON reads the file at path and decodes it into v.
func ReadJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return &LoadError{Path: path, Message: "failed to read file", Cause: err}
	}
	if err := json.Unmarshal(data, v); err != nil {
		return &LoadError{Path: path, Message: "failed to parse JSON in", Cause: err}
	}
	return nil
}

// WriteJSON encodes v and writes it to path. indent > 0 pretty prints with that many spaces.
// HTML characters are not escaped. The file is written next to path first and renamed into
// place, so readers never observe a partially written file.
func WriteJSON(path string, v any, indent int) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if indent > 0 {
		enc.SetIndent("", strings.Repeat(" ", indent))
	}
	if err := enc.Encode(v); err != nil {
		return &LoadError{Path: path, Message: "failed to encode JSON for", Cause: err}
	}
	data := bytes.TrimRight(buf.Bytes(), "\n")

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return &LoadError{Path: dir, Message: "failed to create output directory", Cause: err}
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return &LoadError{Path: path, Message: "failed to create temporary file for", Cause: err}
	}
	tmpPath := tmp.Name()
	defer func() { _ = os.Remove(tmpPath) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return &LoadError{Path: tmpPath, Message: "failed to write", Cause: err}
	}
	if err := tmp.Close(); err != nil {
		return &LoadError{Path: tmpPath, Message: "failed to close", Cause: err}
	}
	if err := os.Chmod(tmpPath, 0644); err != nil {
		return &LoadError{Path: tmpPath, Message: "failed to set permissions on", Cause: err}
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return &LoadError{Path: path, Message: "failed to move output into place at", Cause: err}
	}
	return nil
}
