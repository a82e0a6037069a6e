package io

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/matzehuels/shiftreport/pkg/errors"
	"github.com/matzehuels/shiftreport/pkg/report"
)

// WriteJSON encodes m as indented JSON. The output can be read back with [ReadJSON].
func WriteJSON(m report.Model, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(m); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode json")
	}
	return nil
}

// WriteYAML encodes m as YAML. The output can be read back with [ReadYAML].
func WriteYAML(m report.Model, w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(m); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode yaml")
	}
	if err := enc.Close(); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode yaml")
	}
	return nil
}

// ExportFile writes m to path as JSON or YAML depending on the extension.
func ExportFile(m report.Model, path string) error {
	if err := errors.ValidateOutputPath(path); err != nil {
		return err
	}
	write := WriteJSON
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
	case ".yaml", ".yml":
		write = WriteYAML
	default:
		return errors.New(errors.ErrCodeUnsupported, "unsupported output extension %q (want .json, .yaml, or .yml)", ext)
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "create %s", path)
	}
	if err := write(m, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
