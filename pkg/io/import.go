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

// ReadJSON decodes a report model from r and validates it.
//
// The input is a JSON object with the report's camelCase field names:
//
//	{
//	  "title": "Daily Operations Report",
//	  "dateLabel": "Monday, 6 May 2024",
//	  "groupedHeaders": [{"category": "Feed", "parameters": [{"id": "feed_rate", "label": "Feed (t/h)", "dataType": "number"}]}],
//	  "rows": [{"hour": 1, "shiftLabel": "Shift 1", "values": {"feed_rate": 180.5}}]
//	}
//
// Malformed JSON returns errors.ErrCodeInvalidFormat; structural problems such
// as duplicate parameter IDs return errors.ErrCodeInvalidInput. Irregular
// individual values are accepted and render as placeholders.
//
// ReadJSON does not close r.
func ReadJSON(r io.Reader) (report.Model, error) {
	var m report.Model
	if err := json.NewDecoder(r).Decode(&m); err != nil {
		return report.Model{}, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode json")
	}
	if err := m.Validate(); err != nil {
		return report.Model{}, err
	}
	return m, nil
}

// ReadYAML decodes a report model from YAML using the same field names as
// [ReadJSON].
func ReadYAML(r io.Reader) (report.Model, error) {
	var m report.Model
	if err := yaml.NewDecoder(r).Decode(&m); err != nil {
		if err == io.EOF {
			return report.Model{}, errors.New(errors.ErrCodeInvalidFormat, "decode yaml: empty document")
		}
		return report.Model{}, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode yaml")
	}
	if err := m.Validate(); err != nil {
		return report.Model{}, err
	}
	return m, nil
}

// ImportFile reads a report model from path, choosing the decoder by file
// extension: .json, or .yaml and .yml.
func ImportFile(path string) (report.Model, error) {
	read, err := readerFor(path)
	if err != nil {
		return report.Model{}, err
	}

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return report.Model{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
		}
		return report.Model{}, errors.Wrap(errors.ErrCodeInvalidPath, err, "open %s", path)
	}
	defer f.Close()

	m, err := read(f)
	if err != nil {
		return report.Model{}, errors.Wrap(errors.GetCode(err), err, "%s", path)
	}
	return m, nil
}

func readerFor(path string) (func(io.Reader) (report.Model, error), error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		return ReadJSON, nil
	case ".yaml", ".yml":
		return ReadYAML, nil
	default:
		return nil, errors.New(errors.ErrCodeUnsupported, "unsupported input extension %q (want .json, .yaml, or .yml)", ext)
	}
}
