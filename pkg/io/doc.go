// Package io reads and writes shift report models as JSON or YAML.
//
// # Overview
//
// A report model usually arrives as an export from the plant dashboard. This
// package decodes it into a [report.Model] and validates the structure the
// renderer depends on (unique parameter IDs). Individual readings are not
// checked: a missing or malformed value renders as a placeholder instead of
// failing the import.
//
// # Format
//
// JSON and YAML share the same camelCase field names:
//
//	title: Daily Operations Report
//	dateLabel: Monday, 6 May 2024
//	groupedHeaders:
//	  - category: Feed
//	    parameters:
//	      - {id: feed_rate, label: Feed (t/h), dataType: number}
//	rows:
//	  - {hour: 1, shiftLabel: Shift 1, values: {feed_rate: 180.5}}
//	operators:
//	  - {shiftLabel: Shift 1, name: Andi Pratama}
//	silo:
//	  - name: Silo A
//	    capacity: 5000
//	    shift1: {emptySpace: 2500, content: 2500}
//	downtime:
//	  - {startTime: "23:30", endTime: "00:15", pic: Electrical, problem: Main drive trip}
//
// The optional "footer" array carries pre-computed statistics; when it is
// absent the pipeline can compute average, min, and max rows itself.
//
// # Import
//
// Use [ImportFile] to read by file extension, or [ReadJSON] and [ReadYAML]
// to read from any io.Reader:
//
//	m, err := io.ImportFile("2024-05-06.yaml")
//
// # Export
//
// [WriteJSON], [WriteYAML], and [ExportFile] write a model back out, for
// example the built-in sample produced by "shiftreport sample".
//
// [report.Model]: github.com/matzehuels/shiftreport/pkg/report.Model
package io
