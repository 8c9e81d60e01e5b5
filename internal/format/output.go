package format

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
)

// Write writes output in the requested format.
//
// Supported formats:
// - json (default)
// - table
func Write(w io.Writer, v any, format string, pretty bool) error {
	switch format {
	case "", "json":
		return WriteJSON(w, v, pretty)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// WriteJSON writes strict JSON output for CLI commands.
func WriteJSON(w io.Writer, v any, pretty bool) error {
	var b []byte
	var err error
	if pretty {
		b, err = json.MarshalIndent(v, "", "  ")
	} else {
		b, err = json.Marshal(v)
	}
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, string(b))
	return err
}

// WriteTable writes a column-aligned table for human consumption. Headers
// are bolded when the writer supports color.
func WriteTable(w io.Writer, headers []string, rows [][]any) error {
	t := uitable.New()
	t.MaxColWidth = 60
	t.Wrap = true

	bold := color.New(color.Bold)
	hdr := make([]any, len(headers))
	for i, h := range headers {
		hdr[i] = bold.Sprint(h)
	}
	t.AddRow(hdr...)
	for _, r := range rows {
		t.AddRow(r...)
	}

	_, err := fmt.Fprintln(w, t.String())
	return err
}
