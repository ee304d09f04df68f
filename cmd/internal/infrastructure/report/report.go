// Package report turns store collections into the tabular reports of the
// reports page and renders them as text, CSV, markdown, HTML or JSON.
package report

import (
	"encoding/json"
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
)

type Kind string

const (
	KindSites         Kind = "sites"
	KindCandidates    Kind = "candidates"
	KindClients       Kind = "clients"
	KindProjects      Kind = "projects"
	KindCollaborators Kind = "collaborators"
)

var Kinds = []Kind{KindSites, KindCandidates, KindClients, KindProjects, KindCollaborators}

func ParseKind(s string) (Kind, bool) {
	for _, k := range Kinds {
		if string(k) == s {
			return k, true
		}
	}
	return "", false
}

type Format string

const (
	FormatJSON     Format = "json"
	FormatCSV      Format = "csv"
	FormatMarkdown Format = "markdown"
	FormatHTML     Format = "html"
	FormatText     Format = "text"
)

// ParseFormat defaults to JSON when s is empty.
func ParseFormat(s string) (Format, bool) {
	switch Format(s) {
	case "":
		return FormatJSON, true
	case FormatJSON, FormatCSV, FormatMarkdown, FormatHTML, FormatText:
		return Format(s), true
	case "md":
		return FormatMarkdown, true
	}
	return "", false
}

func (f Format) Extension() string {
	switch f {
	case FormatCSV:
		return "csv"
	case FormatMarkdown:
		return "md"
	case FormatHTML:
		return "html"
	case FormatText:
		return "txt"
	default:
		return "json"
	}
}

func (f Format) ContentType() string {
	switch f {
	case FormatCSV:
		return "text/csv; charset=utf-8"
	case FormatMarkdown:
		return "text/markdown; charset=utf-8"
	case FormatHTML:
		return "text/html; charset=utf-8"
	case FormatText:
		return "text/plain; charset=utf-8"
	default:
		return "application/json"
	}
}

type Report struct {
	Kind   Kind       `json:"kind"`
	Title  string     `json:"title"`
	Header []string   `json:"columns"`
	Rows   [][]string `json:"rows"`
}

func (r *Report) Count() int {
	return len(r.Rows)
}

func (r *Report) Render(format Format) ([]byte, error) {
	if format == FormatJSON {
		out, err := json.Marshal(r)
		if err != nil {
			return nil, fmt.Errorf("encoding %s report: %w", r.Kind, err)
		}
		return out, nil
	}

	t := table.NewWriter()
	t.SetStyle(table.StyleLight)

	header := make(table.Row, len(r.Header))
	for i, col := range r.Header {
		header[i] = col
	}
	t.AppendHeader(header)

	for _, values := range r.Rows {
		row := make(table.Row, len(values))
		for i, v := range values {
			row[i] = v
		}
		t.AppendRow(row)
	}

	switch format {
	case FormatCSV:
		return []byte(t.RenderCSV()), nil
	case FormatMarkdown:
		return []byte(t.RenderMarkdown()), nil
	case FormatHTML:
		return []byte(t.RenderHTML()), nil
	case FormatText:
		t.SetTitle(fmt.Sprintf("%s (%d)", r.Title, r.Count()))
		return []byte(t.Render()), nil
	}
	return nil, fmt.Errorf("unsupported report format %q", format)
}
