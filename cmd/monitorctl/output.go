package main

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/ygrebnov/monitoring"
)

type attributeView struct {
	Name  string `json:"name" yaml:"name"`
	Value any    `json:"value" yaml:"value"`
}

type entryView struct {
	Identifier string          `json:"identifier" yaml:"identifier"`
	Attributes []attributeView `json:"attributes,omitempty" yaml:"attributes,omitempty"`
	Error      string          `json:"error,omitempty" yaml:"error,omitempty"`
}

func toViews(entries []monitoring.Entry) []entryView {
	out := make([]entryView, 0, len(entries))
	for _, e := range entries {
		v := entryView{Identifier: e.Identifier.String()}
		if e.Err != nil {
			v.Error = e.Err.Error()
		}
		for _, attr := range e.Attributes {
			v.Attributes = append(v.Attributes, attributeView{Name: attr.Name, Value: attr.Value.Interface()})
		}
		out = append(out, v)
	}
	return out
}

func writeEntries(w io.Writer, format string, entries []monitoring.Entry) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(toViews(entries))
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(toViews(entries)); err != nil {
			return err
		}
		return enc.Close()
	default:
		for _, e := range entries {
			if _, err := fmt.Fprintln(w, e.Identifier); err != nil {
				return err
			}
			if e.Err != nil {
				fmt.Fprintf(w, "  error: %v\n", e.Err)
				continue
			}
			for _, attr := range e.Attributes {
				fmt.Fprintf(w, "  %s = %s\n", attr.Name, attr.Value)
			}
		}
		return nil
	}
}

func writeEvents(w io.Writer, events []monitoring.Event) error {
	for _, e := range events {
		if _, err := fmt.Fprintf(w, "%s %-12s %s\n", e.At.UTC().Format(time.RFC3339Nano), e.Kind, e.Identifier); err != nil {
			return err
		}
	}
	return nil
}
