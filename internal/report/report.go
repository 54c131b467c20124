// Package report summarizes diff results and writes them as text, JSON or
// YAML.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"go.yaml.in/yaml/v4"

	"github.com/heneryville/graphql-schema-utils/internal/diff"
)

// Output formats accepted by Write.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// ValidFormats lists the formats in the order they are documented.
var ValidFormats = []string{FormatText, FormatJSON, FormatYAML}

// ValidateFormat returns an error when format is not one of ValidFormats.
func ValidateFormat(format string) error {
	for _, f := range ValidFormats {
		if format == f {
			return nil
		}
	}
	return fmt.Errorf("invalid format %q: expected one of %s", format, strings.Join(ValidFormats, ", "))
}

// Report is a diff result with its counts.
type Report struct {
	Diffs              []diff.Diff
	BreakingCount      int
	CompatibleCount    int
	HasBreakingChanges bool
	CountsByKind       map[diff.Kind]int
}

// Summarize counts diffs by compatibility and kind. Diffs keep their order.
func Summarize(diffs []diff.Diff) Report {
	r := Report{Diffs: diffs, CountsByKind: make(map[diff.Kind]int)}
	for _, d := range diffs {
		if d.BackwardCompatible {
			r.CompatibleCount++
		} else {
			r.BreakingCount++
		}
		r.CountsByKind[d.Kind]++
	}
	r.HasBreakingChanges = r.BreakingCount > 0
	return r
}

// Write renders r to w. Text output is colored when styled is set; the
// structured formats ignore it.
func Write(w io.Writer, r Report, format string, styled bool) error {
	if err := ValidateFormat(format); err != nil {
		return err
	}

	var (
		data []byte
		err  error
	)
	switch format {
	case FormatText:
		_, err = io.WriteString(w, text(r, styled))
		return err
	case FormatJSON:
		data, err = json.MarshalIndent(structured(r), "", "  ")
		data = append(data, '\n')
	case FormatYAML:
		data, err = yaml.Marshal(structured(r))
	}
	if err != nil {
		return fmt.Errorf("marshal %s report: %w", format, err)
	}
	_, err = w.Write(data)
	return err
}

// document is the serializable view of a Report. Types are referenced by
// name so the output does not embed the graphs.
type document struct {
	Summary summary `json:"summary" yaml:"summary"`
	Diffs   []entry `json:"diffs" yaml:"diffs"`
}

type summary struct {
	Total              int            `json:"total" yaml:"total"`
	Breaking           int            `json:"breaking" yaml:"breaking"`
	Compatible         int            `json:"compatible" yaml:"compatible"`
	HasBreakingChanges bool           `json:"hasBreakingChanges" yaml:"hasBreakingChanges"`
	ByKind             map[string]int `json:"byKind,omitempty" yaml:"byKind,omitempty"`
}

type entry struct {
	Kind               string `json:"kind" yaml:"kind"`
	Description        string `json:"description" yaml:"description"`
	BackwardCompatible bool   `json:"backwardCompatible" yaml:"backwardCompatible"`
	ThisType           string `json:"thisType,omitempty" yaml:"thisType,omitempty"`
	OtherType          string `json:"otherType,omitempty" yaml:"otherType,omitempty"`
	ThisField          string `json:"thisField,omitempty" yaml:"thisField,omitempty"`
	OtherField         string `json:"otherField,omitempty" yaml:"otherField,omitempty"`
}

func structured(r Report) document {
	doc := document{
		Summary: summary{
			Total:              len(r.Diffs),
			Breaking:           r.BreakingCount,
			Compatible:         r.CompatibleCount,
			HasBreakingChanges: r.HasBreakingChanges,
		},
		Diffs: make([]entry, 0, len(r.Diffs)),
	}
	if len(r.CountsByKind) > 0 {
		doc.Summary.ByKind = make(map[string]int, len(r.CountsByKind))
		for k, n := range r.CountsByKind {
			doc.Summary.ByKind[string(k)] = n
		}
	}
	for _, d := range r.Diffs {
		e := entry{
			Kind:               string(d.Kind),
			Description:        d.Description,
			BackwardCompatible: d.BackwardCompatible,
		}
		if d.This != nil {
			e.ThisType = d.This.Name
		}
		if d.Other != nil {
			e.OtherType = d.Other.Name
		}
		if d.ThisField != nil {
			e.ThisField = d.ThisField.Name
		}
		if d.OtherField != nil {
			e.OtherField = d.OtherField.Name
		}
		doc.Diffs = append(doc.Diffs, e)
	}
	return doc
}
