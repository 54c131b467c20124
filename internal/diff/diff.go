// Package diff compares two GraphQL type graphs and classifies every
// difference as breaking or backward compatible.
package diff

import (
	"regexp"
	"strconv"

	"github.com/heneryville/graphql-schema-utils/internal/schema"
)

// Diff is one difference found between a receiver ("this") and another type.
// This or Other is nil when the type is missing on that side.
type Diff struct {
	This               *schema.Type
	Other              *schema.Type
	Kind               Kind
	Description        string
	BackwardCompatible bool

	// Set only for ArgDescriptionDiff.
	ThisField  *schema.Field
	OtherField *schema.Field
}

func newDiff(this, other *schema.Type, kind Kind, description string, compatible bool) Diff {
	return Diff{This: this, Other: other, Kind: kind, Description: description, BackwardCompatible: compatible}
}

func (d Diff) String() string {
	return `[diffType=` + string(d.Kind) + `, description="` + d.Description + `"]`
}

// Key is the identity used when removing duplicates.
func (d Diff) Key() string { return d.String() }

const (
	labelForThisSchema  = "this schema"
	labelForOtherSchema = "other schema"
	labelForThisType    = "this type"
	labelForOtherType   = "other type"
)

// Options names the two sides in rendered descriptions. Empty labels fall
// back to defaults that depend on whether schemas or single types are compared.
type Options struct {
	LabelForThis  string
	LabelForOther string
}

func (o Options) withDefaults(this, other string) Options {
	if o.LabelForThis == "" {
		o.LabelForThis = this
	}
	if o.LabelForOther == "" {
		o.LabelForOther = other
	}
	return o
}

var placeholder = regexp.MustCompile(`{(\d+)}`)

// Format substitutes {N} placeholders with the N-th argument. Placeholders
// without a matching argument are left as they are.
func Format(template string, args ...string) string {
	return placeholder.ReplaceAllStringFunc(template, func(match string) string {
		n, err := strconv.Atoi(match[1 : len(match)-1])
		if err != nil || n >= len(args) {
			return match
		}
		return args[n]
	})
}

// Dedupe drops every diff whose Key was already seen, keeping order.
func Dedupe(diffs []Diff) []Diff {
	seen := make(map[string]bool, len(diffs))
	out := make([]Diff, 0, len(diffs))
	for _, d := range diffs {
		if seen[d.Key()] {
			continue
		}
		seen[d.Key()] = true
		out = append(out, d)
	}
	return out
}

// Breaking returns the diffs that are not backward compatible.
func Breaking(diffs []Diff) []Diff {
	return filter(diffs, false)
}

// Compatible returns the backward compatible diffs.
func Compatible(diffs []Diff) []Diff {
	return filter(diffs, true)
}

func HasBreaking(diffs []Diff) bool {
	for _, d := range diffs {
		if !d.BackwardCompatible {
			return true
		}
	}
	return false
}

func filter(diffs []Diff, compatible bool) []Diff {
	var out []Diff
	for _, d := range diffs {
		if d.BackwardCompatible == compatible {
			out = append(out, d)
		}
	}
	return out
}
