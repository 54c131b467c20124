package diff

import (
	"github.com/heneryville/graphql-schema-utils/internal/schema"
)

// Schemas compares every type of this against the same-named type of other.
// Types only present in other are reported as compatible TypeMissing diffs.
// A nil other is compared as an empty graph.
func Schemas(this, other *schema.Schema, opts Options) ([]Diff, error) {
	opts = opts.withDefaults(labelForThisSchema, labelForOtherSchema)
	if err := schema.CheckSchema(opts.LabelForThis, this); err != nil {
		return nil, err
	}
	if other == nil {
		other = schema.NewSchema("")
	}
	if err := schema.CheckSchema(opts.LabelForOther, other); err != nil {
		return nil, err
	}

	var diffs []Diff
	for _, name := range this.TypeNames() {
		diffs = append(diffs, compareTypes(this.Types[name], other.Types[name], opts)...)
	}
	for _, name := range other.TypeNames() {
		if _, ok := this.Types[name]; ok {
			continue
		}
		description := Format("Type missing from {0}: `{1}`.", opts.LabelForThis, name)
		diffs = append(diffs, newDiff(nil, other.Types[name], TypeMissing, description, true))
	}
	return diffs, nil
}

// Types compares a single pair of named types. A nil other reports this as
// removed.
func Types(this, other *schema.Type, opts Options) ([]Diff, error) {
	opts = opts.withDefaults(labelForThisType, labelForOtherType)
	if err := schema.CheckType(opts.LabelForThis, this); err != nil {
		return nil, err
	}
	if other != nil {
		if err := schema.CheckType(opts.LabelForOther, other); err != nil {
			return nil, err
		}
	}
	return compareTypes(this, other, opts), nil
}

func compareTypes(this, other *schema.Type, opts Options) []Diff {
	if diffs := commonTypeDiffs(this, other, opts); diffs != nil {
		return diffs
	}
	switch this.Kind {
	case schema.TypeKindScalar:
		return descriptionDiffs(this, other, opts)
	case schema.TypeKindEnum:
		return compareEnums(this, other, opts)
	case schema.TypeKindUnion:
		return compareUnions(this, other, opts)
	case schema.TypeKindObject, schema.TypeKindInterface, schema.TypeKindInputObject:
		return compareComposites(this, other, opts)
	}
	return nil
}

// commonTypeDiffs returns the first preamble difference, or nil when the
// kind-specific comparison should run.
func commonTypeDiffs(this, other *schema.Type, opts Options) []Diff {
	if other == nil {
		description := Format("Type missing from {0}: `{1}`.", opts.LabelForOther, this.Name)
		return []Diff{newDiff(this, nil, TypeMissing, description, false)}
	}
	if this.Kind != other.Kind {
		description := Format("Type mismatch: {0}: `{1}: {2}` vs. {3}: `{4}: {5}`.",
			opts.LabelForThis, this.Name, string(this.Kind), opts.LabelForOther, other.Name, string(other.Kind))
		return []Diff{newDiff(this, other, BaseTypeDiff, description, true)}
	}
	if this.Name != other.Name {
		description := Format("Type name difference. {0}: `{1}` vs. {2}: `{3}`.",
			opts.LabelForThis, this.Name, opts.LabelForOther, other.Name)
		return []Diff{newDiff(this, other, TypeNameDiff, description, true)}
	}
	return nil
}

func descriptionDiffs(this, other *schema.Type, opts Options) []Diff {
	if this.Description == other.Description {
		return nil
	}
	description := Format("Description diff on type {0}. {1}: `\"{2}\"` vs. {3}: `\"{4}\"`.",
		this.Name, opts.LabelForThis, this.Description, opts.LabelForOther, other.Description)
	return []Diff{newDiff(this, other, TypeDescriptionDiff, description, true)}
}
