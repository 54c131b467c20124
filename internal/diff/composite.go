package diff

import (
	"strings"

	"github.com/heneryville/graphql-schema-utils/internal/schema"
)

// compareComposites handles objects, interfaces and input objects.
func compareComposites(this, other *schema.Type, opts Options) []Diff {
	diffs := compareFields(this, other, opts)
	diffs = append(diffs, descriptionDiffs(this, other, opts)...)
	if this.Kind == schema.TypeKindObject {
		diffs = append(diffs, compareInterfaces(this, other, opts)...)
	}
	return diffs
}

// fieldsOf exposes input fields as fields without an argument list so that
// all composite kinds share one comparison.
func fieldsOf(t *schema.Type) []*schema.Field {
	if t.Kind != schema.TypeKindInputObject {
		return t.Fields
	}
	fields := make([]*schema.Field, 0, len(t.InputFields))
	for _, in := range t.InputFields {
		fields = append(fields, &schema.Field{
			Name:              in.Name,
			Description:       in.Description,
			Type:              in.Type,
			IsDeprecated:      in.IsDeprecated,
			DeprecationReason: in.DeprecationReason,
		})
	}
	return fields
}

func fieldIndex(fields []*schema.Field) map[string]*schema.Field {
	index := make(map[string]*schema.Field, len(fields))
	for _, f := range fields {
		index[f.Name] = f
	}
	return index
}

func compareFields(this, other *schema.Type, opts Options) []Diff {
	thisFields, otherFields := fieldsOf(this), fieldsOf(other)
	thisIndex, otherIndex := fieldIndex(thisFields), fieldIndex(otherFields)

	var diffs []Diff
	for _, thisField := range thisFields {
		otherField, ok := otherIndex[thisField.Name]
		if !ok {
			description := Format("Field missing from {0}: `{1}.{2}`.", opts.LabelForOther, this.Name, fieldString(thisField))
			diffs = append(diffs, newDiff(this, other, FieldMissing, description, false))
			continue
		}
		thisSig, otherSig := thisField.Type.String(), otherField.Type.String()
		if thisSig != otherSig {
			description := Format("Field type changed on field {0}.{1} from : `\"{2}\"` to `\"{3}\"`.",
				this.Name, thisField.Name, thisSig, otherSig)
			diffs = append(diffs, newDiff(this, other, FieldDiff, description, false))
		}
		if thisField.Description != otherField.Description {
			description := Format("Description diff on field {0}.{1}. {2}: `\"{3}\"` vs. {4}: `\"{5}\"`.",
				this.Name, thisField.Name, opts.LabelForThis, thisField.Description, opts.LabelForOther, otherField.Description)
			diffs = append(diffs, newDiff(this, other, FieldDescriptionDiff, description, true))
		}
		diffs = append(diffs, compareArguments(this, other, thisField, otherField, opts)...)
		diffs = append(diffs, compareArgDescriptions(this, other, thisField, otherField, opts)...)
	}
	for _, otherField := range otherFields {
		if _, ok := thisIndex[otherField.Name]; ok {
			continue
		}
		description := Format("Field missing from {0}: `{1}.{2}`.", opts.LabelForThis, this.Name, fieldString(otherField))
		diffs = append(diffs, newDiff(this, other, FieldMissing, description, true))
	}
	return diffs
}

// compareArguments is skipped when either field has no argument list.
func compareArguments(this, other *schema.Type, thisField, otherField *schema.Field, opts Options) []Diff {
	if thisField.Arguments == nil || otherField.Arguments == nil {
		return nil
	}
	var diffs []Diff
	for _, arg := range thisField.Arguments {
		otherArg := otherField.Argument(arg.Name)
		if otherArg == nil {
			description := Format("Argument missing from {0}: `{1}.{2}({3}: {4})`.",
				opts.LabelForOther, this.Name, thisField.Name, arg.Name, arg.Type.String())
			diffs = append(diffs, newDiff(this, other, ArgDiff, description, false))
			continue
		}
		if arg.Type.String() != otherArg.Type.String() {
			description := Format("Argument type diff on field {0}.{1}. {2}: `{3}: {4}` vs. {5}: `{6}: {7}.`",
				this.Name, thisField.Name, opts.LabelForThis, arg.Name, arg.Type.String(),
				opts.LabelForOther, otherArg.Name, otherArg.Type.String())
			diffs = append(diffs, newDiff(this, other, ArgDiff, description, false))
		}
	}
	for _, arg := range otherField.Arguments {
		if thisField.Argument(arg.Name) != nil {
			continue
		}
		description := Format("Argument missing from {0}: `{1}.{2}({3}: {4})`.",
			opts.LabelForThis, other.Name, otherField.Name, arg.Name, arg.Type.String())
		diffs = append(diffs, newDiff(this, other, ArgDiff, description, true))
	}
	return diffs
}

// compareArgDescriptions walks the other field's arguments in order.
func compareArgDescriptions(this, other *schema.Type, thisField, otherField *schema.Field, opts Options) []Diff {
	if thisField.Arguments == nil || otherField.Arguments == nil {
		return nil
	}
	var diffs []Diff
	for _, arg := range otherField.Arguments {
		thisArg := thisField.Argument(arg.Name)
		if thisArg == nil || thisArg.Description == arg.Description {
			continue
		}
		description := Format("Description diff on argument {0}.{1}({2}). {3}: `\"{4}\"` vs. {5}: `\"{6}\"`.",
			this.Name, thisField.Name, arg.Name, opts.LabelForThis, thisArg.Description, opts.LabelForOther, arg.Description)
		d := newDiff(this, other, ArgDescriptionDiff, description, true)
		d.ThisField = thisField
		d.OtherField = otherField
		diffs = append(diffs, d)
	}
	return diffs
}

// compareInterfaces emits one diff per direction in which an implemented
// interface is missing.
func compareInterfaces(this, other *schema.Type, opts Options) []Diff {
	if interfacesCovered(this, other) && interfacesCovered(other, this) {
		return nil
	}
	forward := Format("Interface diff on type {0}. {1}: `{2}` vs. {3}: `{4}`.",
		this.Name, opts.LabelForThis, strings.Join(this.Interfaces, ", "),
		opts.LabelForOther, strings.Join(other.Interfaces, ", "))
	backward := Format("Interface diff on type {0}. {1}: `{2}` vs. {3}: `{4}`.",
		other.Name, opts.LabelForOther, strings.Join(other.Interfaces, ", "),
		opts.LabelForThis, strings.Join(this.Interfaces, ", "))
	return []Diff{
		newDiff(this, other, InterfaceDiff, forward, false),
		newDiff(this, other, InterfaceDiff, backward, false),
	}
}

// interfacesCovered reports whether every interface of a is implemented by b.
func interfacesCovered(a, b *schema.Type) bool {
	for _, name := range a.Interfaces {
		found := false
		for _, candidate := range b.Interfaces {
			if candidate == name {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// fieldString renders a field as `name(arg: Type = default, ...): Type`.
func fieldString(f *schema.Field) string {
	var b strings.Builder
	b.WriteString(f.Name)
	if len(f.Arguments) > 0 {
		b.WriteString("(")
		for i, arg := range f.Arguments {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(arg.Name)
			b.WriteString(": ")
			b.WriteString(arg.Type.String())
			if arg.DefaultValue != "" {
				b.WriteString(" = ")
				b.WriteString(arg.DefaultValue)
			}
		}
		b.WriteString(")")
	}
	b.WriteString(": ")
	b.WriteString(f.Type.String())
	return b.String()
}
