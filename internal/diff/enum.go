package diff

import (
	"github.com/heneryville/graphql-schema-utils/internal/schema"
)

func compareEnums(this, other *schema.Type, opts Options) []Diff {
	var diffs []Diff
	for _, value := range this.EnumValues {
		otherValue := other.EnumValue(value.Name)
		if otherValue == nil {
			description := Format("Enum value missing from {0}: `\"{1}.{2}\"`.", opts.LabelForOther, other.Name, value.Name)
			diffs = append(diffs, newDiff(this, other, EnumDiff, description, false))
			continue
		}
		if value.Description != otherValue.Description {
			description := Format("Description diff on enum value {0}.{1}. {2}: `\"{3}\"` vs. {4}: `\"{5}\"`.",
				this.Name, value.Name, opts.LabelForThis, value.Description, opts.LabelForOther, otherValue.Description)
			diffs = append(diffs, newDiff(this, other, EnumDiff, description, true))
		}
		if thisStatus, otherStatus := deprecationStatus(value), deprecationStatus(otherValue); thisStatus != otherStatus {
			description := Format("Deprecation diff on enum value {0}.{1}. {2}: `{3}` vs. {4}: `\"{5}\"`.",
				this.Name, value.Name, opts.LabelForThis, thisStatus, opts.LabelForOther, otherStatus)
			diffs = append(diffs, newDiff(this, other, EnumDiff, description, true))
		}
	}
	for _, value := range other.EnumValues {
		if this.EnumValue(value.Name) != nil {
			continue
		}
		description := Format("Enum value missing from {0}: `\"{1}.{2}\"`.", opts.LabelForThis, other.Name, value.Name)
		diffs = append(diffs, newDiff(this, other, EnumDiff, description, true))
	}
	diffs = append(diffs, descriptionDiffs(this, other, opts)...)
	return Dedupe(diffs)
}

func deprecationStatus(v *schema.EnumValue) string {
	if v.IsDeprecated {
		return "is deprecated (" + v.DeprecationReason + ")"
	}
	return "is not deprecated"
}
