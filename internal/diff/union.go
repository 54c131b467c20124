package diff

import (
	"sort"
	"strings"

	"github.com/heneryville/graphql-schema-utils/internal/schema"
)

// compareUnions reports membership changes as a single diff; individual
// members are not tracked.
func compareUnions(this, other *schema.Type, opts Options) []Diff {
	diffs := descriptionDiffs(this, other, opts)
	thisMembers, otherMembers := memberString(this), memberString(other)
	if thisMembers != otherMembers {
		description := Format("Difference in union type {0}. {1}: `{2}` vs. {3}: `{4}`.",
			this.Name, opts.LabelForThis, thisMembers, opts.LabelForOther, otherMembers)
		diffs = append(diffs, newDiff(this, other, UnionTypeDiff, description, true))
	}
	return diffs
}

func memberString(t *schema.Type) string {
	names := append([]string(nil), t.PossibleTypes...)
	sort.Strings(names)
	return strings.Join(names, " | ")
}
