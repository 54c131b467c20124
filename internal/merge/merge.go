// Package merge combines two GraphQL type graphs into a new one. On conflicts
// the other graph's definitions win, while interface and union member sets
// are unioned. Inputs are never modified.
package merge

import (
	"github.com/heneryville/graphql-schema-utils/internal/schema"
	"github.com/heneryville/graphql-schema-utils/internal/schemaerr"
)

// Schemas merges other into a copy of this. A nil other yields a copy of this.
func Schemas(this, other *schema.Schema) (*schema.Schema, error) {
	if err := schema.CheckSchema("this schema", this); err != nil {
		return nil, err
	}
	if other == nil {
		return this.Clone(), nil
	}
	if err := schema.CheckSchema("other schema", other); err != nil {
		return nil, err
	}

	merged := schema.NewSchema(this.Description)
	merged.QueryType = firstNonEmpty(this.QueryType, other.QueryType)
	merged.MutationType = firstNonEmpty(this.MutationType, other.MutationType)
	merged.SubscriptionType = firstNonEmpty(this.SubscriptionType, other.SubscriptionType)
	if merged.Description == "" {
		merged.Description = other.Description
	}

	for _, name := range this.TypeNames() {
		t, err := mergeTypes(this.Types[name], other.Types[name])
		if err != nil {
			return nil, err
		}
		merged.AddType(t)
	}
	for _, name := range other.TypeNames() {
		if _, ok := this.Types[name]; !ok {
			merged.AddType(other.Types[name].Clone())
		}
	}

	for _, d := range this.Directives {
		merged.AddDirective(d.Clone())
	}
	for name, d := range other.Directives {
		if _, ok := this.Directives[name]; !ok {
			merged.AddDirective(d.Clone())
		}
	}
	return merged, nil
}

// Types merges a single pair of named types.
func Types(this, other *schema.Type) (*schema.Type, error) {
	if err := schema.CheckType("this type", this); err != nil {
		return nil, err
	}
	if other != nil {
		if err := schema.CheckType("other type", other); err != nil {
			return nil, err
		}
	}
	return mergeTypes(this, other)
}

func mergeTypes(this, other *schema.Type) (*schema.Type, error) {
	if other == nil {
		return this.Clone(), nil
	}
	if this.Kind != other.Kind {
		return nil, &schemaerr.MergeError{TypeName: this.Name, ThisKind: string(this.Kind), OtherKind: string(other.Kind)}
	}
	switch this.Kind {
	case schema.TypeKindObject, schema.TypeKindInterface:
		merged := this.Clone()
		merged.Fields = mergeFields(merged.Fields, other.Fields)
		if this.Kind == schema.TypeKindObject {
			merged.Interfaces = union(this.Interfaces, other.Interfaces)
		}
		return merged, nil
	case schema.TypeKindInputObject:
		merged := this.Clone()
		merged.InputFields = mergeInputFields(merged.InputFields, other.InputFields)
		return merged, nil
	case schema.TypeKindUnion:
		merged := this.Clone()
		merged.PossibleTypes = union(this.PossibleTypes, other.PossibleTypes)
		return merged, nil
	default:
		// Scalars and enums have no member-level merge.
		return other.Clone(), nil
	}
}

// TypeRefs resolves a pair of references: other wins whenever present.
func TypeRefs(this, other *schema.TypeRef) *schema.TypeRef {
	if other != nil {
		return other.Clone()
	}
	return this.Clone()
}

// mergeFields replaces same-named fields in place with copies of other's
// and appends the fields only other has.
func mergeFields(fields, other []*schema.Field) []*schema.Field {
	index := make(map[string]int, len(fields))
	for i, f := range fields {
		index[f.Name] = i
	}
	for _, f := range other {
		if i, ok := index[f.Name]; ok {
			fields[i] = f.Clone()
			continue
		}
		index[f.Name] = len(fields)
		fields = append(fields, f.Clone())
	}
	return fields
}

func mergeInputFields(fields, other []*schema.InputValue) []*schema.InputValue {
	index := make(map[string]int, len(fields))
	for i, f := range fields {
		index[f.Name] = i
	}
	for _, f := range other {
		if i, ok := index[f.Name]; ok {
			fields[i] = f.Clone()
			continue
		}
		index[f.Name] = len(fields)
		fields = append(fields, f.Clone())
	}
	return fields
}

// union returns a followed by the names of b not already in a.
func union(a, b []string) []string {
	seen := make(map[string]bool, len(a)+len(b))
	out := make([]string, 0, len(a)+len(b))
	for _, names := range [][]string{a, b} {
		for _, name := range names {
			if seen[name] {
				continue
			}
			seen[name] = true
			out = append(out, name)
		}
	}
	return out
}

func firstNonEmpty(a, b string) string {
	if a != "" {
		return a
	}
	return b
}
