package introspection

import (
	"encoding/json"
	"sort"

	"github.com/heneryville/graphql-schema-utils/internal/schema"
)

// Export renders s as a {"data": {"__schema": ...}} introspection result.
// Types and directives are sorted by name; fields, arguments, enum values and
// other members keep their definition order. Deprecated members are always
// included.
func Export(s *schema.Schema) ([]byte, error) {
	return json.MarshalIndent(Document{Data: &payload{Schema: exportSchema(s)}}, "", "  ")
}

func exportSchema(s *schema.Schema) *Schema {
	out := &Schema{
		Description:      optional(s.Description),
		QueryType:        namedRef(s.QueryType),
		MutationType:     namedRef(s.MutationType),
		SubscriptionType: namedRef(s.SubscriptionType),
		Types:            []FullType{},
		Directives:       []Directive{},
	}
	for _, name := range s.TypeNames() {
		out.Types = append(out.Types, exportType(s, s.Types[name]))
	}

	names := make([]string, 0, len(s.Directives))
	for name := range s.Directives {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		d := s.Directives[name]
		out.Directives = append(out.Directives, Directive{
			Name:         d.Name,
			Description:  optional(d.Description),
			Locations:    append([]string{}, d.Locations...),
			Args:         exportInputValues(s, d.Arguments),
			IsRepeatable: d.IsRepeatable,
		})
	}
	return out
}

func exportType(s *schema.Schema, t *schema.Type) FullType {
	ft := FullType{Kind: string(t.Kind), Name: t.Name, Description: optional(t.Description)}
	switch t.Kind {
	case schema.TypeKindObject, schema.TypeKindInterface:
		ft.Fields = exportFields(s, t.Fields)
		ft.Interfaces = exportNamedRefs(s, t.Interfaces)
		if t.Kind == schema.TypeKindInterface {
			ft.PossibleTypes = exportNamedRefs(s, implementations(s, t.Name))
		}
	case schema.TypeKindUnion:
		ft.PossibleTypes = exportNamedRefs(s, t.PossibleTypes)
	case schema.TypeKindEnum:
		ft.EnumValues = []EnumValue{}
		for _, ev := range t.EnumValues {
			ft.EnumValues = append(ft.EnumValues, EnumValue{
				Name:              ev.Name,
				Description:       optional(ev.Description),
				IsDeprecated:      ev.IsDeprecated,
				DeprecationReason: deprecationReason(ev.IsDeprecated, ev.DeprecationReason),
			})
		}
	case schema.TypeKindInputObject:
		ft.InputFields = exportInputValues(s, t.InputFields)
	}
	return ft
}

func exportFields(s *schema.Schema, fields []*schema.Field) []Field {
	out := make([]Field, 0, len(fields))
	for _, f := range fields {
		out = append(out, Field{
			Name:              f.Name,
			Description:       optional(f.Description),
			Args:              exportInputValues(s, f.Arguments),
			Type:              exportTypeRef(s, f.Type),
			IsDeprecated:      f.IsDeprecated,
			DeprecationReason: deprecationReason(f.IsDeprecated, f.DeprecationReason),
		})
	}
	return out
}

func exportInputValues(s *schema.Schema, values []*schema.InputValue) []InputValue {
	out := make([]InputValue, 0, len(values))
	for _, v := range values {
		out = append(out, InputValue{
			Name:              v.Name,
			Description:       optional(v.Description),
			Type:              exportTypeRef(s, v.Type),
			DefaultValue:      optional(v.DefaultValue),
			IsDeprecated:      v.IsDeprecated,
			DeprecationReason: deprecationReason(v.IsDeprecated, v.DeprecationReason),
		})
	}
	return out
}

func exportTypeRef(s *schema.Schema, ref *schema.TypeRef) TypeRef {
	switch ref.Kind {
	case schema.TypeRefKindList, schema.TypeRefKindNonNull:
		inner := exportTypeRef(s, ref.OfType)
		return TypeRef{Kind: string(ref.Kind), OfType: &inner}
	}
	name := ref.Named
	return TypeRef{Kind: namedKind(s, name), Name: &name}
}

func exportNamedRefs(s *schema.Schema, names []string) []TypeRef {
	out := make([]TypeRef, 0, len(names))
	for _, name := range names {
		name := name
		out = append(out, TypeRef{Kind: namedKind(s, name), Name: &name})
	}
	return out
}

// namedKind resolves the kind of a referenced type. References to types the
// schema does not define are reported as objects.
func namedKind(s *schema.Schema, name string) string {
	if t := s.Types[name]; t != nil {
		return string(t.Kind)
	}
	return string(schema.TypeKindObject)
}

func implementations(s *schema.Schema, iface string) []string {
	var names []string
	for _, name := range s.TypeNames() {
		t := s.Types[name]
		if t.Kind != schema.TypeKindObject && t.Kind != schema.TypeKindInterface {
			continue
		}
		for _, impl := range t.Interfaces {
			if impl == iface {
				names = append(names, name)
				break
			}
		}
	}
	return names
}

func deprecationReason(deprecated bool, reason string) *string {
	if !deprecated {
		return nil
	}
	return &reason
}

func namedRef(name string) *NamedRef {
	if name == "" {
		return nil
	}
	return &NamedRef{Name: name}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
