// Package introspection converts between the JSON result of a GraphQL
// introspection query and the schema model.
package introspection

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/heneryville/graphql-schema-utils/internal/schema"
	"github.com/heneryville/graphql-schema-utils/internal/schemaerr"
)

// Build decodes an introspection result. name is used in error messages.
func Build(name string, data []byte) (*schema.Schema, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &schemaerr.ParseError{Path: name, Message: "invalid introspection JSON", Cause: err}
	}
	src := doc.Schema
	if src == nil && doc.Data != nil {
		src = doc.Data.Schema
	}
	if src == nil {
		return nil, &schemaerr.ParseError{Path: name, Message: "missing __schema object"}
	}

	s := schema.NewSchema(deref(src.Description))
	s.QueryType = refName(src.QueryType)
	s.MutationType = refName(src.MutationType)
	s.SubscriptionType = refName(src.SubscriptionType)

	for _, ft := range src.Types {
		if strings.HasPrefix(ft.Name, "__") {
			continue
		}
		t, err := buildType(ft)
		if err != nil {
			return nil, &schemaerr.ParseError{Path: name, Message: err.Error()}
		}
		s.AddType(t)
	}
	for _, d := range src.Directives {
		if builtinDirectives[d.Name] {
			continue
		}
		dir, err := buildDirective(d)
		if err != nil {
			return nil, &schemaerr.ParseError{Path: name, Message: err.Error()}
		}
		s.AddDirective(dir)
	}
	return s, nil
}

// builtinDirectives are left out the same way the SDL builder skips the
// prelude.
var builtinDirectives = map[string]bool{
	"include":     true,
	"skip":        true,
	"deprecated":  true,
	"specifiedBy": true,
	"defer":       true,
	"oneOf":       true,
}

func buildType(ft FullType) (*schema.Type, error) {
	if ft.Name == "" {
		return nil, fmt.Errorf("type of kind %q has no name", ft.Kind)
	}
	kind := schema.TypeKind(ft.Kind)
	if !kind.Valid() {
		return nil, fmt.Errorf("type %s has unsupported kind %q", ft.Name, ft.Kind)
	}
	t := schema.NewType(ft.Name, kind, deref(ft.Description))
	switch kind {
	case schema.TypeKindObject, schema.TypeKindInterface:
		for _, ref := range ft.Interfaces {
			t.AddInterface(deref(ref.Name))
		}
		for _, f := range ft.Fields {
			field, err := buildField(ft.Name, f)
			if err != nil {
				return nil, err
			}
			t.AddField(field)
		}
	case schema.TypeKindInputObject:
		for _, in := range ft.InputFields {
			v, err := buildInputValue(ft.Name, in)
			if err != nil {
				return nil, err
			}
			t.AddInputField(v)
		}
	case schema.TypeKindUnion:
		for _, ref := range ft.PossibleTypes {
			t.AddPossibleType(deref(ref.Name))
		}
	case schema.TypeKindEnum:
		for _, ev := range ft.EnumValues {
			v := schema.NewEnumValue(ev.Name, deref(ev.Description))
			if ev.IsDeprecated {
				v.Deprecate(deref(ev.DeprecationReason))
			}
			t.AddEnumValue(v)
		}
	}
	return t, nil
}

func buildField(owner string, f Field) (*schema.Field, error) {
	ref, err := buildTypeRef(f.Type)
	if err != nil {
		return nil, fmt.Errorf("%s.%s: %w", owner, f.Name, err)
	}
	field := schema.NewField(f.Name, deref(f.Description), ref)
	if f.IsDeprecated {
		field.Deprecate(deref(f.DeprecationReason))
	}
	for _, a := range f.Args {
		arg, err := buildInputValue(owner+"."+f.Name, a)
		if err != nil {
			return nil, err
		}
		field.AddArgument(arg)
	}
	return field, nil
}

func buildInputValue(owner string, in InputValue) (*schema.InputValue, error) {
	ref, err := buildTypeRef(in.Type)
	if err != nil {
		return nil, fmt.Errorf("%s(%s): %w", owner, in.Name, err)
	}
	v := schema.NewInputValue(in.Name, deref(in.Description), ref).SetDefault(deref(in.DefaultValue))
	if in.IsDeprecated {
		v.Deprecate(deref(in.DeprecationReason))
	}
	return v, nil
}

func buildDirective(d Directive) (*schema.Directive, error) {
	dir := schema.NewDirective(d.Name, deref(d.Description)).SetRepeatable(d.IsRepeatable)
	dir.Locations = append(dir.Locations, d.Locations...)
	for _, a := range d.Args {
		arg, err := buildInputValue("@"+d.Name, a)
		if err != nil {
			return nil, err
		}
		dir.AddArgument(arg)
	}
	return dir, nil
}

func buildTypeRef(ref TypeRef) (*schema.TypeRef, error) {
	switch ref.Kind {
	case "NON_NULL", "LIST":
		if ref.OfType == nil {
			return nil, fmt.Errorf("%s reference without ofType", ref.Kind)
		}
		inner, err := buildTypeRef(*ref.OfType)
		if err != nil {
			return nil, err
		}
		if ref.Kind == "LIST" {
			return schema.ListType(inner), nil
		}
		return schema.NonNullType(inner), nil
	default:
		if !schema.TypeKind(ref.Kind).Valid() {
			return nil, fmt.Errorf("unsupported reference kind %q", ref.Kind)
		}
		if deref(ref.Name) == "" {
			return nil, fmt.Errorf("%s reference without name", ref.Kind)
		}
		return schema.NamedType(*ref.Name), nil
	}
}

func refName(ref *NamedRef) string {
	if ref == nil {
		return ""
	}
	return ref.Name
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
