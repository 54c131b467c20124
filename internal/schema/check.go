package schema

import (
	"fmt"

	"github.com/heneryville/graphql-schema-utils/internal/schemaerr"
)

// CheckSchema verifies that s has the shape the diff and merge engines walk.
// subject names the schema in the returned *schemaerr.ComparisonError.
func CheckSchema(subject string, s *Schema) error {
	if s == nil {
		return &schemaerr.ComparisonError{Subject: subject, Reason: "schema is nil"}
	}
	for name, t := range s.Types {
		if t == nil {
			return &schemaerr.ComparisonError{Subject: subject, Reason: fmt.Sprintf("type %q is nil", name)}
		}
		if t.Name != name {
			return &schemaerr.ComparisonError{
				Subject: subject,
				Reason:  fmt.Sprintf("type registered as %q is named %q", name, t.Name),
			}
		}
		if err := CheckType(subject, t); err != nil {
			return err
		}
	}
	return nil
}

// CheckType verifies a single named type.
func CheckType(subject string, t *Type) error {
	if t == nil {
		return &schemaerr.ComparisonError{Subject: subject, Reason: "type is nil"}
	}
	if t.Name == "" {
		return &schemaerr.ComparisonError{Subject: subject, Reason: "type has no name"}
	}
	if !t.Kind.Valid() {
		return &schemaerr.ComparisonError{
			Subject: subject,
			Reason:  fmt.Sprintf("type %s has unknown kind %q", t.Name, t.Kind),
		}
	}
	for _, f := range t.Fields {
		if f == nil {
			return &schemaerr.ComparisonError{Subject: subject, Reason: fmt.Sprintf("type %s has a nil field", t.Name)}
		}
		if err := checkRef(subject, t.Name+"."+f.Name, f.Type); err != nil {
			return err
		}
		for _, a := range f.Arguments {
			if a == nil {
				return &schemaerr.ComparisonError{
					Subject: subject,
					Reason:  fmt.Sprintf("field %s.%s has a nil argument", t.Name, f.Name),
				}
			}
			if err := checkRef(subject, t.Name+"."+f.Name+"("+a.Name+")", a.Type); err != nil {
				return err
			}
		}
	}
	for _, v := range t.InputFields {
		if v == nil {
			return &schemaerr.ComparisonError{Subject: subject, Reason: fmt.Sprintf("type %s has a nil input field", t.Name)}
		}
		if err := checkRef(subject, t.Name+"."+v.Name, v.Type); err != nil {
			return err
		}
	}
	for _, v := range t.EnumValues {
		if v == nil {
			return &schemaerr.ComparisonError{Subject: subject, Reason: fmt.Sprintf("enum %s has a nil value", t.Name)}
		}
	}
	return nil
}

func checkRef(subject, path string, ref *TypeRef) error {
	for cur := ref; ; cur = cur.OfType {
		if cur == nil {
			return &schemaerr.ComparisonError{Subject: subject, Reason: path + " has an incomplete type reference"}
		}
		switch cur.Kind {
		case TypeRefKindNamed:
			if cur.Named == "" {
				return &schemaerr.ComparisonError{Subject: subject, Reason: path + " references an unnamed type"}
			}
			return nil
		case TypeRefKindList, TypeRefKindNonNull:
		default:
			return &schemaerr.ComparisonError{
				Subject: subject,
				Reason:  fmt.Sprintf("%s has unknown reference kind %q", path, cur.Kind),
			}
		}
	}
}
