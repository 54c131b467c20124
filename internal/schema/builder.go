package schema

import (
	"errors"
	"os"
	"sort"
	"strings"

	"github.com/vektah/gqlparser/v2/gqlerror"

	"github.com/heneryville/graphql-schema-utils/internal/language"
	"github.com/heneryville/graphql-schema-utils/internal/schemaerr"
)

// NewSchema returns an empty schema with the given description.
func NewSchema(description string) *Schema {
	return &Schema{
		Types:       make(map[string]*Type),
		Directives:  make(map[string]*Directive),
		Description: description,
	}
}

func (s *Schema) SetQueryType(name string) *Schema        { s.QueryType = name; return s }
func (s *Schema) SetMutationType(name string) *Schema     { s.MutationType = name; return s }
func (s *Schema) SetSubscriptionType(name string) *Schema { s.SubscriptionType = name; return s }

// AddType registers t under its name, replacing any previous entry.
func (s *Schema) AddType(t *Type) *Schema {
	if s.Types == nil {
		s.Types = make(map[string]*Type)
	}
	s.Types[t.Name] = t
	return s
}

func (s *Schema) AddDirective(d *Directive) *Schema {
	if s.Directives == nil {
		s.Directives = make(map[string]*Directive)
	}
	s.Directives[d.Name] = d
	return s
}

// TypeNames returns the names of all types in lexicographic order.
func (s *Schema) TypeNames() []string {
	names := make([]string, 0, len(s.Types))
	for name := range s.Types {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func NewType(name string, kind TypeKind, description string) *Type {
	return &Type{Name: name, Kind: kind, Description: description}
}

func (t *Type) AddField(f *Field) *Type           { t.Fields = append(t.Fields, f); return t }
func (t *Type) AddInputField(v *InputValue) *Type { t.InputFields = append(t.InputFields, v); return t }
func (t *Type) AddInterface(name string) *Type    { t.Interfaces = append(t.Interfaces, name); return t }
func (t *Type) AddPossibleType(name string) *Type { t.PossibleTypes = append(t.PossibleTypes, name); return t }
func (t *Type) AddEnumValue(v *EnumValue) *Type   { t.EnumValues = append(t.EnumValues, v); return t }

// NewField returns a field with an empty, non-nil argument list.
func NewField(name, description string, typ *TypeRef) *Field {
	return &Field{Name: name, Description: description, Type: typ, Arguments: []*InputValue{}}
}

func (f *Field) AddArgument(a *InputValue) *Field { f.Arguments = append(f.Arguments, a); return f }

func (f *Field) Deprecate(reason string) *Field {
	f.IsDeprecated = true
	f.DeprecationReason = reason
	return f
}

func NewInputValue(name, description string, typ *TypeRef) *InputValue {
	return &InputValue{Name: name, Description: description, Type: typ}
}

func (v *InputValue) SetDefault(literal string) *InputValue { v.DefaultValue = literal; return v }

func (v *InputValue) Deprecate(reason string) *InputValue {
	v.IsDeprecated = true
	v.DeprecationReason = reason
	return v
}

func NewEnumValue(name, description string) *EnumValue {
	return &EnumValue{Name: name, Description: description}
}

func (v *EnumValue) Deprecate(reason string) *EnumValue {
	v.IsDeprecated = true
	v.DeprecationReason = reason
	return v
}

func NewDirective(name, description string) *Directive {
	return &Directive{Name: name, Description: description}
}

func (d *Directive) SetRepeatable(r bool) *Directive      { d.IsRepeatable = r; return d }
func (d *Directive) AddArgument(a *InputValue) *Directive { d.Arguments = append(d.Arguments, a); return d }

// BuildFromSDL parses and validates an SDL document and returns the corresponding Schema.
func BuildFromSDL(name, sdl string) (*Schema, error) {
	return BuildFromSources(language.NewSource(name, sdl))
}

// BuildFromFiles reads SDL files and builds them as one schema, so types may
// be split or extended across files.
func BuildFromFiles(paths ...string) (*Schema, error) {
	sources := make([]*language.Source, 0, len(paths))
	for _, p := range paths {
		content, err := os.ReadFile(p)
		if err != nil {
			return nil, err
		}
		sources = append(sources, language.NewSource(p, string(content)))
	}
	return BuildFromSources(sources...)
}

// BuildFromSources loads the sources with the GraphQL prelude and converts
// the validated document into a Schema.
func BuildFromSources(sources ...*language.Source) (*Schema, error) {
	doc, err := language.LoadSchema(sources...)
	if err != nil {
		return nil, parseError(sources, err)
	}
	return BuildFromAST(doc), nil
}

// BuildFromAST converts a validated gqlparser schema. Introspection types and
// fields and the prelude directives are left out; built-in scalars are kept.
func BuildFromAST(doc *language.Schema) *Schema {
	s := NewSchema(doc.Description)
	if doc.Query != nil {
		s.SetQueryType(doc.Query.Name)
	}
	if doc.Mutation != nil {
		s.SetMutationType(doc.Mutation.Name)
	}
	if doc.Subscription != nil {
		s.SetSubscriptionType(doc.Subscription.Name)
	}

	for name, def := range doc.Types {
		if isIntrospectionName(name) {
			continue
		}
		if t := buildType(def); t != nil {
			s.AddType(t)
		}
	}
	for _, dir := range doc.Directives {
		if dir.Position != nil && dir.Position.Src != nil && dir.Position.Src.BuiltIn {
			continue
		}
		s.AddDirective(buildDirective(dir))
	}
	return s
}

func buildType(def *language.Definition) *Type {
	switch def.Kind {
	case language.Object:
		return buildComposite(def, TypeKindObject)
	case language.Interface:
		return buildComposite(def, TypeKindInterface)
	case language.InputObject:
		return buildInput(def)
	case language.Enum:
		return buildEnum(def)
	case language.Union:
		return buildUnion(def)
	case language.Scalar:
		return NewType(def.Name, TypeKindScalar, def.Description)
	}
	return nil
}

func buildComposite(def *language.Definition, kind TypeKind) *Type {
	t := NewType(def.Name, kind, def.Description)
	for _, name := range def.Interfaces {
		t.AddInterface(name)
	}
	for _, fieldDef := range def.Fields {
		if isIntrospectionName(fieldDef.Name) {
			continue
		}
		t.AddField(buildField(fieldDef))
	}
	return t
}

func buildField(def *language.FieldDefinition) *Field {
	f := NewField(def.Name, def.Description, buildTypeRef(def.Type))
	if ok, reason := deprecation(def.Directives); ok {
		f.Deprecate(reason)
	}
	for _, arg := range def.Arguments {
		f.AddArgument(buildArgument(arg))
	}
	return f
}

func buildArgument(def *language.ArgumentDefinition) *InputValue {
	in := NewInputValue(def.Name, def.Description, buildTypeRef(def.Type)).SetDefault(literal(def.DefaultValue))
	if ok, reason := deprecation(def.Directives); ok {
		in.Deprecate(reason)
	}
	return in
}

func buildInput(def *language.Definition) *Type {
	t := NewType(def.Name, TypeKindInputObject, def.Description)
	for _, fieldDef := range def.Fields {
		in := NewInputValue(fieldDef.Name, fieldDef.Description, buildTypeRef(fieldDef.Type)).
			SetDefault(literal(fieldDef.DefaultValue))
		if ok, reason := deprecation(fieldDef.Directives); ok {
			in.Deprecate(reason)
		}
		t.AddInputField(in)
	}
	return t
}

func buildEnum(def *language.Definition) *Type {
	t := NewType(def.Name, TypeKindEnum, def.Description)
	for _, v := range def.EnumValues {
		e := NewEnumValue(v.Name, v.Description)
		if ok, reason := deprecation(v.Directives); ok {
			e.Deprecate(reason)
		}
		t.AddEnumValue(e)
	}
	return t
}

func buildUnion(def *language.Definition) *Type {
	t := NewType(def.Name, TypeKindUnion, def.Description)
	for _, name := range def.Types {
		t.AddPossibleType(name)
	}
	return t
}

func buildDirective(dir *language.DirectiveDefinition) *Directive {
	d := NewDirective(dir.Name, dir.Description).SetRepeatable(dir.IsRepeatable)
	for _, loc := range dir.Locations {
		d.Locations = append(d.Locations, string(loc))
	}
	for _, arg := range dir.Arguments {
		d.AddArgument(buildArgument(arg))
	}
	return d
}

func buildTypeRef(t *language.Type) *TypeRef {
	var ref *TypeRef
	if t.NamedType != "" {
		ref = NamedType(t.NamedType)
	} else {
		ref = ListType(buildTypeRef(t.Elem))
	}
	if t.NonNull {
		ref = NonNullType(ref)
	}
	return ref
}

// defaultDeprecationReason matches the default of the @deprecated directive.
const defaultDeprecationReason = "No longer supported"

func deprecation(directives language.DirectiveList) (bool, string) {
	d := directives.ForName("deprecated")
	if d == nil {
		return false, ""
	}
	if arg := d.Arguments.ForName("reason"); arg != nil && arg.Value != nil {
		return true, arg.Value.Raw
	}
	return true, defaultDeprecationReason
}

func literal(v *language.Value) string {
	if v == nil {
		return ""
	}
	return v.String()
}

func isIntrospectionName(name string) bool { return strings.HasPrefix(name, "__") }

func parseError(sources []*language.Source, err error) error {
	pe := &schemaerr.ParseError{Message: err.Error(), Cause: err}
	if len(sources) == 1 {
		pe.Path = sources[0].Name
	}
	var gqlErr *gqlerror.Error
	if errors.As(err, &gqlErr) {
		pe.Message = gqlErr.Message
		if file, ok := gqlErr.Extensions["file"].(string); ok && file != "" {
			pe.Path = file
		}
		if len(gqlErr.Locations) > 0 {
			pe.Line = gqlErr.Locations[0].Line
			pe.Column = gqlErr.Locations[0].Column
		}
	}
	return pe
}
