package schema

// Clone returns an independently owned copy of the schema.
func (s *Schema) Clone() *Schema {
	if s == nil {
		return nil
	}
	out := NewSchema(s.Description)
	out.QueryType = s.QueryType
	out.MutationType = s.MutationType
	out.SubscriptionType = s.SubscriptionType
	for name, t := range s.Types {
		out.Types[name] = t.Clone()
	}
	for name, d := range s.Directives {
		out.Directives[name] = d.Clone()
	}
	return out
}

// Clone returns an independently owned copy of the type and everything it
// contains. Types referenced by name are not followed.
func (t *Type) Clone() *Type {
	if t == nil {
		return nil
	}
	out := NewType(t.Name, t.Kind, t.Description)
	for _, f := range t.Fields {
		out.AddField(f.Clone())
	}
	for _, v := range t.InputFields {
		out.AddInputField(v.Clone())
	}
	for _, v := range t.EnumValues {
		out.AddEnumValue(v.Clone())
	}
	out.Interfaces = cloneNames(t.Interfaces)
	out.PossibleTypes = cloneNames(t.PossibleTypes)
	return out
}

func (f *Field) Clone() *Field {
	if f == nil {
		return nil
	}
	out := *f
	out.Type = f.Type.Clone()
	out.Arguments = cloneInputValues(f.Arguments)
	return &out
}

func (v *InputValue) Clone() *InputValue {
	if v == nil {
		return nil
	}
	out := *v
	out.Type = v.Type.Clone()
	return &out
}

func (v *EnumValue) Clone() *EnumValue {
	if v == nil {
		return nil
	}
	out := *v
	return &out
}

func (t *TypeRef) Clone() *TypeRef {
	if t == nil {
		return nil
	}
	return &TypeRef{Kind: t.Kind, Named: t.Named, OfType: t.OfType.Clone()}
}

func (d *Directive) Clone() *Directive {
	if d == nil {
		return nil
	}
	out := *d
	out.Locations = cloneNames(d.Locations)
	out.Arguments = cloneInputValues(d.Arguments)
	return &out
}

// cloneInputValues keeps the nil/empty distinction of argument lists.
func cloneInputValues(in []*InputValue) []*InputValue {
	if in == nil {
		return nil
	}
	out := make([]*InputValue, len(in))
	for i, v := range in {
		out[i] = v.Clone()
	}
	return out
}

func cloneNames(in []string) []string {
	if in == nil {
		return nil
	}
	return append(make([]string, 0, len(in)), in...)
}
