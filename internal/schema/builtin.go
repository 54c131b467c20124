package schema

// builtinScalars are the scalars every GraphQL schema carries implicitly.
var builtinScalars = map[string]bool{
	"String":  true,
	"Int":     true,
	"Float":   true,
	"Boolean": true,
	"ID":      true,
}

// IsBuiltin reports whether t is one of the specified scalars.
func IsBuiltin(t *Type) bool {
	return t != nil && t.Kind == TypeKindScalar && builtinScalars[t.Name]
}
