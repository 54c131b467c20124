package diff

// Kind classifies a Diff.
type Kind string

const (
	TypeDescriptionDiff  Kind = "TypeDescriptionDiff"
	TypeMissing          Kind = "TypeMissing"
	TypeNameDiff         Kind = "TypeNameDiff"
	BaseTypeDiff         Kind = "BaseTypeDiff"
	UnionTypeDiff        Kind = "UnionTypeDiff"
	InterfaceDiff        Kind = "InterfaceDiff"
	FieldDescriptionDiff Kind = "FieldDescriptionDiff"
	FieldMissing         Kind = "FieldMissing"
	FieldDiff            Kind = "FieldDiff"
	ArgDescriptionDiff   Kind = "ArgDescriptionDiff"
	ArgDiff              Kind = "ArgDiff"
	EnumDiff             Kind = "EnumDiff"
)

var allKinds = []Kind{
	TypeDescriptionDiff,
	TypeMissing,
	TypeNameDiff,
	BaseTypeDiff,
	UnionTypeDiff,
	InterfaceDiff,
	FieldDescriptionDiff,
	FieldMissing,
	FieldDiff,
	ArgDescriptionDiff,
	ArgDiff,
	EnumDiff,
}

// Kinds returns every diff kind in declaration order.
func Kinds() []Kind {
	return append([]Kind(nil), allKinds...)
}

// Valid reports whether k is one of the declared kinds.
func (k Kind) Valid() bool {
	for _, known := range allKinds {
		if k == known {
			return true
		}
	}
	return false
}
