package merge

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heneryville/graphql-schema-utils/internal/diff"
	"github.com/heneryville/graphql-schema-utils/internal/schema"
	"github.com/heneryville/graphql-schema-utils/internal/schemaerr"
)

func TestSchemasFixtures(t *testing.T) {
	entries, err := os.ReadDir("testdata")
	require.NoError(t, err)

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		name := entry.Name()
		t.Run(name, func(t *testing.T) {
			this := loadSchema(t, filepath.Join("testdata", name, "this.graphql"))
			other := loadSchema(t, filepath.Join("testdata", name, "other.graphql"))
			expected := loadSchema(t, filepath.Join("testdata", name, "expected.graphql"))

			merged, err := Schemas(this, other)
			require.NoError(t, err)

			diffs, err := diff.Schemas(expected, merged, diff.Options{LabelForThis: "expected", LabelForOther: "merged"})
			require.NoError(t, err)
			assert.Empty(t, diffs, describe(diffs))
		})
	}
}

func TestSchemasWithNilIsCopy(t *testing.T) {
	a := loadSchema(t, filepath.Join("testdata", "add_types", "this.graphql"))

	merged, err := Schemas(a, nil)
	require.NoError(t, err)
	require.NotSame(t, a, merged)

	diffs, err := diff.Schemas(a, merged, diff.Options{})
	require.NoError(t, err)
	assert.Empty(t, diffs)

	merged.Types["FieldOption"].Fields[0].Name = "changed"
	assert.Equal(t, "contentId", a.Types["FieldOption"].Fields[0].Name)
}

func TestSchemasWithSelf(t *testing.T) {
	a := loadSchema(t, filepath.Join("testdata", "add_types", "this.graphql"))
	b := loadSchema(t, filepath.Join("testdata", "add_types", "this.graphql"))

	for _, other := range []*schema.Schema{a, b} {
		merged, err := Schemas(a, other)
		require.NoError(t, err)
		diffs, err := diff.Schemas(a, merged, diff.Options{})
		require.NoError(t, err)
		assert.Empty(t, diffs, describe(diffs))
	}
}

func TestSchemasDoesNotMutateInputs(t *testing.T) {
	this := loadSchema(t, filepath.Join("testdata", "merge_interfaces", "this.graphql"))
	other := loadSchema(t, filepath.Join("testdata", "merge_interfaces", "other.graphql"))
	thisBefore, otherBefore := this.Clone(), other.Clone()

	merged, err := Schemas(this, other)
	require.NoError(t, err)

	if d := cmp.Diff(thisBefore, this); d != "" {
		t.Errorf("receiver changed (-before +after):\n%s", d)
	}
	if d := cmp.Diff(otherBefore, other); d != "" {
		t.Errorf("other changed (-before +after):\n%s", d)
	}

	for name, typ := range merged.Types {
		assert.NotSame(t, this.Types[name], typ, name)
		assert.NotSame(t, other.Types[name], typ, name)
	}
	merged.Types["FieldOption"].Field("value").Type.Named = "Float"
	assert.Equal(t, "Int", other.Types["FieldOption"].Field("value").Type.Named)
}

func TestOtherFieldWinsVerbatim(t *testing.T) {
	this := schema.NewType("FieldOption", schema.TypeKindObject, "receiver doc").
		AddField(schema.NewField("id", "", schema.NonNullType(schema.NamedType("ID")))).
		AddField(schema.NewField("value", "old", schema.NamedType("String")).
			AddArgument(schema.NewInputValue("locale", "", schema.NamedType("String"))))
	other := schema.NewType("FieldOption", schema.TypeKindObject, "other doc").
		AddField(schema.NewField("value", "new", schema.NamedType("Int")).
			AddArgument(schema.NewInputValue("precision", "", schema.NamedType("Int")).SetDefault("2")).
			Deprecate("use amount")).
		AddField(schema.NewField("newValue", "", schema.NamedType("Int")))

	merged, err := Types(this, other)
	require.NoError(t, err)

	assert.Equal(t, "receiver doc", merged.Description)
	names := make([]string, 0, len(merged.Fields))
	for _, f := range merged.Fields {
		names = append(names, f.Name)
	}
	assert.Equal(t, []string{"id", "value", "newValue"}, names)

	if d := cmp.Diff(other.Field("value"), merged.Field("value")); d != "" {
		t.Errorf("merged field differs from other's (-other +merged):\n%s", d)
	}
	assert.NotSame(t, other.Field("value"), merged.Field("value"))
}

func TestObjectInterfacesUnion(t *testing.T) {
	this := schema.NewType("FieldOption", schema.TypeKindObject, "").AddInterface("CmsItem").AddInterface("Node")
	other := schema.NewType("FieldOption", schema.TypeKindObject, "").AddInterface("NewInterface").AddInterface("Node")

	merged, err := Types(this, other)
	require.NoError(t, err)
	assert.Equal(t, []string{"CmsItem", "Node", "NewInterface"}, merged.Interfaces)
}

func TestInterfaceKeepsReceiverInterfaces(t *testing.T) {
	this := schema.NewType("Item", schema.TypeKindInterface, "").AddInterface("Node")
	other := schema.NewType("Item", schema.TypeKindInterface, "").AddInterface("Entity")

	merged, err := Types(this, other)
	require.NoError(t, err)
	assert.Equal(t, []string{"Node"}, merged.Interfaces)
}

func TestUnionMembers(t *testing.T) {
	this := schema.NewType("Pet", schema.TypeKindUnion, "").AddPossibleType("Cat").AddPossibleType("Dog")
	other := schema.NewType("Pet", schema.TypeKindUnion, "").AddPossibleType("Dog").AddPossibleType("Fish")

	merged, err := Types(this, other)
	require.NoError(t, err)
	assert.Equal(t, []string{"Cat", "Dog", "Fish"}, merged.PossibleTypes)
	assert.Equal(t, []string{"Cat", "Dog"}, this.PossibleTypes)
}

func TestLeafKindsTakeOther(t *testing.T) {
	thisEnum := schema.NewType("Color", schema.TypeKindEnum, "mine").AddEnumValue(schema.NewEnumValue("RED", ""))
	otherEnum := schema.NewType("Color", schema.TypeKindEnum, "theirs").AddEnumValue(schema.NewEnumValue("BLUE", ""))

	merged, err := Types(thisEnum, otherEnum)
	require.NoError(t, err)
	if d := cmp.Diff(otherEnum, merged); d != "" {
		t.Errorf("enum merge should equal other (-other +merged):\n%s", d)
	}
	assert.NotSame(t, otherEnum, merged)

	thisScalar := schema.NewType("Date", schema.TypeKindScalar, "mine")
	merged, err = Types(thisScalar, schema.NewType("Date", schema.TypeKindScalar, "theirs"))
	require.NoError(t, err)
	assert.Equal(t, "theirs", merged.Description)

	merged, err = Types(thisScalar, nil)
	require.NoError(t, err)
	assert.Equal(t, "mine", merged.Description)
	assert.NotSame(t, thisScalar, merged)
}

func TestInputObjectFields(t *testing.T) {
	this := schema.NewType("PetDetails", schema.TypeKindInputObject, "").
		AddInputField(schema.NewInputValue("name", "", schema.NamedType("String"))).
		AddInputField(schema.NewInputValue("weight", "", schema.NamedType("String")))
	other := schema.NewType("PetDetails", schema.TypeKindInputObject, "").
		AddInputField(schema.NewInputValue("weight", "", schema.NamedType("Int")).SetDefault("0")).
		AddInputField(schema.NewInputValue("type", "", schema.NamedType("String")))

	merged, err := Types(this, other)
	require.NoError(t, err)
	require.Len(t, merged.InputFields, 3)
	assert.Equal(t, "Int", merged.InputField("weight").Type.String())
	assert.Equal(t, "0", merged.InputField("weight").DefaultValue)
	assert.NotNil(t, merged.InputField("type"))
}

func TestKindMismatch(t *testing.T) {
	this := loadSchema(t, filepath.Join("testdata", "merge_unions", "this.graphql"))
	other, err := schema.BuildFromSDL("other.graphql", "type Query { Pet: Pet }\ntype Pet { name: String }")
	require.NoError(t, err)

	merged, err := Schemas(this, other)
	require.Error(t, err)
	assert.Nil(t, merged)
	assert.True(t, errors.Is(err, schemaerr.ErrIncompatibleMerge))

	var me *schemaerr.MergeError
	require.True(t, errors.As(err, &me))
	assert.Equal(t, "Pet", me.TypeName)
	assert.Equal(t, "UNION", me.ThisKind)
	assert.Equal(t, "OBJECT", me.OtherKind)
}

func TestInvalidTargets(t *testing.T) {
	valid := schema.NewSchema("").AddType(schema.NewType("Query", schema.TypeKindObject, ""))
	broken := &schema.Schema{Types: map[string]*schema.Type{"Query": nil}}

	_, err := Schemas(valid, broken)
	assert.True(t, errors.Is(err, schemaerr.ErrInvalidComparison))
	_, err = Schemas(nil, valid)
	assert.True(t, errors.Is(err, schemaerr.ErrInvalidComparison))
	_, err = Types(schema.NewType("Query", schema.TypeKindObject, ""), &schema.Type{Name: "Query"})
	assert.True(t, errors.Is(err, schemaerr.ErrInvalidComparison))
}

func TestRootTypesAndDirectives(t *testing.T) {
	this := schema.NewSchema("").SetQueryType("Query").
		AddType(schema.NewType("Query", schema.TypeKindObject, "")).
		AddDirective(schema.NewDirective("cache", "mine"))
	other := schema.NewSchema("other doc").SetQueryType("Root").SetMutationType("Mutation").
		AddType(schema.NewType("Mutation", schema.TypeKindObject, "")).
		AddDirective(schema.NewDirective("cache", "theirs")).
		AddDirective(schema.NewDirective("auth", ""))

	merged, err := Schemas(this, other)
	require.NoError(t, err)
	assert.Equal(t, "Query", merged.QueryType)
	assert.Equal(t, "Mutation", merged.MutationType)
	assert.Empty(t, merged.SubscriptionType)
	assert.Equal(t, "other doc", merged.Description)
	assert.Equal(t, "mine", merged.Directives["cache"].Description)
	assert.NotNil(t, merged.Directives["auth"])
	assert.NotSame(t, other.Directives["auth"], merged.Directives["auth"])
}

func TestTypeRefs(t *testing.T) {
	this := schema.NamedType("String")
	other := schema.NonNullType(schema.ListType(schema.NamedType("Int")))

	got := TypeRefs(this, other)
	assert.Equal(t, "[Int]!", got.String())
	assert.NotSame(t, other, got)

	got = TypeRefs(this, nil)
	assert.Equal(t, "String", got.String())
	assert.NotSame(t, this, got)

	assert.Nil(t, TypeRefs(nil, nil))
}

func loadSchema(t *testing.T, path string) *schema.Schema {
	t.Helper()
	s, err := schema.BuildFromFiles(path)
	require.NoError(t, err)
	return s
}

func describe(diffs []diff.Diff) string {
	var out string
	for _, d := range diffs {
		out += d.String() + "\n"
	}
	return out
}
