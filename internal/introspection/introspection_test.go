package introspection

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heneryville/graphql-schema-utils/internal/diff"
	"github.com/heneryville/graphql-schema-utils/internal/schema"
	"github.com/heneryville/graphql-schema-utils/internal/schemaerr"
)

func TestBuild(t *testing.T) {
	s := loadFixture(t)

	assert.Equal(t, "Query", s.QueryType)
	assert.Empty(t, s.MutationType)
	assert.Nil(t, s.Types["__Schema"], "introspection types are skipped")
	assert.Nil(t, s.Directives["deprecated"], "built-in directives are skipped")

	books := s.Types["Query"].Field("books")
	require.NotNil(t, books)
	assert.Equal(t, "[Book!]!", books.Type.String())
	assert.Equal(t, "All books, newest first", books.Description)
	assert.Equal(t, "10", books.Argument("first").DefaultValue)

	book := s.Types["Book"]
	assert.Equal(t, []string{"Node"}, book.Interfaces)
	assert.True(t, book.Field("isbn").IsDeprecated)
	assert.Equal(t, "use id", book.Field("isbn").DeprecationReason)
	assert.NotNil(t, book.Field("id").Arguments)

	format := s.Types["Format"]
	require.Len(t, format.EnumValues, 3)
	assert.Equal(t, "Soft cover", format.EnumValue("PAPERBACK").Description)
	assert.True(t, format.EnumValue("SCROLL").IsDeprecated)

	assert.Equal(t, "HARDCOVER", s.Types["BookFilter"].InputField("format").DefaultValue)
	assert.Equal(t, []string{"Book"}, s.Types["SearchResult"].PossibleTypes)

	cache := s.Directives["cacheControl"]
	require.NotNil(t, cache)
	assert.Equal(t, []string{"OBJECT", "FIELD_DEFINITION"}, cache.Locations)
	assert.Equal(t, "Int", cache.Arguments[0].Type.String())

	require.NoError(t, schema.CheckSchema("library", s))
}

func TestBuildBareSchemaObject(t *testing.T) {
	s, err := Build("bare.json", []byte(`{"__schema": {"queryType": {"name": "Q"}, "types": [
		{"kind": "OBJECT", "name": "Q", "fields": [
			{"name": "n", "args": [], "type": {"kind": "SCALAR", "name": "Int"}}
		]}
	]}}`))
	require.NoError(t, err)
	assert.Equal(t, "Q", s.QueryType)
	assert.Equal(t, "Int", s.Types["Q"].Field("n").Type.String())
}

func TestBuildErrors(t *testing.T) {
	cases := map[string]string{
		"malformed":       `{"data": `,
		"missing schema":  `{"data": {}}`,
		"unknown kind":    `{"__schema": {"types": [{"kind": "TABLE", "name": "T"}]}}`,
		"unnamed type":    `{"__schema": {"types": [{"kind": "OBJECT"}]}}`,
		"dangling list":   `{"__schema": {"types": [{"kind": "OBJECT", "name": "T", "fields": [{"name": "f", "type": {"kind": "LIST"}}]}]}}`,
		"unnamed ref":     `{"__schema": {"types": [{"kind": "OBJECT", "name": "T", "fields": [{"name": "f", "type": {"kind": "SCALAR"}}]}]}}`,
		"unknown ref":     `{"__schema": {"types": [{"kind": "OBJECT", "name": "T", "fields": [{"name": "f", "type": {"kind": "SET", "name": "X"}}]}]}}`,
		"bad directive":   `{"__schema": {"types": [], "directives": [{"name": "d", "args": [{"name": "a", "type": {"kind": "LIST"}}]}]}}`,
		"bad input field": `{"__schema": {"types": [{"kind": "INPUT_OBJECT", "name": "I", "inputFields": [{"name": "a", "type": {"kind": "NON_NULL"}}]}]}}`,
	}
	for name, input := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Build("input.json", []byte(input))
			require.Error(t, err)
			assert.True(t, errors.Is(err, schemaerr.ErrParse))
			var pe *schemaerr.ParseError
			require.True(t, errors.As(err, &pe))
			assert.Equal(t, "input.json", pe.Path)
		})
	}
}

func TestExportRoundTrip(t *testing.T) {
	original := loadFixture(t)

	data, err := Export(original)
	require.NoError(t, err)

	rebuilt, err := Build("export.json", data)
	require.NoError(t, err)

	diffs, err := diff.Schemas(original, rebuilt, diff.Options{})
	require.NoError(t, err)
	assert.Empty(t, diffs)
	assert.Equal(t, original.Directives["cacheControl"].Description, rebuilt.Directives["cacheControl"].Description)
}

func TestExportFromSDL(t *testing.T) {
	s, err := schema.BuildFromSDL("sdl.graphql", `
interface Node { id: ID! }
type User implements Node { id: ID! name: String @deprecated }
type Query { me: User }
`)
	require.NoError(t, err)

	data, err := Export(s)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"__schema"`)

	rebuilt, err := Build("export.json", data)
	require.NoError(t, err)
	diffs, err := diff.Schemas(s, rebuilt, diff.Options{})
	require.NoError(t, err)
	assert.Empty(t, diffs)

	doc := exportSchema(s)
	var node FullType
	for _, ft := range doc.Types {
		if ft.Name == "Node" {
			node = ft
		}
	}
	require.Len(t, node.PossibleTypes, 1)
	assert.Equal(t, "User", *node.PossibleTypes[0].Name)
	assert.Equal(t, "OBJECT", node.PossibleTypes[0].Kind)
}

func loadFixture(t *testing.T) *schema.Schema {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", "library.json"))
	require.NoError(t, err)
	s, err := Build("library.json", data)
	require.NoError(t, err)
	return s
}

func TestExportKeepsMemberOrder(t *testing.T) {
	s, err := schema.BuildFromSDL("order.graphql", `
interface Node { id: ID! }
interface Named { name: String }
type Query { search(query: String!, limit: Int = 10, after: String): [Result!]! node: Node }
type Result implements Node & Named { title: String id: ID! name: String }
enum Sort { NEWEST OLDEST ALPHA }
input Filter { text: String sort: Sort year: Int }
union Hit = Result | Query
directive @cost(weight: Int) on OBJECT | FIELD_DEFINITION
`)
	require.NoError(t, err)

	data, err := Export(s)
	require.NoError(t, err)
	rebuilt, err := Build("order.json", data)
	require.NoError(t, err)

	search := rebuilt.Types["Query"].Field("search")
	require.NotNil(t, search)
	argNames := make([]string, 0, len(search.Arguments))
	for _, a := range search.Arguments {
		argNames = append(argNames, a.Name)
	}
	assert.Equal(t, []string{"query", "limit", "after"}, argNames)

	result := rebuilt.Types["Result"]
	fieldNames := make([]string, 0, len(result.Fields))
	for _, f := range result.Fields {
		fieldNames = append(fieldNames, f.Name)
	}
	assert.Equal(t, []string{"title", "id", "name"}, fieldNames)
	assert.Equal(t, []string{"Node", "Named"}, result.Interfaces)

	var values []string
	for _, v := range rebuilt.Types["Sort"].EnumValues {
		values = append(values, v.Name)
	}
	assert.Equal(t, []string{"NEWEST", "OLDEST", "ALPHA"}, values)

	var inputs []string
	for _, v := range rebuilt.Types["Filter"].InputFields {
		inputs = append(inputs, v.Name)
	}
	assert.Equal(t, []string{"text", "sort", "year"}, inputs)
	assert.Equal(t, []string{"Result", "Query"}, rebuilt.Types["Hit"].PossibleTypes)
	assert.Equal(t, []string{"OBJECT", "FIELD_DEFINITION"}, rebuilt.Directives["cost"].Locations)
}
