package report

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v4"

	"github.com/heneryville/graphql-schema-utils/internal/diff"
	"github.com/heneryville/graphql-schema-utils/internal/schema"
)

func sampleDiffs() []diff.Diff {
	video := schema.NewType("Video", schema.TypeKindObject, "")
	query := schema.NewType("Query", schema.TypeKindObject, "")
	return []diff.Diff{
		{
			This:        video,
			Kind:        diff.TypeMissing,
			Description: "Type missing from other schema: `Video`.",
		},
		{
			This:               query,
			Other:              query,
			Kind:               diff.FieldMissing,
			Description:        "Field missing from this schema: `Query.videos: [Video]`.",
			BackwardCompatible: true,
		},
		{
			This:        query,
			Other:       query,
			Kind:        diff.FieldMissing,
			Description: "Field missing from other schema: `Query.video: Video`.",
		},
	}
}

func TestSummarize(t *testing.T) {
	r := Summarize(sampleDiffs())
	assert.Equal(t, 2, r.BreakingCount)
	assert.Equal(t, 1, r.CompatibleCount)
	assert.True(t, r.HasBreakingChanges)
	assert.Equal(t, map[diff.Kind]int{diff.TypeMissing: 1, diff.FieldMissing: 2}, r.CountsByKind)
	assert.Len(t, r.Diffs, 3)

	empty := Summarize(nil)
	assert.False(t, empty.HasBreakingChanges)
	assert.Zero(t, empty.BreakingCount)
	assert.Empty(t, empty.CountsByKind)
}

func TestValidateFormat(t *testing.T) {
	for _, f := range ValidFormats {
		assert.NoError(t, ValidateFormat(f))
	}
	err := ValidateFormat("xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"xml"`)
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, Summarize(sampleDiffs()), FormatText, false))

	expected := "✗ [TypeMissing] Type missing from other schema: `Video`.\n" +
		"✓ [FieldMissing] Field missing from this schema: `Query.videos: [Video]`.\n" +
		"✗ [FieldMissing] Field missing from other schema: `Query.video: Video`.\n" +
		"\n" +
		"3 differences: 2 breaking, 1 compatible\n"
	if d := cmp.Diff(expected, buf.String()); d != "" {
		t.Errorf("text output mismatch (-want +got):\n%s", d)
	}
}

func TestWriteTextNoDifferences(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, Summarize(nil), FormatText, false))
	assert.Equal(t, "✓ No differences\n", buf.String())
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, Summarize(sampleDiffs()), FormatJSON, true))

	var got document
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, 3, got.Summary.Total)
	assert.Equal(t, 2, got.Summary.Breaking)
	assert.True(t, got.Summary.HasBreakingChanges)
	assert.Equal(t, map[string]int{"TypeMissing": 1, "FieldMissing": 2}, got.Summary.ByKind)
	require.Len(t, got.Diffs, 3)
	assert.Equal(t, entry{
		Kind:        "TypeMissing",
		Description: "Type missing from other schema: `Video`.",
		ThisType:    "Video",
	}, got.Diffs[0])
	assert.Equal(t, "Query", got.Diffs[1].OtherType)
	assert.True(t, got.Diffs[1].BackwardCompatible)
}

func TestWriteYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, Summarize(sampleDiffs()), FormatYAML, false))

	var got document
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, 1, got.Summary.Compatible)
	require.Len(t, got.Diffs, 3)
	assert.Equal(t, "FieldMissing", got.Diffs[2].Kind)
	assert.Contains(t, buf.String(), "hasBreakingChanges: true")
}

func TestWriteRejectsUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, Write(&buf, Summarize(nil), "csv", false))
	assert.Zero(t, buf.Len())
}
