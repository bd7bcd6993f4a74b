package analyze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/factorio-tools/bpeditor/internal/blueprint"
	"github.com/factorio-tools/bpeditor/internal/blueprint/codec"
)

func encodeBlueprint(t *testing.T, label string, entities int) string {
	t.Helper()
	bp := blueprint.New()
	bp.Label = label
	for i := 0; i < entities; i++ {
		bp.Entities = append(bp.Entities, blueprint.Entity{
			EntityNumber: i + 1,
			Name:         "transport-belt",
			Position:     blueprint.Position{X: float64(i) + 0.5, Y: 0.5},
		})
	}
	s, err := codec.Encode(bp)
	require.NoError(t, err)
	return s
}

func encodeBook(t *testing.T, label string, blueprints ...*blueprint.Blueprint) string {
	t.Helper()
	book := blueprint.NewBook()
	book.Label = label
	for i, bp := range blueprints {
		book.Blueprints = append(book.Blueprints, blueprint.BookEntry{Index: i, Blueprint: bp})
	}
	s, err := codec.EncodeBook(book)
	require.NoError(t, err)
	return s
}

func TestStringBlueprint(t *testing.T) {
	report := String(encodeBlueprint(t, "Belts", 3), 1)

	assert.True(t, report.Valid)
	assert.Equal(t, "blueprint", report.Kind)
	assert.Equal(t, "Belts", report.Label)
	assert.Equal(t, 3, report.TotalEntities)
	assert.Equal(t, []string{"transport-belt"}, report.EntityNames)
}

func TestStringUnlabeled(t *testing.T) {
	report := String(encodeBlueprint(t, "", 0), 1)
	assert.True(t, report.Valid)
	assert.Equal(t, "Unnamed", report.Label)
}

func TestStringBook(t *testing.T) {
	inner := blueprint.New()
	inner.Label = "inner"
	unnamed := blueprint.New()

	report := String(encodeBook(t, "Shelf", inner, unnamed), 2)

	assert.True(t, report.Valid)
	assert.Equal(t, "blueprint_book", report.Kind)
	assert.Equal(t, "Shelf", report.Label)
	assert.Equal(t, 2, report.TotalBlueprints)
	assert.Equal(t, []string{"inner", "Blueprint 2"}, report.BlueprintLabels)
}

func TestStringInvalid(t *testing.T) {
	report := String("0eNnotvalidatall", 7)
	assert.False(t, report.Valid)
	assert.Equal(t, 7, report.Index)
	assert.NotEmpty(t, report.Error)
}

func TestText(t *testing.T) {
	text := "intro\n" + encodeBlueprint(t, "big", 5) + "\nmiddle\n" +
		encodeBlueprint(t, "small", 1) + "\n" +
		encodeBook(t, "book") + "\ntrailing garbage"

	reports, summary := Text(text)

	require.Len(t, reports, 3)
	assert.Equal(t, 3, summary.TotalStrings)
	assert.Equal(t, 3, summary.Valid)
	assert.Equal(t, 2, summary.Blueprints)
	assert.Equal(t, 1, summary.Books)
	assert.Zero(t, summary.Invalid)
	assert.Equal(t, 6, summary.TotalEntities)
	assert.Equal(t, "big", summary.MostComplexLabel)
	assert.Equal(t, 5, summary.MostComplexEntities)
}

func TestTextEmpty(t *testing.T) {
	reports, summary := Text("nothing to see here")
	assert.Empty(t, reports)
	assert.Zero(t, summary.TotalStrings)
}

func TestSummarizeCountsInvalid(t *testing.T) {
	reports := []Report{
		{Valid: true, Kind: "blueprint", TotalEntities: 2, Label: "ok"},
		{Valid: false, Error: "boom"},
	}
	summary := Summarize(reports)
	assert.Equal(t, 1, summary.Valid)
	assert.Equal(t, 1, summary.Invalid)
	assert.Equal(t, 2, summary.TotalEntities)
}
