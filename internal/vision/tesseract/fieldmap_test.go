package tesseract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slabworks/cardscan/internal/vision"
)

func TestMapFieldsTypicalCard(t *testing.T) {
	text := "Charizard\n120 HP\nRare Holo\n4/102\n© 1999 Wizards"

	fields, conf := mapFields(text)

	assert.Equal(t, "Charizard", fields[vision.FieldName])
	assert.Equal(t, "4/102", fields[vision.FieldCardNumber])
	assert.Equal(t, "1999", fields[vision.FieldYear])
	assert.Equal(t, "rare", fields[vision.FieldRarity])

	// structured matches score higher than the positional name guess
	assert.Greater(t, conf[vision.FieldCardNumber], conf[vision.FieldName])
	for f, c := range conf {
		assert.GreaterOrEqual(t, c, float32(0), f)
		assert.LessOrEqual(t, c, float32(1), f)
	}
}

func TestMapFieldsCardNumberWithSpaces(t *testing.T) {
	fields, _ := mapFields("Pikachu\n58 / 102")
	assert.Equal(t, "58/102", fields[vision.FieldCardNumber])
}

func TestMapFieldsSetLine(t *testing.T) {
	fields, _ := mapFields("Blastoise\nBase Set Edition")
	assert.Equal(t, "Blastoise", fields[vision.FieldName])
	assert.Equal(t, "Base Set Edition", fields[vision.FieldSetName])
}

func TestMapFieldsSkipsNoiseLinesForName(t *testing.T) {
	// symbol soup must not become the card name
	fields, _ := mapFields("#%@ |||\n4/102\nVenusaur\n")
	assert.Equal(t, "Venusaur", fields[vision.FieldName])
}

func TestMapFieldsEmptyText(t *testing.T) {
	fields, conf := mapFields("")
	assert.Empty(t, fields)
	assert.Empty(t, conf)
}

func TestMapFieldsYearRange(t *testing.T) {
	// years outside the plausible print window are not picked up
	fields, _ := mapFields("Somecard\n1234 5678")
	_, ok := fields[vision.FieldYear]
	assert.False(t, ok)
	require.Contains(t, fields, vision.FieldName)
}
