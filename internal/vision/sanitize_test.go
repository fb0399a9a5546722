package vision

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateJSONAgainstSchema(t *testing.T) {
	schema := BuildCardJSONSchema()

	valid := []byte(`{"name":"Charizard","set_name":"Base Set","card_number":"4/102","year":"1999","field_confidence":{"name":0.98}}`)
	assert.NoError(t, ValidateJSONAgainstSchema(schema, valid))

	missingName := []byte(`{"set_name":"Base Set"}`)
	assert.Error(t, ValidateJSONAgainstSchema(schema, missingName))

	badYear := []byte(`{"name":"Charizard","year":"99"}`)
	assert.Error(t, ValidateJSONAgainstSchema(schema, badYear))

	unknownKey := []byte(`{"name":"Charizard","grade":"PSA 10"}`)
	assert.Error(t, ValidateJSONAgainstSchema(schema, unknownKey))
}

func TestSanitizeDropsEmptyAndNullishOptionals(t *testing.T) {
	doc := []byte(`{"name":"Charizard","set_name":"  ","rarity":"unknown","language":"null","notes":"holo pattern"}`)

	cleaned, dropped, err := SanitizeOptionalFields(doc)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"set_name", "rarity", "language"}, dropped)

	var m map[string]any
	require.NoError(t, json.Unmarshal(cleaned, &m))
	assert.Equal(t, "Charizard", m["name"])
	assert.Equal(t, "holo pattern", m["notes"])
	assert.NotContains(t, m, "set_name")
	assert.NotContains(t, m, "rarity")
}

func TestSanitizeNeverDropsName(t *testing.T) {
	doc := []byte(`{"name":""}`)

	cleaned, dropped, err := SanitizeOptionalFields(doc)
	require.NoError(t, err)
	assert.NotContains(t, dropped, "name")

	// the offending name is left in place for validation to reject
	assert.Error(t, ValidateJSONAgainstSchema(BuildCardJSONSchema(), cleaned))
}

func TestSanitizeNormalizesYear(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{"numeric year", `{"name":"x","year":1999}`, "1999"},
		{"year with noise", `{"name":"x","year":"© 1999 WotC"}`, "1999"},
		{"already clean", `{"name":"x","year":"2024"}`, "2024"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cleaned, _, err := SanitizeOptionalFields([]byte(tt.doc))
			require.NoError(t, err)
			var m map[string]any
			require.NoError(t, json.Unmarshal(cleaned, &m))
			assert.Equal(t, tt.want, m["year"])
		})
	}
}

func TestSanitizeDropsHopelessYear(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"no digits", `{"name":"x","year":"unknown era"}`},
		{"numeric but not a year", `{"name":"x","year":99}`},
		{"fractional", `{"name":"x","year":1999.5}`},
		{"wrong type", `{"name":"x","year":true}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cleaned, dropped, err := SanitizeOptionalFields([]byte(tt.doc))
			require.NoError(t, err)
			assert.Contains(t, dropped, "year")

			var m map[string]any
			require.NoError(t, json.Unmarshal(cleaned, &m))
			assert.NotContains(t, m, "year")
			assert.NoError(t, ValidateJSONAgainstSchema(BuildCardJSONSchema(), cleaned))
		})
	}
}

func TestSanitizeDropsMalformedCardNumber(t *testing.T) {
	cleaned, dropped, err := SanitizeOptionalFields([]byte(`{"name":"x","card_number":"#4 of 102!!"}`))
	require.NoError(t, err)
	assert.Contains(t, dropped, "card_number")

	assert.NoError(t, ValidateJSONAgainstSchema(BuildCardJSONSchema(), cleaned))
}

func TestSanitizeClampsConfidenceAndDropsUnknownKeys(t *testing.T) {
	doc := []byte(`{"name":"x","grade":"PSA 10","field_confidence":{"name":1.4,"rarity":-0.2,"grade":0.5}}`)

	cleaned, dropped, err := SanitizeOptionalFields(doc)
	require.NoError(t, err)
	assert.Contains(t, dropped, "grade")

	var m struct {
		FieldConfidence map[string]float64 `json:"field_confidence"`
	}
	require.NoError(t, json.Unmarshal(cleaned, &m))
	assert.Equal(t, 1.0, m.FieldConfidence["name"])
	assert.Equal(t, 0.0, m.FieldConfidence["rarity"])
	assert.NotContains(t, m.FieldConfidence, "grade")

	assert.NoError(t, ValidateJSONAgainstSchema(BuildCardJSONSchema(), cleaned))
}

func TestDecodeResult(t *testing.T) {
	data := []byte(`{"name":"Charizard","card_number":"4/102","field_confidence":{"name":0.98,"card_number":0.91}}`)

	fields, conf, err := DecodeResult(data)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"name": "Charizard", "card_number": "4/102"}, fields)
	assert.InDelta(t, 0.98, float64(conf["name"]), 0.001)
	assert.InDelta(t, 0.91, float64(conf["card_number"]), 0.001)
}

func TestDecodeResultWithoutConfidence(t *testing.T) {
	fields, conf, err := DecodeResult([]byte(`{"name":"Pikachu"}`))
	require.NoError(t, err)
	assert.Equal(t, "Pikachu", fields["name"])
	assert.Nil(t, conf)
}
