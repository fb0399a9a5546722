package vision

// Canonical card field names shared by all providers. Classical OCR maps
// raw text onto these; the generative model is constrained to them by schema.
const (
	FieldName       = "name"
	FieldSetName    = "set_name"
	FieldCardNumber = "card_number"
	FieldRarity     = "rarity"
	FieldYear       = "year"
	FieldLanguage   = "language"
	FieldNotes      = "notes"
)

// CardFieldNames lists every accepted field, in display order.
var CardFieldNames = []string{
	FieldName,
	FieldSetName,
	FieldCardNumber,
	FieldRarity,
	FieldYear,
	FieldLanguage,
	FieldNotes,
}

// BuildCardJSONSchema returns a JSON-Schema (draft 2020-12 subset) as a generic
// map. It is sent to the generative model as a structured-output constraint and
// used locally to validate every provider's output before acceptance.
func BuildCardJSONSchema() map[string]any {
	confProps := map[string]any{}
	for _, f := range CardFieldNames {
		confProps[f] = map[string]any{"type": "number", "minimum": 0.0, "maximum": 1.0}
	}

	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			FieldName:       map[string]any{"type": "string", "minLength": 1},
			FieldSetName:    map[string]any{"type": "string"},
			FieldCardNumber: map[string]any{"type": "string", "pattern": `^[A-Za-z0-9]+(\s*/\s*[A-Za-z0-9]+)?$`},
			FieldRarity:     map[string]any{"type": "string"},
			FieldYear:       map[string]any{"type": "string", "pattern": `^(19|20)\d{2}$`},
			FieldLanguage:   map[string]any{"type": "string"},
			FieldNotes:      map[string]any{"type": "string"},
			"field_confidence": map[string]any{
				"type":                 "object",
				"additionalProperties": false,
				"properties":           confProps,
			},
		},
		"required": []string{FieldName},
	}
}
