package vision

import (
	"encoding/json"
	"regexp"
	"strings"
)

var (
	reYear    = regexp.MustCompile(`^(19|20)\d{2}$`)
	reCardNum = regexp.MustCompile(`^[A-Za-z0-9]+(\s*/\s*[A-Za-z0-9]+)?$`)
)

// SanitizeOptionalFields removes or normalizes optional fields that don't meet
// the stricter schema, so the overall document can still validate. Only
// optionals are touched; a missing required "name" stays a hard failure.
func SanitizeOptionalFields(doc []byte) ([]byte, []string, error) {
	var m map[string]any
	if err := json.Unmarshal(doc, &m); err != nil {
		return nil, nil, err
	}

	var dropped []string
	drop := func(k string) {
		delete(m, k)
		dropped = append(dropped, k)
	}

	for _, k := range CardFieldNames {
		v, ok := m[k]
		if !ok {
			continue
		}
		s, isStr := v.(string)
		if !isStr {
			if k == FieldName || k == FieldYear {
				// name: let validation reject it; year: normalized below
				continue
			}
			drop(k)
			continue
		}
		s = strings.TrimSpace(s)
		if s == "" || strings.EqualFold(s, "null") || strings.EqualFold(s, "unknown") {
			if k != FieldName {
				drop(k)
			}
			continue
		}
		m[k] = s
	}

	// year often comes back as a number or with noise around it
	if v, ok := m[FieldYear]; ok {
		switch t := v.(type) {
		case float64:
			if y := strings.TrimSuffix(jsonNumber(t), ".0"); reYear.MatchString(y) {
				m[FieldYear] = y
			} else {
				drop(FieldYear)
			}
		case string:
			if !reYear.MatchString(t) {
				if y := regexp.MustCompile(`(19|20)\d{2}`).FindString(t); y != "" {
					m[FieldYear] = y
				} else {
					drop(FieldYear)
				}
			}
		default:
			drop(FieldYear)
		}
	}
	if v, ok := m[FieldCardNumber].(string); ok && !reCardNum.MatchString(v) {
		drop(FieldCardNumber)
	}

	// clamp confidences; drop entries for unknown fields
	if v, ok := m["field_confidence"].(map[string]any); ok {
		known := map[string]struct{}{}
		for _, f := range CardFieldNames {
			known[f] = struct{}{}
		}
		for k, c := range v {
			f, isNum := c.(float64)
			if _, ok := known[k]; !ok || !isNum {
				delete(v, k)
				continue
			}
			if f < 0 {
				v[k] = 0.0
			}
			if f > 1 {
				v[k] = 1.0
			}
		}
	}

	// unknown top-level keys violate additionalProperties
	for k := range m {
		if k == "field_confidence" {
			continue
		}
		found := false
		for _, f := range CardFieldNames {
			if k == f {
				found = true
				break
			}
		}
		if !found {
			drop(k)
		}
	}

	b, err := json.Marshal(m)
	if err != nil {
		return nil, nil, err
	}
	return b, dropped, nil
}

func jsonNumber(f float64) string {
	b, _ := json.Marshal(f)
	return string(b)
}
