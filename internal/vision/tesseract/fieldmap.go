package tesseract

import (
	"regexp"
	"strings"

	"github.com/slabworks/cardscan/internal/vision"
)

var (
	reCardNumber = regexp.MustCompile(`\b([A-Za-z0-9]{1,5}\s*/\s*[A-Za-z0-9]{1,5})\b`)
	reYear       = regexp.MustCompile(`\b(19[5-9]\d|20[0-4]\d)\b`)
	reRarity     = regexp.MustCompile(`(?i)\b(common|uncommon|rare|holo(?:foil)?|mythic|legendary|promo|secret|ultra|parallel)\b`)
	reSetLine    = regexp.MustCompile(`(?i)\b(series|set|edition|expansion)\b`)
	reNoise      = regexp.MustCompile(`[^A-Za-z0-9' \-]`)
)

// mapFields turns normalized OCR text into the canonical card fields with a
// per-field heuristic confidence. Structured patterns (card number, year) score
// high; positional guesses like the name line stay low so the host can
// surface them for review.
func mapFields(text string) (map[string]string, map[string]float32) {
	fields := make(map[string]string)
	conf := make(map[string]float32)

	if m := reCardNumber.FindString(text); m != "" {
		fields[vision.FieldCardNumber] = strings.ReplaceAll(m, " ", "")
		conf[vision.FieldCardNumber] = 0.9
	}
	if m := reYear.FindString(text); m != "" {
		fields[vision.FieldYear] = m
		conf[vision.FieldYear] = 0.7
	}
	if m := reRarity.FindString(text); m != "" {
		fields[vision.FieldRarity] = strings.ToLower(m)
		conf[vision.FieldRarity] = 0.8
	}

	lines := strings.Split(text, "\n")
	for _, ln := range lines {
		ln = strings.TrimSpace(ln)
		if ln == "" {
			continue
		}
		// card name: first plausible line of mostly letters
		if _, ok := fields[vision.FieldName]; !ok {
			clean := strings.TrimSpace(reNoise.ReplaceAllString(ln, ""))
			if len(clean) >= 3 && letterRatio(clean) > 0.6 {
				fields[vision.FieldName] = clean
				conf[vision.FieldName] = 0.5
				continue
			}
		}
		if _, ok := fields[vision.FieldSetName]; !ok && reSetLine.MatchString(ln) {
			fields[vision.FieldSetName] = strings.TrimSpace(ln)
			conf[vision.FieldSetName] = 0.4
		}
	}

	return fields, conf
}

func letterRatio(s string) float64 {
	if s == "" {
		return 0
	}
	letters := 0
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || r == ' ' {
			letters++
		}
	}
	return float64(letters) / float64(len(s))
}
