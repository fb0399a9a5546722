package pairing

import (
	"path/filepath"
	"regexp"
	"strings"
)

// Side is the filename-derived hint for which face of the card an upload shows.
type Side int

const (
	SideUnknown Side = iota
	SideFront
	SideBack
)

func (s Side) String() string {
	switch s {
	case SideFront:
		return "front"
	case SideBack:
		return "back"
	}
	return "unknown"
}

var (
	reTokenSplit = regexp.MustCompile(`[\s_\-.]+`)
	reNumeric    = regexp.MustCompile(`^\d+$`)
	reFrontTok   = regexp.MustCompile(`^(front|fr|f)\d*$`)
	reBackTok    = regexp.MustCompile(`^(back|bk|b)\d*$`)
)

// splitKey normalizes a filename into a base key and a side hint. The side
// discriminator token is recognized case-insensitively at the end of the name
// ("front"/"f"/"back"/"b", optionally with glued digits); numeric tokens
// trailing the discriminator are stripped as well. Bare numerics without a
// discriminator stay in the base key — they are the identity in camera-style
// names like IMG_0412.
func splitKey(filename string) (string, Side) {
	name := strings.ToLower(strings.TrimSuffix(filename, filepath.Ext(filename)))
	tokens := reTokenSplit.Split(name, -1)

	// drop empty tokens from leading/trailing separators
	kept := tokens[:0]
	for _, t := range tokens {
		if t != "" {
			kept = append(kept, t)
		}
	}
	tokens = kept
	if len(tokens) == 0 {
		return name, SideUnknown
	}

	// Walk back over numeric suffixes looking for a discriminator. The numerics
	// are only discarded when a discriminator is actually found behind them —
	// otherwise they are the identity and stay in the base key.
	probe := len(tokens)
	for probe > 1 && reNumeric.MatchString(tokens[probe-1]) {
		probe--
	}
	if probe > 1 {
		switch last := tokens[probe-1]; {
		case reFrontTok.MatchString(last):
			return strings.Join(tokens[:probe-1], "_"), SideFront
		case reBackTok.MatchString(last):
			return strings.Join(tokens[:probe-1], "_"), SideBack
		}
	}
	return strings.Join(tokens, "_"), SideUnknown
}
