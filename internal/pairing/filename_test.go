package pairing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitKey(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		wantKey  string
		wantSide Side
	}{
		{"front suffix", "charizard_front.jpg", "charizard", SideFront},
		{"back suffix", "charizard_back.jpg", "charizard", SideBack},
		{"short front token", "pikachu_f.png", "pikachu", SideFront},
		{"short back token", "pikachu_b.png", "pikachu", SideBack},
		{"abbreviated tokens", "mewtwo_fr.jpeg", "mewtwo", SideFront},
		{"uppercase and dashes", "Base-Set-FRONT.JPG", "base_set", SideFront},
		{"mixed separators", "card 12.front.jpg", "card_12", SideFront},
		{"numbered side token", "card_front_2.jpg", "card", SideFront},
		{"trailing counter after side", "slab_back_001.png", "slab", SideBack},
		{"no side hint", "IMG_0001.jpg", "img_0001", SideUnknown},
		{"numeric only stays intact", "20240131_093011.jpg", "20240131_093011", SideUnknown},
		{"side word alone is not a hint", "front.jpg", "front", SideUnknown},
		{"side word mid-name ignored", "frontier_town.jpg", "frontier_town", SideUnknown},
		{"f token with digits", "deck_f2.webp", "deck", SideFront},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, side := splitKey(tt.filename)
			assert.Equal(t, tt.wantKey, key)
			assert.Equal(t, tt.wantSide, side)
		})
	}
}
