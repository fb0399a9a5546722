package pairing

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slabworks/cardscan/constants"
	"github.com/slabworks/cardscan/internal/entity"
)

func upload(filename string, seq int) entity.Upload {
	return entity.Upload{
		ID:            uuid.New(),
		BatchID:       uuid.Nil,
		Filename:      filename,
		SequenceIndex: seq,
		Status:        constants.UploadStatusUnassigned,
	}
}

func pairFilenames(p CandidatePair) (string, string) {
	back := ""
	if p.Back != nil {
		back = p.Back.Filename
	}
	return p.Front.Filename, back
}

func TestPairTokenMatch(t *testing.T) {
	ups := []entity.Upload{
		upload("charizard_front.jpg", 0),
		upload("charizard_back.jpg", 1),
	}

	res, err := Pair(ups)
	require.NoError(t, err)
	require.Len(t, res.Pairs, 1)
	assert.Empty(t, res.Orphans)

	front, back := pairFilenames(res.Pairs[0])
	assert.Equal(t, "charizard_front.jpg", front)
	assert.Equal(t, "charizard_back.jpg", back)
	assert.Equal(t, float32(ConfidenceTokenMatch), res.Pairs[0].Confidence)
}

func TestPairTokenMatchReversedOrder(t *testing.T) {
	// back scanned first: the token match must still put front first
	ups := []entity.Upload{
		upload("mew_back.jpg", 0),
		upload("mew_front.jpg", 1),
	}

	res, err := Pair(ups)
	require.NoError(t, err)
	require.Len(t, res.Pairs, 1)

	front, back := pairFilenames(res.Pairs[0])
	assert.Equal(t, "mew_front.jpg", front)
	assert.Equal(t, "mew_back.jpg", back)
	assert.Equal(t, float32(ConfidenceTokenMatch), res.Pairs[0].Confidence)
}

func TestPairSequenceFallback(t *testing.T) {
	// no side hints at all: adjacent files pair up, lower index in front
	ups := []entity.Upload{
		upload("IMG_0001.jpg", 0),
		upload("IMG_0002.jpg", 1),
		upload("IMG_0003.jpg", 2),
		upload("IMG_0004.jpg", 3),
	}

	res, err := Pair(ups)
	require.NoError(t, err)
	require.Len(t, res.Pairs, 2)
	assert.Empty(t, res.Orphans)

	f0, b0 := pairFilenames(res.Pairs[0])
	assert.Equal(t, "IMG_0001.jpg", f0)
	assert.Equal(t, "IMG_0002.jpg", b0)
	f1, b1 := pairFilenames(res.Pairs[1])
	assert.Equal(t, "IMG_0003.jpg", f1)
	assert.Equal(t, "IMG_0004.jpg", b1)

	for _, p := range res.Pairs {
		assert.Equal(t, float32(ConfidenceSequence), p.Confidence)
	}
}

func TestPairOddFallbackLeavesOrphan(t *testing.T) {
	ups := []entity.Upload{
		upload("IMG_0001.jpg", 0),
		upload("IMG_0002.jpg", 1),
		upload("IMG_0003.jpg", 2),
	}

	res, err := Pair(ups)
	require.NoError(t, err)
	assert.Len(t, res.Pairs, 1)
	require.Len(t, res.Orphans, 1)
	assert.Equal(t, "IMG_0003.jpg", res.Orphans[0].Upload.Filename)
	assert.Equal(t, constants.OrphanReasonUnmatched, res.Orphans[0].Reason)
}

func TestPairHintedSingletonIsOrphan(t *testing.T) {
	// a lone "x_front" expected a partner; never pool it with strangers
	ups := []entity.Upload{
		upload("blastoise_front.jpg", 0),
		upload("IMG_0001.jpg", 1),
		upload("IMG_0002.jpg", 2),
	}

	res, err := Pair(ups)
	require.NoError(t, err)
	require.Len(t, res.Pairs, 1)
	require.Len(t, res.Orphans, 1)
	assert.Equal(t, "blastoise_front.jpg", res.Orphans[0].Upload.Filename)
	assert.Equal(t, constants.OrphanReasonUnmatched, res.Orphans[0].Reason)
}

func TestPairDuplicateSideConflict(t *testing.T) {
	ups := []entity.Upload{
		upload("gyarados_front.jpg", 0),
		upload("gyarados_front_2.jpg", 1),
	}

	res, err := Pair(ups)
	require.NoError(t, err)
	assert.Empty(t, res.Pairs)
	require.Len(t, res.Orphans, 2)
	for _, o := range res.Orphans {
		assert.Equal(t, constants.OrphanReasonConflict, o.Reason)
	}
}

func TestPairOvercrowdedGroupConflict(t *testing.T) {
	ups := []entity.Upload{
		upload("eevee_front.jpg", 0),
		upload("eevee_back.jpg", 1),
		upload("eevee_back_2.jpg", 2),
	}

	res, err := Pair(ups)
	require.NoError(t, err)
	assert.Empty(t, res.Pairs)
	require.Len(t, res.Orphans, 3)
	for _, o := range res.Orphans {
		assert.Equal(t, constants.OrphanReasonConflict, o.Reason)
	}
}

func TestPairOneHintedComplement(t *testing.T) {
	// only the back carries a hint; the hint wins over sequence order
	ups := []entity.Upload{
		upload("snorlax_back.jpg", 0),
		upload("snorlax.jpg", 1),
	}

	res, err := Pair(ups)
	require.NoError(t, err)
	require.Len(t, res.Pairs, 1)

	front, back := pairFilenames(res.Pairs[0])
	assert.Equal(t, "snorlax.jpg", front)
	assert.Equal(t, "snorlax_back.jpg", back)
	assert.Equal(t, float32(ConfidenceSequence), res.Pairs[0].Confidence)
}

func TestPairDeterministic(t *testing.T) {
	ups := []entity.Upload{
		upload("a_front.jpg", 0),
		upload("a_back.jpg", 1),
		upload("IMG_0005.jpg", 2),
		upload("IMG_0006.jpg", 3),
		upload("lone_front.jpg", 4),
	}

	first, err := Pair(ups)
	require.NoError(t, err)

	// shuffle the input slice order; sequence indexes are the identity
	shuffled := []entity.Upload{ups[4], ups[2], ups[0], ups[3], ups[1]}
	second, err := Pair(shuffled)
	require.NoError(t, err)

	require.Equal(t, len(first.Pairs), len(second.Pairs))
	for i := range first.Pairs {
		assert.Equal(t, first.Pairs[i].Front.ID, second.Pairs[i].Front.ID)
		assert.Equal(t, first.Pairs[i].Back.ID, second.Pairs[i].Back.ID)
		assert.Equal(t, first.Pairs[i].Confidence, second.Pairs[i].Confidence)
	}
	require.Equal(t, len(first.Orphans), len(second.Orphans))
	for i := range first.Orphans {
		assert.Equal(t, first.Orphans[i].Upload.ID, second.Orphans[i].Upload.ID)
	}
}

func TestPairPartitionsEveryUpload(t *testing.T) {
	ups := []entity.Upload{
		upload("x_front.jpg", 0),
		upload("x_back.jpg", 1),
		upload("y_front.jpg", 2),
		upload("IMG_0009.jpg", 3),
		upload("IMG_0010.jpg", 4),
		upload("z_back.jpg", 5),
		upload("dup_front.jpg", 6),
		upload("dup_front_1.jpg", 7),
	}

	res, err := Pair(ups)
	require.NoError(t, err)

	seen := make(map[uuid.UUID]bool)
	for _, p := range res.Pairs {
		assert.False(t, seen[p.Front.ID])
		seen[p.Front.ID] = true
		if p.Back != nil {
			assert.False(t, seen[p.Back.ID])
			seen[p.Back.ID] = true
		}
	}
	for _, o := range res.Orphans {
		assert.False(t, seen[o.Upload.ID])
		seen[o.Upload.ID] = true
	}
	assert.Len(t, seen, len(ups))
}

func TestPairEmptyInput(t *testing.T) {
	res, err := Pair(nil)
	require.NoError(t, err)
	assert.Empty(t, res.Pairs)
	assert.Empty(t, res.Orphans)
}
