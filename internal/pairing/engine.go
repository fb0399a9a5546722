package pairing

import (
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/slabworks/cardscan/constants"
	"github.com/slabworks/cardscan/internal/entity"
)

// Confidence levels assigned by the engine. Only a full front+back token
// match earns 1.0; everything resolved by sequence order stays at 0.6 so
// the host can flag it for user confirmation.
const (
	ConfidenceTokenMatch = 1.0
	ConfidenceSequence   = 0.6
)

// CandidatePair is one front/back grouping proposed by a pairing run.
type CandidatePair struct {
	Front      entity.Upload
	Back       *entity.Upload
	Confidence float32
}

// Orphan is an upload the engine refused to pair, with the reason why.
type Orphan struct {
	Upload entity.Upload
	Reason constants.OrphanReason
}

// Result partitions the input exactly: every upload appears in exactly one bucket.
type Result struct {
	Pairs   []CandidatePair
	Orphans []Orphan
}

// Pair groups a batch's uploads into front/back pairs plus a remainder of
// orphans. Pure over its input and fully deterministic: equal input produces
// identical output. The exact-partition property is checked before returning;
// a violation is a defect surfaced as an error, never silently dropped.
func Pair(uploads []entity.Upload) (Result, error) {
	sorted := make([]entity.Upload, len(uploads))
	copy(sorted, uploads)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].SequenceIndex != sorted[j].SequenceIndex {
			return sorted[i].SequenceIndex < sorted[j].SequenceIndex
		}
		return sorted[i].Filename < sorted[j].Filename
	})

	type member struct {
		upload entity.Upload
		side   Side
	}

	// group by base key, keeping groups in first-appearance order
	groups := make(map[string][]member)
	var order []string
	for _, u := range sorted {
		key, side := splitKey(u.Filename)
		if _, seen := groups[key]; !seen {
			order = append(order, key)
		}
		groups[key] = append(groups[key], member{upload: u, side: side})
	}

	var res Result
	var fallback []entity.Upload // hint-less singletons, paired by sequence order below

	for _, key := range order {
		g := groups[key]
		switch {
		case len(g) == 1:
			m := g[0]
			if m.side == SideUnknown {
				fallback = append(fallback, m.upload)
			} else {
				// a lone "x_front" expected a partner that never came
				res.Orphans = append(res.Orphans, Orphan{Upload: m.upload, Reason: constants.OrphanReasonUnmatched})
			}

		case len(g) == 2:
			a, b := g[0], g[1]
			switch {
			case a.side == SideFront && b.side == SideBack:
				res.Pairs = append(res.Pairs, makePair(a.upload, b.upload, ConfidenceTokenMatch))
			case a.side == SideBack && b.side == SideFront:
				res.Pairs = append(res.Pairs, makePair(b.upload, a.upload, ConfidenceTokenMatch))
			case a.side == b.side && a.side != SideUnknown:
				// two fronts (or two backs): refuse to guess
				res.Orphans = append(res.Orphans,
					Orphan{Upload: a.upload, Reason: constants.OrphanReasonConflict},
					Orphan{Upload: b.upload, Reason: constants.OrphanReasonConflict},
				)
			case a.side == SideBack || b.side == SideFront:
				// one resolved hint; honor it, the other takes the complement
				res.Pairs = append(res.Pairs, makePair(b.upload, a.upload, ConfidenceSequence))
			default:
				// unresolved hints: lower sequence index is the front
				res.Pairs = append(res.Pairs, makePair(a.upload, b.upload, ConfidenceSequence))
			}

		default:
			for _, m := range g {
				res.Orphans = append(res.Orphans, Orphan{Upload: m.upload, Reason: constants.OrphanReasonConflict})
			}
		}
	}

	// sequence-order fallback: adjacent twos, lower index is the front
	for i := 0; i+1 < len(fallback); i += 2 {
		res.Pairs = append(res.Pairs, makePair(fallback[i], fallback[i+1], ConfidenceSequence))
	}
	if len(fallback)%2 == 1 {
		res.Orphans = append(res.Orphans, Orphan{Upload: fallback[len(fallback)-1], Reason: constants.OrphanReasonUnmatched})
	}

	if err := checkPartition(uploads, res); err != nil {
		return Result{}, err
	}
	return res, nil
}

func makePair(front, back entity.Upload, confidence float32) CandidatePair {
	b := back
	return CandidatePair{Front: front, Back: &b, Confidence: confidence}
}

// checkPartition verifies every input upload landed in exactly one output bucket.
func checkPartition(uploads []entity.Upload, res Result) error {
	seen := make(map[uuid.UUID]int, len(uploads))
	record := func(id uuid.UUID) {
		seen[id]++
	}
	for _, p := range res.Pairs {
		record(p.Front.ID)
		if p.Back != nil {
			record(p.Back.ID)
		}
	}
	for _, o := range res.Orphans {
		record(o.Upload.ID)
	}
	if len(seen) != len(uploads) {
		return fmt.Errorf("pairing partition violated: %d inputs, %d outputs", len(uploads), len(seen))
	}
	for _, u := range uploads {
		if n := seen[u.ID]; n != 1 {
			return fmt.Errorf("pairing partition violated: upload %s appears %d times", u.ID, n)
		}
	}
	return nil
}
