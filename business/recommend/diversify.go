package recommend

import "shopReco/domain"

// Diversify permutes the top `window` candidates so that adjacent items
// do not repeat the same brand+category pair. The greedy rule: if the
// next candidate clusters with the previously selected item, defer it
// behind the first candidate in the window that does not; if no
// alternative exists, keep original order. Items beyond the window are
// untouched. No candidate is ever dropped or duplicated.
func Diversify(items []domain.RankedCandidate, window int, productsByID map[string]domain.Product) []domain.RankedCandidate {
	if window <= 1 || len(items) <= 1 {
		return items
	}
	if window > len(items) {
		window = len(items)
	}

	pending := make([]domain.RankedCandidate, window)
	copy(pending, items[:window])

	out := make([]domain.RankedCandidate, 0, len(items))
	for len(pending) > 0 {
		pick := 0
		if len(out) > 0 && clusters(out[len(out)-1], pending[0], productsByID) {
			for j := 1; j < len(pending); j++ {
				if !clusters(out[len(out)-1], pending[j], productsByID) {
					pick = j
					break
				}
			}
		}

		out = append(out, pending[pick])
		pending = append(pending[:pick], pending[pick+1:]...)
	}

	out = append(out, items[window:]...)
	return out
}

func clusters(a, b domain.RankedCandidate, productsByID map[string]domain.Product) bool {
	pa, okA := productsByID[a.ProductID]
	pb, okB := productsByID[b.ProductID]
	if !okA || !okB {
		return false
	}
	return pa.Brand == pb.Brand && pa.Category == pb.Category
}
