package domain

// phaseOrder is the only forward path through a session.
var phaseOrder = []Phase{PhaseSetup, PhaseInput, PhaseGrouping, PhaseVoting, PhaseResults}

// PhaseIndex returns the position of p in the forward path, or -1 if unknown.
func PhaseIndex(p Phase) int {
	for i, candidate := range phaseOrder {
		if candidate == p {
			return i
		}
	}
	return -1
}

// ValidPhase reports whether p is a known phase.
func ValidPhase(p Phase) bool {
	return PhaseIndex(p) >= 0
}

// NextPhase returns the phase after p and false when p is terminal or unknown.
func NextPhase(p Phase) (Phase, bool) {
	i := PhaseIndex(p)
	if i < 0 || i == len(phaseOrder)-1 {
		return "", false
	}
	return phaseOrder[i+1], true
}

// CanTransition reports whether from -> to is legal: exactly one step forward,
// or any strictly earlier phase.
func CanTransition(from, to Phase) bool {
	fi, ti := PhaseIndex(from), PhaseIndex(to)
	if fi < 0 || ti < 0 {
		return false
	}
	return ti == fi+1 || ti < fi
}

// CardSize is the fixed footprint of a response card.
type CardSize struct {
	Width  float64
	Height float64
}

// OverlapPercent returns how much of a's card area is covered by b's card,
// as a percentage of one card's area.
func OverlapPercent(a, b Position, size CardSize) float64 {
	if size.Width <= 0 || size.Height <= 0 {
		return 0
	}
	w := minFloat(a.X+size.Width, b.X+size.Width) - maxFloat(a.X, b.X)
	h := minFloat(a.Y+size.Height, b.Y+size.Height) - maxFloat(a.Y, b.Y)
	if w <= 0 || h <= 0 {
		return 0
	}
	return (w * h) / (size.Width * size.Height) * 100
}

// MergeCandidate picks the response that a card dropped at pos should merge
// with: the one with the largest overlap at or above thresholdPercent.
// Ties go to the earliest response in the given order.
func MergeCandidate(self *Response, pos Position, others []*Response, size CardSize, thresholdPercent float64) (*Response, float64) {
	var best *Response
	bestOverlap := 0.0
	for _, other := range others {
		if other == nil || other.ID == self.ID {
			continue
		}
		overlap := OverlapPercent(pos, other.Position, size)
		if overlap < thresholdPercent {
			continue
		}
		if best == nil || overlap > bestOverlap {
			best = other
			bestOverlap = overlap
		}
	}
	return best, bestOverlap
}

func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxFloat(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
