package board

// IsRepetition reports whether the current position has now occurred three or
// more times. Only positions since the last irreversible move can repeat, so
// the scan is bounded by the half move clock.
func (b *Board) IsRepetition() bool {
	window := int(b.halfMoveClock)
	if window > len(b.hashHistory) {
		window = len(b.hashHistory)
	}
	count := 1 // the current occurrence
	for i := len(b.hashHistory) - window; i < len(b.hashHistory); i++ {
		if b.hashHistory[i] == b.hash {
			count++
			if count >= 3 {
				return true
			}
		}
	}
	return false
}

// IsFiftyMove reports whether fifty full moves passed without a pawn move or
// capture.
func (b *Board) IsFiftyMove() bool {
	return b.halfMoveClock >= 100
}

func (b *Board) IsDraw() bool {
	return b.IsFiftyMove() || b.IsRepetition()
}
