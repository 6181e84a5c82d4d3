package board

// Hooks for the external test package.

func (p *Position) IsLegalByApply(m Move) bool { return p.isLegalByApply(m) }

func (p *Position) EPKey() uint64 { return p.epKey() }

func ScratchLegal(p *Position, m Move) bool {
	return p.legal(m, p.Pinned(p.sideToMove))
}
