package geo

// historyEntry 保存撤销一步所需的全部状态
type historyEntry struct {
	move       Move
	turn       Side
	halfMoves  int
	moveNumber int
	diamonds   DiamondRegistry // 数组，赋值即深拷贝
	hash       uint64
}

// makeMove 执行走子并返回撤销记录。传进来的应当是 GenerateMoves 生成的走法。
func (p *Position) makeMove(m Move) historyEntry {
	initZobrist()

	us := p.SideToMove
	entry := historyEntry{
		move:       m,
		turn:       us,
		halfMoves:  p.HalfMoves,
		moveNumber: p.MoveNumber,
		diamonds:   p.Diamonds,
		hash:       p.Hash,
	}

	pc := p.Board.Squares[m.From]
	captured := p.Board.Squares[m.To]
	h := p.Hash

	if captured != 0 {
		if captured.Type() == Diamond {
			p.Diamonds.free(captured.Side(), m.To)
		}
		h ^= pieceHashKey(captured, m.To)
	}

	h ^= pieceHashKey(pc, m.From)
	p.Board.Squares[m.From] = 0

	moved := pc
	if m.Is(FlagPromotion) {
		moved = NewPiece(pc.Side(), m.Promotion)
		if m.Promotion == Diamond {
			p.Diamonds.occupy(pc.Side(), m.To)
		}
	} else if pc.Type() == Diamond {
		p.Diamonds.relocate(pc.Side(), m.From, m.To)
	}
	p.Board.Squares[m.To] = moved
	h ^= pieceHashKey(moved, m.To)

	if pc.Type() == Pyramid || captured != 0 {
		p.HalfMoves = 0
	} else {
		p.HalfMoves++
	}
	if us == Black {
		p.MoveNumber++
	}
	p.SideToMove = us.Opposite()
	h ^= zobristSide
	p.Hash = h

	return entry
}

// unmakeMove 按记录恢复到走子前，逐位一致
func (p *Position) unmakeMove(e historyEntry) {
	m := e.move
	moved := p.Board.Squares[m.To]
	if m.Is(FlagPromotion) {
		moved = NewPiece(moved.Side(), Pyramid)
	}
	p.Board.Squares[m.From] = moved
	p.Board.Squares[m.To] = m.Captured

	p.SideToMove = e.turn
	p.HalfMoves = e.halfMoves
	p.MoveNumber = e.moveNumber
	p.Diamonds = e.diamonds
	p.Hash = e.hash
}

// ApplyMove 不修改自身，返回走子后的新局面
func (p *Position) ApplyMove(m Move) (*Position, bool) {
	if !m.From.Valid() || !m.To.Valid() {
		return nil, false
	}
	pc := p.Board.Squares[m.From]
	if pc == 0 || pc.Side() != p.SideToMove {
		return nil, false
	}
	np := p.Clone()
	np.makeMove(m)
	return np, true
}
