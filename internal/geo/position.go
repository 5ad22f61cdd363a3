package geo

// DefaultGFEN 初始局面：白方在 rank 0..2，黑方在 rank 8..10
const DefaultGFEN = "drd/cssc/ppppp/6/7/8/7/6/PPPPP/CSSC/DRD w 0 1"

// 兵的前进方向：白向 NW，黑向 SE
func pyramidForward(side Side) Direction {
	if side == White {
		return NW
	}
	return SE
}

// 兵只用来吃子的两个方向：与前进方向相邻的两个方向
func pyramidAttacks(side Side) [2]Direction {
	f := pyramidForward(side)
	return [2]Direction{f.CounterClockwise(), f.Clockwise()}
}

// 兵的起始行（可以走两格）
func pyramidHomeRank(side Side) int {
	if side == White {
		return 2
	}
	return NumRanks - 3
}

// 兵的升变行
func promotionRank(side Side) int {
	if side == White {
		return NumRanks - 1
	}
	return 0
}

var promotionTargets = [...]PieceType{Column, Sphere, Ring, Diamond}

// NewEmptyPosition 空棋盘，白先。
func NewEmptyPosition() *Position {
	pos := &Position{
		Diamonds:   emptyRegistry(),
		SideToMove: White,
		MoveNumber: 1,
	}
	pos.Hash = pos.CalculateHash()
	return pos
}

func NewInitialPosition() *Position {
	pos, err := DecodePosition(DefaultGFEN)
	if err != nil {
		panic("geo: default GFEN does not decode: " + err.Error())
	}
	return pos
}

// Get 非法格子返回 0，不会 panic
func (p *Position) Get(sq Square) Piece {
	if !sq.Valid() {
		return 0
	}
	return p.Board.Squares[sq]
}

// Put 放子；非法子、非法格、或同色第三颗钻石都会被拒绝。
func (p *Position) Put(pc Piece, sq Square) bool {
	if !sq.Valid() || !pc.Type().Valid() {
		return false
	}
	side := pc.Side()
	old := p.Board.Squares[sq]

	if pc.Type() == Diamond && !p.Diamonds.hasFree(side) {
		// 用钻石替换本方钻石不算第三颗
		if old.Type() != Diamond || old.Side() != side {
			return false
		}
	}

	if old != 0 {
		p.clearSquare(sq)
	}
	p.Board.Squares[sq] = pc
	p.Hash ^= pieceHashKey(pc, sq)
	if pc.Type() == Diamond {
		p.Diamonds.occupy(side, sq)
	}
	return true
}

// Remove 清空格子并返回原来的子
func (p *Position) Remove(sq Square) Piece {
	if !sq.Valid() {
		return 0
	}
	pc := p.Board.Squares[sq]
	if pc == 0 {
		return 0
	}
	p.clearSquare(sq)
	return pc
}

func (p *Position) clearSquare(sq Square) {
	pc := p.Board.Squares[sq]
	p.Board.Squares[sq] = 0
	p.Hash ^= pieceHashKey(pc, sq)
	if pc.Type() == Diamond {
		p.Diamonds.free(pc.Side(), sq)
	}
}

// Eliminated：任何一方两颗钻石都没了
func (p *Position) Eliminated() bool {
	return p.Diamonds.Lost(White) || p.Diamonds.Lost(Black)
}

// Loser 返回失去全部钻石的一方；双方都还在时为 NoSide
func (p *Position) Loser() Side {
	switch {
	case p.Diamonds.Lost(White):
		return White
	case p.Diamonds.Lost(Black):
		return Black
	}
	return NoSide
}

// Clone 深拷贝（所有字段都是值类型）
func (p *Position) Clone() *Position {
	np := *p
	return &np
}
