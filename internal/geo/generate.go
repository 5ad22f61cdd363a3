package geo

type genFunc func(p *Position, from Square, moves *[]Move)

// 按子种分派
var generators = [numPieceTypes]genFunc{
	Pyramid: genPyramidMoves,
	Column:  genColumnMoves,
	Sphere:  genSphereMoves,
	Ring:    genRingMoves,
	Diamond: genDiamondMoves,
}

// GenOptions 过滤条件；零值表示不过滤
type GenOptions struct {
	Piece   PieceType // PieceNone = 所有子种
	From    Square    // 仅在 FromSet 时生效，Square 0 是合法格
	FromSet bool
}

// FromSquare 只看 sq 上的子
func FromSquare(sq Square) GenOptions { return GenOptions{From: sq, FromSet: true} }

// 生成指定一方的伪合法走法
func (p *Position) GeneratePseudoMovesForSide(side Side) []Move {
	return p.generate(side, GenOptions{})
}

// 伪合法（本变体没有“送将”概念）
func (p *Position) GeneratePseudoMoves() []Move {
	return p.generate(p.SideToMove, GenOptions{})
}

// GenerateMoves 轮到的一方的走法，可按子种或出发格过滤
func (p *Position) GenerateMoves(opts GenOptions) []Move {
	return p.generate(p.SideToMove, opts)
}

func (p *Position) generate(side Side, opts GenOptions) []Move {
	moves := make([]Move, 0, 64)
	if opts.FromSet && !opts.From.Valid() {
		return moves
	}
	for sq := Square(0); sq < NumSquares; sq++ {
		if opts.FromSet && sq != opts.From {
			continue
		}
		pc := p.Board.Squares[sq]
		if pc == 0 || pc.Side() != side {
			continue
		}
		pt := pc.Type()
		if opts.Piece != PieceNone && opts.Piece != pt {
			continue
		}
		if gen := generators[pt]; gen != nil {
			gen(p, sq, &moves)
		}
	}
	return moves
}

// buildMove 根据终点是否有子决定 Normal / Capture
func buildMove(p *Position, from, to Square, flags MoveFlag) Move {
	m := Move{
		From:  from,
		To:    to,
		Piece: p.Board.Squares[from].Type(),
		Flags: flags,
	}
	if captured := p.Board.Squares[to]; captured != 0 {
		m.Captured = captured
		m.Flags = m.Flags&^FlagNormal | FlagCapture
	}
	return m
}

// addStep 单步落子：空格或敌子可以，己方子不行
func addStep(p *Position, from, to Square, side Side, moves *[]Move) bool {
	if to == NoSquare {
		return false
	}
	dst := p.Board.Squares[to]
	if dst != 0 && dst.Side() == side {
		return false
	}
	*moves = append(*moves, buildMove(p, from, to, FlagNormal))
	return true
}
