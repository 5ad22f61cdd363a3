package geo

// 钻石：相邻一格；北侧两个方向（NW/NE）有一个可进入时，可沿 North 跳两行，南侧同理
func genDiamondMoves(p *Position, from Square, moves *[]Move) {
	side := p.Board.Squares[from].Side()
	for d := Direction(0); d < numDirections; d++ {
		addStep(p, from, neighbors[from][d], side, moves)
	}

	if diamondOpen(p, from, NW, side) || diamondOpen(p, from, NE, side) {
		addStep(p, from, northSkip[from], side, moves)
	}
	if diamondOpen(p, from, SE, side) || diamondOpen(p, from, SW, side) {
		addStep(p, from, southSkip[from], side, moves)
	}
}

// 相邻格在盘内且为空或敌子
func diamondOpen(p *Position, from Square, d Direction, side Side) bool {
	n := neighbors[from][d]
	if n == NoSquare {
		return false
	}
	dst := p.Board.Squares[n]
	return dst == 0 || dst.Side() != side
}
