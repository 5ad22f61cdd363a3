package geo

// 柱：六个方向滑行，遇子停；敌子可吃
func genColumnMoves(p *Position, from Square, moves *[]Move) {
	side := p.Board.Squares[from].Side()
	for d := Direction(0); d < numDirections; d++ {
		sq := from
		for n := numTilesToEdge[from][d]; n > 0; n-- {
			sq = neighbors[sq][d]
			dst := p.Board.Squares[sq]
			if dst == 0 {
				*moves = append(*moves, buildMove(p, from, sq, FlagNormal))
				continue
			}
			if dst.Side() != side {
				*moves = append(*moves, buildMove(p, from, sq, FlagCapture))
			}
			break
		}
	}
}

// 球：相邻一格；若相邻格为空，还可以“拐弯”到它顺/逆时针方向的下一格
func genSphereMoves(p *Position, from Square, moves *[]Move) {
	side := p.Board.Squares[from].Side()
	var seen [NumSquares]bool

	for d := Direction(0); d < numDirections; d++ {
		n := neighbors[from][d]
		if n == NoSquare {
			continue
		}
		if p.Board.Squares[n] != 0 {
			addStep(p, from, n, side, moves)
			continue
		}
		*moves = append(*moves, buildMove(p, from, n, FlagNormal))

		for _, e := range [2]Direction{d.CounterClockwise(), d.Clockwise()} {
			to := neighbors[n][e]
			if to == NoSquare || seen[to] {
				continue
			}
			seen[to] = true
			addStep(p, from, to, side, moves)
		}
	}
}

// 环：跳到距离恰好为 3 的 18 个格子，不受阻挡
func genRingMoves(p *Position, from Square, moves *[]Move) {
	side := p.Board.Squares[from].Side()
	for _, to := range ringTargets[from] {
		addStep(p, from, to, side, moves)
	}
}
