package geo

// 兵：向前一格（只能落空格），起始行可以走两格；两个斜前方向只用来吃子
func genPyramidMoves(p *Position, from Square, moves *[]Move) {
	pc := p.Board.Squares[from]
	if pc == 0 {
		return
	}
	side := pc.Side()
	fwd := pyramidForward(side)

	one := neighbors[from][fwd]
	if one != NoSquare && p.Board.Squares[one] == 0 {
		addPyramidMove(p, from, one, FlagNormal, moves)

		if from.Rank() == pyramidHomeRank(side) {
			two := neighbors[one][fwd]
			if two != NoSquare && p.Board.Squares[two] == 0 {
				*moves = append(*moves, buildMove(p, from, two, FlagDoubleStep))
			}
		}
	}

	for _, d := range pyramidAttacks(side) {
		to := neighbors[from][d]
		if to == NoSquare {
			continue
		}
		dst := p.Board.Squares[to]
		if dst != 0 && dst.Side() != side {
			addPyramidMove(p, from, to, FlagCapture, moves)
		}
	}
}

// 到达底线必须升变：每种目标各一步
func addPyramidMove(p *Position, from, to Square, flags MoveFlag, moves *[]Move) {
	side := p.Board.Squares[from].Side()
	if to.Rank() != promotionRank(side) {
		*moves = append(*moves, buildMove(p, from, to, flags))
		return
	}
	for _, pt := range promotionTargets {
		if pt == Diamond && !p.Diamonds.hasFree(side) {
			continue
		}
		m := buildMove(p, from, to, flags|FlagPromotion)
		m.Promotion = pt
		*moves = append(*moves, m)
	}
}
