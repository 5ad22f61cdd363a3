package geo

// Perft 统计 depth 层伪合法走法树的叶子数；出局（钻石全失）的局面直接当叶子
func (p *Position) Perft(depth int) int64 {
	if depth <= 0 || p.Eliminated() {
		return 1
	}
	moves := p.GeneratePseudoMoves()
	if depth == 1 {
		return int64(len(moves))
	}
	var nodes int64
	for _, m := range moves {
		e := p.makeMove(m)
		nodes += p.Perft(depth - 1)
		p.unmakeMove(e)
	}
	return nodes
}

// Divide 按根节点走法拆分 perft 结果，调试走法生成用
func (p *Position) Divide(depth int) map[string]int64 {
	out := make(map[string]int64)
	if depth <= 0 {
		return out
	}
	for _, m := range p.GeneratePseudoMoves() {
		e := p.makeMove(m)
		out[m.String()] += p.Perft(depth - 1)
		p.unmakeMove(e)
	}
	return out
}
