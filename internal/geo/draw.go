package geo

// DrawRules 和棋判定参数。子力表与重复局面次数都是可替换的策略。
type DrawRules struct {
	HalfMoveLimit   int // 半回合计数达到该值判和；<=0 关闭
	RepetitionCount int // 同一局面出现次数达到该值判和；<=0 关闭

	// CanEliminate 判断 side 是否还有能吃掉对方钻石的子力；nil 时用默认表
	CanEliminate func(b *Board, side Side) bool
}

func DefaultDrawRules() DrawRules {
	return DrawRules{
		HalfMoveLimit:   100,
		RepetitionCount: 3,
		CanEliminate:    hasNonDiamond,
	}
}

// 默认：除钻石外还有任何子就算有杀伤力
func hasNonDiamond(b *Board, side Side) bool {
	for _, pc := range b.Squares {
		if pc != 0 && pc.Side() == side && pc.Type() != Diamond {
			return true
		}
	}
	return false
}

// InDraw 五十回合、子力不足或重复局面
func (g *Game) InDraw() bool {
	return g.HalfMoveLimitReached() || g.InsufficientMaterial() || g.InRepetition()
}

func (g *Game) HalfMoveLimitReached() bool {
	return g.rules.HalfMoveLimit > 0 && g.pos.HalfMoves >= g.rules.HalfMoveLimit
}

// InsufficientMaterial 双方都无法再消灭对方
func (g *Game) InsufficientMaterial() bool {
	can := g.rules.CanEliminate
	if can == nil {
		can = hasNonDiamond
	}
	return !can(&g.pos.Board, White) && !can(&g.pos.Board, Black)
}

// InRepetition 以 (棋盘, 走子方) 的哈希为键统计出现次数。
// 兵的双步权利完全由其位置决定，所以哈希已经包含了剩余的走子权利。
func (g *Game) InRepetition() bool {
	limit := g.rules.RepetitionCount
	if limit <= 0 {
		return false
	}
	cur := g.pos.Hash
	count := 1
	n := len(g.history)
	// 最后一次不可逆走法之前的局面不可能再出现
	for i := n - 1; i >= 0 && i >= n-g.pos.HalfMoves; i-- {
		if g.history[i].hash != cur {
			continue
		}
		count++
		if count >= limit {
			return true
		}
	}
	return false
}

func (g *Game) GameOver() bool {
	return g.InDraw() || g.Eliminated()
}
