package geo

import "strings"

// notation 生成代数记谱：子种字母（兵省略）+ 消歧 + x + 终点 + =升变 + #（出局）
// legal 是当前局面的全部走法，用来判断是否需要消歧。
func (p *Position) notation(m Move, legal []Move) string {
	var sb strings.Builder

	dis := disambiguator(m, legal)
	if m.Piece != Pyramid {
		sb.WriteByte(upper(m.Piece.Letter()))
		sb.WriteString(dis)
	} else if dis != "" {
		sb.WriteString(dis)
	} else if m.Is(FlagCapture) {
		sb.WriteByte(fileDigits[m.From.DisplayFile()])
	}

	if m.Is(FlagCapture) {
		sb.WriteByte('x')
	}
	sb.WriteString(m.To.Name())

	if m.Is(FlagPromotion) {
		sb.WriteByte('=')
		sb.WriteByte(upper(m.Promotion.Letter()))
	}

	// 试走一步看是否出局，随后撤销
	e := p.makeMove(m)
	if p.Eliminated() {
		sb.WriteByte('#')
	}
	p.unmakeMove(e)

	return sb.String()
}

// disambiguator 同种子走到同一终点时，用起点的 rank 字母、file 数字或整个格名区分
func disambiguator(m Move, legal []Move) string {
	ambiguities, sameRank, sameFile := 0, 0, 0
	for _, o := range legal {
		if o.Piece != m.Piece || o.To != m.To || o.From == m.From {
			continue
		}
		ambiguities++
		if o.From.Rank() == m.From.Rank() {
			sameRank++
		}
		if o.From.DisplayFile() == m.From.DisplayFile() {
			sameFile++
		}
	}
	if ambiguities == 0 {
		return ""
	}
	name := m.From.Name()
	switch {
	case sameRank > 0 && sameFile > 0:
		return name
	case sameFile > 0:
		return name[1:]
	default:
		return name[:1]
	}
}

func upper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - ('a' - 'A')
	}
	return c
}

// 比较记谱时忽略结尾的 # 和 +
func strippedNotation(s string) string {
	return strings.TrimRight(strings.TrimSpace(s), "#+")
}
