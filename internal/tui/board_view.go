package tui

import (
	"strings"

	"geo/internal/geo"
)

// RenderBoard 按六角形画棋盘：第 10 行在上，每行居中，每格两个字符宽。
// marks 中的格子用 '*' 标出（最近一步的起点和终点）。
func RenderBoard(pos *geo.Position, marks ...geo.Square) string {
	marked := make(map[geo.Square]bool, len(marks))
	for _, sq := range marks {
		marked[sq] = true
	}

	var b strings.Builder
	for rank := geo.NumRanks - 1; rank >= 0; rank-- {
		w := geo.RankWidth(rank)
		b.WriteByte(byte('a' + rank))
		b.WriteString(strings.Repeat(" ", geo.NumFiles-w+1))
		for f := 0; f < w; f++ {
			sq := geo.SquareAt(f, rank)
			b.WriteString(cell(pos.Get(sq), marked[sq]))
		}
		b.WriteString("\n")
	}
	// 底行的列号，1..3 对齐 a 行
	b.WriteString(" " + strings.Repeat(" ", geo.NumFiles-geo.RankWidth(0)+1))
	for f := 0; f < geo.RankWidth(0); f++ {
		b.WriteByte(byte('1' + f))
		b.WriteByte(' ')
	}
	b.WriteString("\n")
	return b.String()
}

func cell(pc geo.Piece, mark bool) string {
	c := pc.Char()
	if mark {
		return string([]byte{c, '*'})
	}
	return string([]byte{c, ' '})
}
