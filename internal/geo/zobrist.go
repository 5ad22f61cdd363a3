package geo

import "sync"

var (
	zobristOnce sync.Once

	zobristPieces [2][numPieceTypes][NumSquares]uint64
	zobristSide   uint64
)

func initZobrist() {
	zobristOnce.Do(func() {
		seed := uint64(0x9E3779B97F4A7C15)
		next := func() uint64 {
			seed += 0x9E3779B97F4A7C15
			z := seed
			z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
			z = (z ^ (z >> 27)) * 0x94D049BB133111EB
			return z ^ (z >> 31)
		}

		for side := 0; side < 2; side++ {
			for pt := Pyramid; pt < numPieceTypes; pt++ {
				for sq := 0; sq < NumSquares; sq++ {
					zobristPieces[side][pt][sq] = next()
				}
			}
		}
		zobristSide = next()
	})
}

func pieceHashKey(pc Piece, sq Square) uint64 {
	if pc == 0 || !sq.Valid() {
		return 0
	}
	initZobrist()

	pt := pc.Type()
	if !pt.Valid() {
		return 0
	}
	return zobristPieces[pc.Side()][pt][sq]
}

// CalculateHash 全量计算 (棋盘, 走子方) 的 Zobrist 哈希；计数器不参与。
func (p *Position) CalculateHash() uint64 {
	initZobrist()

	var h uint64
	for sq := Square(0); sq < NumSquares; sq++ {
		h ^= pieceHashKey(p.Board.Squares[sq], sq)
	}
	if p.SideToMove == Black {
		h ^= zobristSide
	}
	return h
}
