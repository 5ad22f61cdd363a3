package geo

const (
	NumRanks   = 11
	NumFiles   = 8 // 轴向 file 的跨度 0..7
	NumSquares = 58

	MidRank = 5 // 最宽的一行（8 格）
)

// 每一行的格数，rank 0 在白方一侧
var rankWidths = [NumRanks]int{3, 4, 5, 6, 7, 8, 7, 6, 5, 4, 3}

// Square 是 0..57 的紧凑格子编号：rank 0 在前，行内按显示 file 排列。
type Square int8

const NoSquare Square = -1

// Coord 是轴向坐标：六个方向向量在所有行上一致。
type Coord struct {
	File int `json:"file"`
	Rank int `json:"rank"`
}

func (c Coord) Add(o Coord) Coord { return Coord{File: c.File + o.File, Rank: c.Rank + o.Rank} }

// ToAxial 显示 file -> 轴向 file
func ToAxial(displayFile, rank int) int {
	if rank <= MidRank {
		return displayFile
	}
	return displayFile + rank - MidRank
}

// ToDisplay 轴向 file -> 显示 file
func ToDisplay(axialFile, rank int) int {
	if rank <= MidRank {
		return axialFile
	}
	return axialFile - (rank - MidRank)
}

// RankWidth 返回该行的格数；非法行返回 0。
func RankWidth(rank int) int {
	if rank < 0 || rank >= NumRanks {
		return 0
	}
	return rankWidths[rank]
}

// Valid 判断轴向坐标是否落在 58 格之内。
func (c Coord) Valid() bool {
	if c.Rank < 0 || c.Rank >= NumRanks {
		return false
	}
	d := ToDisplay(c.File, c.Rank)
	return d >= 0 && d < rankWidths[c.Rank]
}

// Square 把坐标转成格子编号，非法坐标得到 NoSquare。
func (c Coord) Square() Square {
	if !c.Valid() {
		return NoSquare
	}
	return rankStart[c.Rank] + Square(ToDisplay(c.File, c.Rank))
}

// SquareAt 用显示坐标取格子编号。
func SquareAt(displayFile, rank int) Square {
	if rank < 0 || rank >= NumRanks || displayFile < 0 || displayFile >= rankWidths[rank] {
		return NoSquare
	}
	return rankStart[rank] + Square(displayFile)
}

func (s Square) Valid() bool { return s >= 0 && s < NumSquares }

func (s Square) Coord() Coord {
	if !s.Valid() {
		return Coord{File: -1, Rank: -1}
	}
	return squareCoord[s]
}

func (s Square) Rank() int {
	if !s.Valid() {
		return -1
	}
	return squareCoord[s].Rank
}

// DisplayFile 是行内从 0 开始的位置。
func (s Square) DisplayFile() int {
	if !s.Valid() {
		return -1
	}
	return int(s - rankStart[squareCoord[s].Rank])
}

// Name 返回两字符格名：显示 file 数字（从 1 开始）+ rank 字母。
func (s Square) Name() string {
	if !s.Valid() {
		return "-"
	}
	return string([]byte{fileDigits[s.DisplayFile()], rankLetters[s.Rank()]})
}

func (s Square) String() string { return s.Name() }

const (
	fileDigits  = "12345678"
	rankLetters = "abcdefghijk"
)

// ParseSquare 解析 "3c" 这样的格名。
func ParseSquare(name string) (Square, bool) {
	if len(name) != 2 {
		return NoSquare, false
	}
	f := int(name[0]) - '1'
	r := int(name[1]) - 'a'
	sq := SquareAt(f, r)
	return sq, sq != NoSquare
}

// Direction 按顺时针排列：NW, NE, E, SE, SW, W
type Direction int8

const (
	NW Direction = iota
	NE
	E
	SE
	SW
	W
	numDirections
)

var dirVectors = [numDirections]Coord{
	NW: {0, 1},
	NE: {1, 1},
	E:  {1, 0},
	SE: {0, -1},
	SW: {-1, -1},
	W:  {-1, 0},
}

// 钻石跨两行的竖向跳跃
var (
	North = Coord{File: 1, Rank: 2}
	South = Coord{File: -1, Rank: -2}
)

func (d Direction) Vector() Coord { return dirVectors[d] }

func (d Direction) Clockwise() Direction { return (d + 1) % numDirections }

func (d Direction) CounterClockwise() Direction { return (d + numDirections - 1) % numDirections }

func (d Direction) String() string {
	switch d {
	case NW:
		return "NW"
	case NE:
		return "NE"
	case E:
		return "E"
	case SE:
		return "SE"
	case SW:
		return "SW"
	case W:
		return "W"
	}
	return "?"
}

// hexDistance：轴向坐标下第三轴是 rank-file
func hexDistance(a, b Coord) int {
	df := b.File - a.File
	dr := b.Rank - a.Rank
	return max(abs(df), abs(dr), abs(dr-df))
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// 进程级只读表，init 时算好
var (
	rankStart   [NumRanks]Square
	squareCoord [NumSquares]Coord

	neighbors      [NumSquares][numDirections]Square
	numTilesToEdge [NumSquares][numDirections]int8

	ringOffsets [18]Coord
	ringTargets [NumSquares][]Square

	northSkip [NumSquares]Square
	southSkip [NumSquares]Square
)

func init() {
	initGeometry()
}

func initGeometry() {
	var idx Square
	for r := 0; r < NumRanks; r++ {
		rankStart[r] = idx
		for f := 0; f < rankWidths[r]; f++ {
			squareCoord[idx] = Coord{File: ToAxial(f, r), Rank: r}
			idx++
		}
	}
	if idx != NumSquares {
		panic("geo: rank widths do not add up to 58 tiles")
	}

	for sq := Square(0); sq < NumSquares; sq++ {
		c := squareCoord[sq]
		for d := Direction(0); d < numDirections; d++ {
			neighbors[sq][d] = c.Add(dirVectors[d]).Square()

			// 到边缘还能走几格
			n := int8(0)
			for next := c.Add(dirVectors[d]); next.Valid(); next = next.Add(dirVectors[d]) {
				n++
			}
			numTilesToEdge[sq][d] = n
		}
		northSkip[sq] = c.Add(North).Square()
		southSkip[sq] = c.Add(South).Square()
	}

	// 环：所有距离恰好为 3 的偏移
	n := 0
	origin := Coord{}
	for dr := -3; dr <= 3; dr++ {
		for df := -3; df <= 3; df++ {
			off := Coord{File: df, Rank: dr}
			if hexDistance(origin, off) == 3 {
				ringOffsets[n] = off
				n++
			}
		}
	}
	for sq := Square(0); sq < NumSquares; sq++ {
		c := squareCoord[sq]
		var targets []Square
		for _, off := range ringOffsets {
			if to := c.Add(off).Square(); to != NoSquare {
				targets = append(targets, to)
			}
		}
		ringTargets[sq] = targets
	}
}

// Neighbor 返回 d 方向相邻格，出界为 NoSquare。
func Neighbor(sq Square, d Direction) Square {
	if !sq.Valid() {
		return NoSquare
	}
	return neighbors[sq][d]
}

// TilesToEdge 返回从 sq 沿 d 方向到棋盘边缘之前的格数。
func TilesToEdge(sq Square, d Direction) int {
	if !sq.Valid() {
		return 0
	}
	return int(numTilesToEdge[sq][d])
}

// AllSquares 按编号顺序列出 58 个格子。
func AllSquares() []Square {
	out := make([]Square, NumSquares)
	for i := range out {
		out[i] = Square(i)
	}
	return out
}
