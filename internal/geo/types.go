package geo

import (
	"fmt"
	"strings"
)

type Side int8

const (
	NoSide Side = -1
	White  Side = 0
	Black  Side = 1
)

func (s Side) Opposite() Side {
	switch s {
	case White:
		return Black
	case Black:
		return White
	}
	return NoSide
}

func (s Side) String() string {
	switch s {
	case White:
		return "w"
	case Black:
		return "b"
	}
	return "-"
}

func (s Side) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

func (s *Side) UnmarshalText(b []byte) error {
	switch string(b) {
	case "w":
		*s = White
	case "b":
		*s = Black
	default:
		return fmt.Errorf("unknown side %q", string(b))
	}
	return nil
}

type PieceType int8

const (
	PieceNone PieceType = iota
	Pyramid
	Column
	Sphere
	Ring
	Diamond
	numPieceTypes
)

// 小写字母，白方用大写
const pieceSymbols = ".pcsrd"

func (pt PieceType) Valid() bool { return pt > PieceNone && pt < numPieceTypes }

func (pt PieceType) Letter() byte {
	if !pt.Valid() {
		return '.'
	}
	return pieceSymbols[pt]
}

func (pt PieceType) String() string {
	switch pt {
	case Pyramid:
		return "pyramid"
	case Column:
		return "column"
	case Sphere:
		return "sphere"
	case Ring:
		return "ring"
	case Diamond:
		return "diamond"
	}
	return "none"
}

func (pt PieceType) MarshalText() ([]byte, error) {
	if !pt.Valid() {
		return []byte{}, nil
	}
	return []byte{pt.Letter()}, nil
}

func (pt *PieceType) UnmarshalText(b []byte) error {
	if len(b) == 0 {
		*pt = PieceNone
		return nil
	}
	t, ok := PieceTypeFromLetter(rune(b[0]))
	if !ok || len(b) != 1 {
		return fmt.Errorf("unknown piece type %q", string(b))
	}
	*pt = t
	return nil
}

// PieceTypeFromLetter 大小写都接受。
func PieceTypeFromLetter(ch rune) (PieceType, bool) {
	i := strings.IndexRune(pieceSymbols[1:], toLower(ch))
	if i < 0 {
		return PieceNone, false
	}
	return PieceType(i + 1), true
}

func toLower(ch rune) rune {
	if ch >= 'A' && ch <= 'Z' {
		return ch + ('a' - 'A')
	}
	return ch
}

type Piece int8 // 0=空；>0 白；<0 黑；abs=PieceType

func NewPiece(side Side, pt PieceType) Piece {
	if !pt.Valid() || side == NoSide {
		return 0
	}
	if side == White {
		return Piece(pt)
	}
	return -Piece(pt)
}

func (p Piece) Type() PieceType {
	if p < 0 {
		return PieceType(-p)
	}
	return PieceType(p)
}

func (p Piece) Side() Side {
	if p == 0 {
		return NoSide
	}
	if p > 0 {
		return White
	}
	return Black
}

// Char 返回 GFEN 字母；空格子为 '.'
func (p Piece) Char() byte {
	if p == 0 || !p.Type().Valid() {
		return '.'
	}
	c := p.Type().Letter()
	if p.Side() == White {
		c -= 'a' - 'A'
	}
	return c
}

func (p Piece) String() string { return string(p.Char()) }

// PieceFromChar 解析 GFEN 字母。
func PieceFromChar(ch rune) (Piece, bool) {
	pt, ok := PieceTypeFromLetter(ch)
	if !ok {
		return 0, false
	}
	if ch >= 'A' && ch <= 'Z' {
		return NewPiece(White, pt), true
	}
	return NewPiece(Black, pt), true
}

type Board struct {
	Squares [NumSquares]Piece
}

type MoveFlag uint8

const (
	FlagNormal MoveFlag = 1 << iota
	FlagCapture
	FlagPromotion
	FlagDoubleStep
)

// 与走法字符串里的字母一一对应
var flagLetters = [...]struct {
	flag MoveFlag
	ch   byte
}{
	{FlagNormal, 'n'},
	{FlagCapture, 'c'},
	{FlagPromotion, 'p'},
	{FlagDoubleStep, 'q'},
}

func (f MoveFlag) String() string {
	var sb strings.Builder
	for _, fl := range flagLetters {
		if f&fl.flag != 0 {
			sb.WriteByte(fl.ch)
		}
	}
	return sb.String()
}

type Move struct {
	From      Square
	To        Square
	Piece     PieceType
	Flags     MoveFlag
	Captured  Piece     // 被吃的子，没有则为 0
	Promotion PieceType // 仅 FlagPromotion 时有效
}

func (m Move) Is(f MoveFlag) bool { return m.Flags&f != 0 }

// String 是坐标式写法，例如 "2c2e" 或 "3j3k=D"
func (m Move) String() string {
	s := m.From.Name() + m.To.Name()
	if m.Is(FlagPromotion) {
		s += "=" + strings.ToUpper(string(m.Promotion.Letter()))
	}
	return s
}

// DiamondRegistry 每方两个槽位，记录钻石所在格；空槽为 NoSquare。
type DiamondRegistry [2][2]Square

func emptyRegistry() DiamondRegistry {
	return DiamondRegistry{{NoSquare, NoSquare}, {NoSquare, NoSquare}}
}

func (r *DiamondRegistry) Count(side Side) int {
	if side != White && side != Black {
		return 0
	}
	n := 0
	for _, sq := range r[side] {
		if sq != NoSquare {
			n++
		}
	}
	return n
}

func (r *DiamondRegistry) hasFree(side Side) bool {
	return (side == White || side == Black) && r.Count(side) < 2
}

// occupy 占用下一个空槽，满了返回 false
func (r *DiamondRegistry) occupy(side Side, sq Square) bool {
	if side != White && side != Black {
		return false
	}
	for i, cur := range r[side] {
		if cur == NoSquare {
			r[side][i] = sq
			return true
		}
	}
	return false
}

func (r *DiamondRegistry) free(side Side, sq Square) {
	if side != White && side != Black {
		return
	}
	for i, cur := range r[side] {
		if cur == sq {
			r[side][i] = NoSquare
			return
		}
	}
}

// relocate 钻石走子后槽位跟着走
func (r *DiamondRegistry) relocate(side Side, from, to Square) {
	if side != White && side != Black {
		return
	}
	for i, cur := range r[side] {
		if cur == from {
			r[side][i] = to
			return
		}
	}
}

// Lost 表示该方两颗钻石都没了
func (r *DiamondRegistry) Lost(side Side) bool { return r.Count(side) == 0 }

// Position = 棋盘 + 钻石槽位 + 轮到谁走 + 计数器
type Position struct {
	Board      Board
	Diamonds   DiamondRegistry
	SideToMove Side
	HalfMoves  int
	MoveNumber int
	Hash       uint64
}
