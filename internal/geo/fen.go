package geo

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrInvalidGFEN = errors.New("invalid GFEN")

// Encode 生成 GFEN：rank 10 到 rank 0，用“/”隔开，空格用数字压缩
func (p *Position) Encode() string {
	var sb strings.Builder
	for r := NumRanks - 1; r >= 0; r-- {
		empty := 0
		for f := 0; f < rankWidths[r]; f++ {
			pc := p.Board.Squares[SquareAt(f, r)]
			if pc == 0 {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteByte(pc.Char())
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
		if r > 0 {
			sb.WriteByte('/')
		}
	}
	sb.WriteByte(' ')
	sb.WriteString(p.SideToMove.String())
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(p.HalfMoves))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(p.MoveNumber))
	return sb.String()
}

// DecodePosition 解析 GFEN。任何错误都不会产生半成品局面。
func DecodePosition(gfen string) (*Position, error) {
	fields := strings.Fields(gfen)
	if len(fields) != 4 {
		return nil, fmt.Errorf("%w: want 4 fields, got %d", ErrInvalidGFEN, len(fields))
	}

	ranks := strings.Split(fields[0], "/")
	if len(ranks) != NumRanks {
		return nil, fmt.Errorf("%w: want %d ranks, got %d", ErrInvalidGFEN, NumRanks, len(ranks))
	}

	pos := &Position{Diamonds: emptyRegistry()}
	for i, seg := range ranks {
		r := NumRanks - 1 - i
		width := rankWidths[r]
		f := 0
		prevDigit := false
		for _, ch := range seg {
			if ch >= '1' && ch <= '8' {
				if prevDigit {
					return nil, fmt.Errorf("%w: rank %c has consecutive digits", ErrInvalidGFEN, rankLetters[r])
				}
				f += int(ch - '0')
				prevDigit = true
			} else {
				pc, ok := PieceFromChar(ch)
				if !ok {
					return nil, fmt.Errorf("%w: unknown symbol %q", ErrInvalidGFEN, ch)
				}
				if f >= width {
					return nil, fmt.Errorf("%w: rank %c overflows", ErrInvalidGFEN, rankLetters[r])
				}
				sq := SquareAt(f, r)
				pos.Board.Squares[sq] = pc
				if pc.Type() == Diamond && !pos.Diamonds.occupy(pc.Side(), sq) {
					return nil, fmt.Errorf("%w: more than two diamonds for %s", ErrInvalidGFEN, pc.Side())
				}
				f++
				prevDigit = false
			}
			if f > width {
				return nil, fmt.Errorf("%w: rank %c overflows", ErrInvalidGFEN, rankLetters[r])
			}
		}
		if f != width {
			return nil, fmt.Errorf("%w: rank %c has %d tiles, want %d", ErrInvalidGFEN, rankLetters[r], f, width)
		}
	}

	switch fields[1] {
	case "w":
		pos.SideToMove = White
	case "b":
		pos.SideToMove = Black
	default:
		return nil, fmt.Errorf("%w: turn %q", ErrInvalidGFEN, fields[1])
	}

	half, err := strconv.Atoi(fields[2])
	if err != nil || half < 0 {
		return nil, fmt.Errorf("%w: half-move clock %q", ErrInvalidGFEN, fields[2])
	}
	pos.HalfMoves = half

	num, err := strconv.Atoi(fields[3])
	if err != nil || num <= 0 {
		return nil, fmt.Errorf("%w: move number %q", ErrInvalidGFEN, fields[3])
	}
	pos.MoveNumber = num

	for _, side := range []Side{White, Black} {
		if pos.Diamonds.Count(side) == 0 {
			return nil, fmt.Errorf("%w: no diamond for %s", ErrInvalidGFEN, side)
		}
	}

	pos.Hash = pos.CalculateHash()
	return pos, nil
}
