package httpserver

import "geo/internal/geo"

// 前端用的招法结构
type MoveDTO struct {
	From      string        `json:"from"`
	To        string        `json:"to"`
	Promotion geo.PieceType `json:"promotion,omitempty"`
	SAN       string        `json:"san"`
}

// StateDTO 当前局面，所有接口都带上它
type StateDTO struct {
	GFEN       string    `json:"gfen"`
	Turn       geo.Side  `json:"turn"`
	LegalMoves []MoveDTO `json:"legal_moves"`
	Status     string    `json:"status"`           // "ongoing" / "eliminated" / "draw"
	Winner     string    `json:"winner,omitempty"` // 只在 eliminated 时有
	HalfMoves  int       `json:"half_moves"`
	MoveNumber int       `json:"move_number"`
}

// NewGame 请求，GFEN 为空时从初始局面开始
type NewGameRequest struct {
	GFEN string `json:"gfen"`
}

type NewGameResponse struct {
	GameID string   `json:"game_id"`
	State  StateDTO `json:"state"`
}

// State / Undo 请求
type GameRequest struct {
	GameID string `json:"game_id"`
}

// Play 请求：move 和 san 二选一
type PlayRequest struct {
	GameID string           `json:"game_id"`
	Move   *geo.MoveRequest `json:"move,omitempty"`
	SAN    string           `json:"san,omitempty"`
}

// Play / Undo 返回
type MoveResponse struct {
	Move  geo.MoveResult `json:"move"`
	State StateDTO       `json:"state"`
}

type LoadRequest struct {
	GameID string `json:"game_id"`
	GFEN   string `json:"gfen"`
}

type HistoryRequest struct {
	GameID  string `json:"game_id"`
	Verbose bool   `json:"verbose"`
}

type HistoryResponse struct {
	Moves   []string         `json:"moves"`
	Verbose []geo.MoveResult `json:"verbose,omitempty"`
}

func stateOf(g *geo.Game) StateDTO {
	pos := g.Position()
	moves := g.GenerateMoves(geo.GenOptions{})
	sans := g.Moves(geo.GenOptions{})

	legal := make([]MoveDTO, len(moves))
	for i, m := range moves {
		legal[i] = MoveDTO{
			From:      m.From.Name(),
			To:        m.To.Name(),
			Promotion: m.Promotion,
			SAN:       sans[i],
		}
	}

	st := StateDTO{
		GFEN:       g.GFEN(),
		Turn:       g.Turn(),
		LegalMoves: legal,
		Status:     "ongoing",
		HalfMoves:  pos.HalfMoves,
		MoveNumber: pos.MoveNumber,
	}
	switch {
	case g.Eliminated():
		st.Status = "eliminated"
		st.Winner = g.Loser().Opposite().String()
	case g.InDraw():
		st.Status = "draw"
	}
	return st
}
