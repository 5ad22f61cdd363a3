package geo

// Game 一局棋：局面 + 走子历史 + 头信息 + 和棋规则。
// 不是并发安全的，同一局只能由一个调用方使用。
type Game struct {
	pos     *Position
	history []historyEntry
	header  map[string]string
	rules   DrawRules
}

type Option func(*Game)

func WithDrawRules(r DrawRules) Option {
	return func(g *Game) { g.rules = r }
}

// NewGame 从初始局面开始
func NewGame(opts ...Option) *Game {
	g := &Game{
		pos:    NewInitialPosition(),
		header: make(map[string]string),
		rules:  DefaultDrawRules(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// NewGameFromGFEN 从指定局面开始
func NewGameFromGFEN(gfen string, opts ...Option) (*Game, error) {
	g := NewGame(opts...)
	if err := g.Load(gfen); err != nil {
		return nil, err
	}
	return g, nil
}

// MoveRequest 坐标式走子请求，Promotion 只在升变时需要
type MoveRequest struct {
	From      string    `json:"from"`
	To        string    `json:"to"`
	Promotion PieceType `json:"promotion,omitempty"`
}

// MoveResult 走子的完整描述
type MoveResult struct {
	Color     Side      `json:"color"`
	From      string    `json:"from"`
	To        string    `json:"to"`
	Piece     PieceType `json:"piece"`
	Captured  PieceType `json:"captured,omitempty"`
	Promotion PieceType `json:"promotion,omitempty"`
	Flags     string    `json:"flags"`
	Notation  string    `json:"san"`
}

// Load 解析 GFEN；失败时原局面、历史都保持不变
func (g *Game) Load(gfen string) error {
	pos, err := DecodePosition(gfen)
	if err != nil {
		return err
	}
	g.pos = pos
	g.history = nil
	g.updateSetup()
	return nil
}

func (g *Game) Reset() {
	// 初始局面一定能解析
	_ = g.Load(DefaultGFEN)
}

// GFEN 当前局面的文本
func (g *Game) GFEN() string { return g.pos.Encode() }

// Position 返回当前局面的拷贝
func (g *Game) Position() Position { return *g.pos }

func (g *Game) Turn() Side { return g.pos.SideToMove }

func (g *Game) Eliminated() bool { return g.pos.Eliminated() }

func (g *Game) Loser() Side { return g.pos.Loser() }

func (g *Game) Get(sq Square) (Piece, bool) {
	pc := g.pos.Get(sq)
	return pc, pc != 0
}

// Put / Remove 是摆子操作：成功后从当前局面重新开始记录历史
func (g *Game) Put(pc Piece, sq Square) bool {
	if !g.pos.Put(pc, sq) {
		return false
	}
	g.history = nil
	g.updateSetup()
	return true
}

func (g *Game) Remove(sq Square) (Piece, bool) {
	pc := g.pos.Remove(sq)
	if pc == 0 {
		return 0, false
	}
	g.history = nil
	g.updateSetup()
	return pc, true
}

func (g *Game) GenerateMoves(opts GenOptions) []Move {
	return g.pos.GenerateMoves(opts)
}

// Moves 返回记谱形式的走法
func (g *Game) Moves(opts GenOptions) []string {
	legal := g.pos.GeneratePseudoMoves()
	moves := g.pos.GenerateMoves(opts)
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = g.pos.notation(m, legal)
	}
	return out
}

// Move 按坐标走子；不是伪合法走法时返回 false，局面不变
func (g *Game) Move(req MoveRequest) (MoveResult, bool) {
	from, ok := ParseSquare(req.From)
	if !ok {
		return MoveResult{}, false
	}
	to, ok := ParseSquare(req.To)
	if !ok {
		return MoveResult{}, false
	}

	legal := g.pos.GeneratePseudoMoves()
	for _, m := range legal {
		if m.From != from || m.To != to {
			continue
		}
		if m.Is(FlagPromotion) && m.Promotion != req.Promotion {
			continue
		}
		return g.play(m, legal), true
	}
	return MoveResult{}, false
}

// MoveSAN 接受记谱（"Cx4f"、"3e"）或坐标写法（"2c2e"、"3j3k=D"）
func (g *Game) MoveSAN(text string) (MoveResult, bool) {
	want := strippedNotation(text)
	if want == "" {
		return MoveResult{}, false
	}
	legal := g.pos.GeneratePseudoMoves()
	for _, m := range legal {
		if strippedNotation(g.pos.notation(m, legal)) == want || m.String() == want {
			return g.play(m, legal), true
		}
	}
	return MoveResult{}, false
}

func (g *Game) play(m Move, legal []Move) MoveResult {
	res := g.describe(m, legal)
	g.history = append(g.history, g.pos.makeMove(m))
	return res
}

// Undo 撤销最后一步；没有历史时返回 false
func (g *Game) Undo() (MoveResult, bool) {
	n := len(g.history)
	if n == 0 {
		return MoveResult{}, false
	}
	e := g.history[n-1]
	g.history = g.history[:n-1]
	g.pos.unmakeMove(e)
	return g.describe(e.move, g.pos.GeneratePseudoMoves()), true
}

// History 记谱列表，从第一步开始
func (g *Game) History() []string {
	verbose := g.VerboseHistory()
	out := make([]string, len(verbose))
	for i, r := range verbose {
		out[i] = r.Notation
	}
	return out
}

// VerboseHistory 先全部撤销，再逐步重放并生成记谱
func (g *Game) VerboseHistory() []MoveResult {
	saved := make([]historyEntry, len(g.history))
	copy(saved, g.history)
	for i := len(g.history) - 1; i >= 0; i-- {
		g.pos.unmakeMove(g.history[i])
	}
	g.history = g.history[:0]

	out := make([]MoveResult, 0, len(saved))
	for _, e := range saved {
		out = append(out, g.describe(e.move, g.pos.GeneratePseudoMoves()))
		g.history = append(g.history, g.pos.makeMove(e.move))
	}
	return out
}

func (g *Game) Header() map[string]string {
	out := make(map[string]string, len(g.header))
	for k, v := range g.header {
		out[k] = v
	}
	return out
}

func (g *Game) SetHeader(key, value string) {
	if value == "" {
		delete(g.header, key)
		return
	}
	g.header[key] = value
}

// updateSetup 非初始局面开局时记下 SetUp/GFEN 头
func (g *Game) updateSetup() {
	if len(g.history) > 0 {
		return
	}
	gfen := g.pos.Encode()
	if gfen != DefaultGFEN {
		g.header["SetUp"] = "1"
		g.header["GFEN"] = gfen
	} else {
		delete(g.header, "SetUp")
		delete(g.header, "GFEN")
	}
}

func (g *Game) describe(m Move, legal []Move) MoveResult {
	return MoveResult{
		Color:     g.pos.Board.Squares[m.From].Side(),
		From:      m.From.Name(),
		To:        m.To.Name(),
		Piece:     m.Piece,
		Captured:  m.Captured.Type(),
		Promotion: m.Promotion,
		Flags:     m.Flags.String(),
		Notation:  g.pos.notation(m, legal),
	}
}
