package geo

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestStartingScenario(t *testing.T) {
	g := NewGame()
	if g.Turn() != White {
		t.Fatalf("turn: got=%s want=w", g.Turn())
	}
	if g.Eliminated() || g.GameOver() {
		t.Fatalf("fresh game must be running")
	}
	if len(g.GenerateMoves(GenOptions{})) == 0 {
		t.Fatalf("no moves at start")
	}
	if g.GFEN() != DefaultGFEN {
		t.Fatalf("gfen: %s", g.GFEN())
	}
	if len(g.Header()) != 0 {
		t.Fatalf("default position must not set headers: %v", g.Header())
	}
}

func TestMoveAndUndo(t *testing.T) {
	g := NewGame()

	if _, ok := g.Move(MoveRequest{From: "9z", To: "2e"}); ok {
		t.Fatalf("invalid square accepted")
	}
	if _, ok := g.Move(MoveRequest{From: "2c", To: "2f"}); ok {
		t.Fatalf("illegal move accepted")
	}
	if g.GFEN() != DefaultGFEN {
		t.Fatalf("rejected move changed the game")
	}

	res, ok := g.Move(MoveRequest{From: "2c", To: "2e"})
	if !ok {
		t.Fatalf("double step rejected")
	}
	if res.Notation != "2e" || res.Flags != "q" || res.Piece != Pyramid || res.Color != White {
		t.Fatalf("result: %+v", res)
	}
	pos := g.Position()
	if pos.HalfMoves != 0 {
		t.Fatalf("half-move clock after pyramid move: %d", pos.HalfMoves)
	}
	if g.InDraw() {
		t.Fatalf("draw right after the opening move")
	}
	if g.Turn() != Black {
		t.Fatalf("turn did not pass to black")
	}

	if _, ok := g.MoveSAN("R5h"); !ok {
		t.Fatalf("black ring move by notation rejected")
	}
	if got := strings.Join(g.History(), " "); got != "2e R5h" {
		t.Fatalf("history: got=%q", got)
	}

	undone, ok := g.Undo()
	if !ok || undone.Notation != "R5h" || undone.Color != Black {
		t.Fatalf("undo: %+v %v", undone, ok)
	}
	if _, ok := g.Undo(); !ok {
		t.Fatalf("second undo failed")
	}
	if g.GFEN() != DefaultGFEN {
		t.Fatalf("undo did not restore the start: %s", g.GFEN())
	}
	if _, ok := g.Undo(); ok {
		t.Fatalf("undo with empty history succeeded")
	}
	if g.GFEN() != DefaultGFEN {
		t.Fatalf("empty undo changed the game")
	}
}

func TestMoveSANAcceptsCoordinates(t *testing.T) {
	g := NewGame()
	res, ok := g.MoveSAN("2a2d")
	if !ok || res.Notation != "R2d" {
		t.Fatalf("coordinate move: %+v %v", res, ok)
	}
	if _, ok := g.MoveSAN("Q4f"); ok {
		t.Fatalf("nonsense notation accepted")
	}
	if _, ok := g.MoveSAN("  "); ok {
		t.Fatalf("blank notation accepted")
	}
}

func TestPromotionRequest(t *testing.T) {
	g := sparseGame(t, map[string]Piece{"3j": NewPiece(White, Pyramid)})
	if _, ok := g.Move(MoveRequest{From: "3j", To: "2k"}); ok {
		t.Fatalf("promotion without a target accepted")
	}
	res, ok := g.Move(MoveRequest{From: "3j", To: "2k", Promotion: Sphere})
	if !ok || res.Notation != "2k=S" || res.Promotion != Sphere {
		t.Fatalf("promotion: %+v %v", res, ok)
	}
	if pc, _ := g.Get(mustSquare(t, "2k")); pc != NewPiece(White, Sphere) {
		t.Fatalf("2k: got %s want S", pc)
	}
	g.Undo()
	if pc, _ := g.Get(mustSquare(t, "3j")); pc != NewPiece(White, Pyramid) {
		t.Fatalf("undo of promotion: 3j holds %s", pc)
	}
}

func TestLoadIsAtomic(t *testing.T) {
	g := NewGame()
	g.Move(MoveRequest{From: "2c", To: "2e"})
	before := g.GFEN()

	for _, bad := range []string{"", "garbage", "drd/cssc/ppppp/6/7/8/7/6/PPPPP/CSSC/RRR w 0 1"} {
		if err := g.Load(bad); err == nil {
			t.Fatalf("Load(%q) succeeded", bad)
		}
	}
	if g.GFEN() != before || len(g.History()) != 1 {
		t.Fatalf("failed load modified the game: %s %v", g.GFEN(), g.History())
	}
}

func TestSetupHeader(t *testing.T) {
	g := NewGame()
	if err := g.Load(sparseGFEN); err != nil {
		t.Fatalf("load: %v", err)
	}
	h := g.Header()
	if h["SetUp"] != "1" || h["GFEN"] != sparseGFEN {
		t.Fatalf("setup headers: %v", h)
	}
	g.SetHeader("White", "alice")
	g.Reset()
	h = g.Header()
	if _, ok := h["SetUp"]; ok {
		t.Fatalf("reset must clear SetUp: %v", h)
	}
	if h["White"] != "alice" {
		t.Fatalf("unrelated header lost: %v", h)
	}
}

func TestRemoveBothDiamondsEliminatesBlack(t *testing.T) {
	g := NewGame()
	for _, name := range []string{"1k", "3k"} {
		pc, ok := g.Remove(mustSquare(t, name))
		if !ok || pc != NewPiece(Black, Diamond) {
			t.Fatalf("remove %s: %s %v", name, pc, ok)
		}
	}
	if !g.Eliminated() || g.Loser() != Black || !g.GameOver() {
		t.Fatalf("black should be eliminated")
	}
	if _, ok := g.Remove(mustSquare(t, "4f")); ok {
		t.Fatalf("removing an empty tile reported a piece")
	}
}

func TestThreefoldRepetition(t *testing.T) {
	g := NewGame()
	shuffle := []string{"2a2d", "2k5h", "2d2a", "5h2k"}
	for i := 0; i < 2; i++ {
		for _, mv := range shuffle {
			if g.InRepetition() {
				t.Fatalf("repetition reported too early (cycle %d)", i)
			}
			if _, ok := g.MoveSAN(mv); !ok {
				t.Fatalf("move %s rejected", mv)
			}
		}
	}
	if !g.InRepetition() || !g.InDraw() {
		t.Fatalf("start position occurred three times")
	}
	g.Undo()
	if g.InRepetition() {
		t.Fatalf("repetition after undo")
	}
}

func TestHalfMoveLimit(t *testing.T) {
	g, err := NewGameFromGFEN("drd/cssc/ppppp/6/7/8/7/6/PPPPP/CSSC/DRD w 99 60")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if g.InDraw() {
		t.Fatalf("99 half moves is not yet a draw")
	}
	g.MoveSAN("R2d")
	if !g.HalfMoveLimitReached() || !g.InDraw() {
		t.Fatalf("100 half moves must be a draw")
	}
	g.Undo()
	g.MoveSAN("2e")
	if g.InDraw() {
		t.Fatalf("pyramid move resets the clock")
	}
}

func TestInsufficientMaterialPolicy(t *testing.T) {
	g, err := NewGameFromGFEN(sparseGFEN)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !g.InsufficientMaterial() || !g.GameOver() {
		t.Fatalf("lone diamonds must be a draw by default")
	}

	always := DefaultDrawRules()
	always.CanEliminate = func(*Board, Side) bool { return true }
	g, _ = NewGameFromGFEN(sparseGFEN, WithDrawRules(always))
	if g.InDraw() {
		t.Fatalf("custom material policy ignored")
	}

	g = NewGame()
	if g.InsufficientMaterial() {
		t.Fatalf("start position has mating material")
	}
}

func TestHistoryReplaysToSamePosition(t *testing.T) {
	g := NewGame()
	for ply := 0; ply < 30 && !g.Eliminated(); ply++ {
		moves := g.GenerateMoves(GenOptions{})
		m := moves[(ply*11+2)%len(moves)]
		if _, ok := g.Move(MoveRequest{From: m.From.Name(), To: m.To.Name(), Promotion: m.Promotion}); !ok {
			t.Fatalf("ply %d: generated move %s rejected", ply, m)
		}
	}
	final := g.GFEN()
	hist := g.History()
	if g.GFEN() != final {
		t.Fatalf("History() changed the position")
	}

	replay := NewGame()
	for i, san := range hist {
		if _, ok := replay.MoveSAN(san); !ok {
			t.Fatalf("replay %d: %q rejected", i, san)
		}
	}
	if replay.GFEN() != final {
		t.Fatalf("replay: got=%s want=%s", replay.GFEN(), final)
	}
}

func TestMoveResultJSON(t *testing.T) {
	g := NewGame()
	res, _ := g.Move(MoveRequest{From: "2c", To: "2e"})
	b, err := json.Marshal(res)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	got := string(b)
	for _, want := range []string{`"color":"w"`, `"piece":"p"`, `"flags":"q"`, `"san":"2e"`} {
		if !strings.Contains(got, want) {
			t.Fatalf("json %s missing %s", got, want)
		}
	}
	if strings.Contains(got, "captured") {
		t.Fatalf("empty capture must be omitted: %s", got)
	}

	var req MoveRequest
	if err := json.Unmarshal([]byte(`{"from":"3j","to":"2k","promotion":"d"}`), &req); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if req.Promotion != Diamond {
		t.Fatalf("promotion: got %s", req.Promotion)
	}
}
