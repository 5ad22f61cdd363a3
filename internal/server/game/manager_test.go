package game

import (
	"errors"
	"sync"
	"testing"

	"geo/internal/geo"
	"github.com/google/uuid"
)

func TestNewGameAndGet(t *testing.T) {
	m := NewManager()
	s, err := m.NewGame("")
	if err != nil {
		t.Fatalf("new game: %v", err)
	}
	if _, err := uuid.Parse(s.ID); err != nil {
		t.Fatalf("id %q is not a uuid: %v", s.ID, err)
	}
	got, err := m.Get(s.ID)
	if err != nil || got != s {
		t.Fatalf("get: %v", err)
	}
	if _, err := m.Get("nope"); !errors.Is(err, ErrGameNotFound) {
		t.Fatalf("unknown id: got %v want ErrGameNotFound", err)
	}
}

func TestNewGameRejectsBadGFEN(t *testing.T) {
	m := NewManager()
	if _, err := m.NewGame("not a position"); !errors.Is(err, geo.ErrInvalidGFEN) {
		t.Fatalf("got %v want ErrInvalidGFEN", err)
	}
	if m.Len() != 0 {
		t.Fatalf("failed game was stored")
	}
}

func TestUpdateSerializesMoves(t *testing.T) {
	m := NewManager()
	s, _ := m.NewGame("")

	// 并发地走、悔同一步，最终必须回到初始局面
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := m.Update(s.ID, func(g *geo.Game) error {
				if _, ok := g.MoveSAN("2e"); !ok {
					return errors.New("move rejected")
				}
				if _, ok := g.Undo(); !ok {
					return errors.New("undo failed")
				}
				return nil
			})
			if err != nil {
				t.Errorf("update: %v", err)
			}
		}()
	}
	wg.Wait()

	var gfen string
	s.Do(func(g *geo.Game) error {
		gfen = g.GFEN()
		return nil
	})
	if gfen != geo.DefaultGFEN {
		t.Fatalf("gfen: got=%s want=%s", gfen, geo.DefaultGFEN)
	}
}

func TestDelete(t *testing.T) {
	m := NewManager()
	s, _ := m.NewGame("")
	if !m.Delete(s.ID) || m.Delete(s.ID) {
		t.Fatalf("delete should succeed exactly once")
	}
	if err := m.Update(s.ID, func(*geo.Game) error { return nil }); !errors.Is(err, ErrGameNotFound) {
		t.Fatalf("update after delete: %v", err)
	}
}
