package game

import (
	"sync"
	"time"

	"geo/internal/geo"
)

// GameState 一个 HTTP 会话；mu 在每个请求处理期间持有
type GameState struct {
	ID        string
	CreatedAt time.Time
	UpdatedAt time.Time

	mu   sync.Mutex
	game *geo.Game
}

// Do 在会话锁内操作对局
func (s *GameState) Do(fn func(g *geo.Game) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	err := fn(s.game)
	s.UpdatedAt = time.Now()
	return err
}
