package game

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"geo/internal/geo"
	"github.com/google/uuid"
)

var ErrGameNotFound = errors.New("game not found")

type Manager struct {
	mu    sync.RWMutex
	games map[string]*GameState
}

func NewManager() *Manager {
	return &Manager{games: make(map[string]*GameState)}
}

// NewGame 开一局；gfen 为空时用初始局面
func (m *Manager) NewGame(gfen string) (*GameState, error) {
	g := geo.NewGame()
	if gfen != "" {
		if err := g.Load(gfen); err != nil {
			return nil, err
		}
	}

	now := time.Now()
	s := &GameState{
		ID:        uuid.NewString(),
		CreatedAt: now,
		UpdatedAt: now,
		game:      g,
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.games[s.ID] = s
	return s, nil
}

func (m *Manager) Get(id string) (*GameState, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.games[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrGameNotFound, id)
	}
	return s, nil
}

// Update 找到会话并在其锁内执行 fn
func (m *Manager) Update(id string, fn func(g *geo.Game) error) error {
	s, err := m.Get(id)
	if err != nil {
		return err
	}
	return s.Do(fn)
}

func (m *Manager) Delete(id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.games[id]; !ok {
		return false
	}
	delete(m.games, id)
	return true
}

func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.games)
}
