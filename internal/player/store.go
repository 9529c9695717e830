package player

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

var ErrPlayerNotFound = errors.New("player not found")

// Store keeps player records keyed by id. Every method is atomic on its own;
// there are no multi-player transactions.
type Store interface {
	Create() (Player, error)
	Get(id string) (Player, error)
	// Update accepts a partial set of fields but does not apply them yet: request
	// bodies are not parsed, so it only confirms the player exists.
	Update(id string, fields map[string]any) (Player, error)
	Delete(id string) (Player, error)
	// Apply runs fn against the stored record under the store lock and returns the result.
	Apply(id string, fn func(p *Player, now time.Time)) (Player, error)
}

type memoryStore struct {
	mu      sync.RWMutex
	players map[string]Player
	now     func() time.Time
	newID   func() string
}

func NewInMemoryStore() Store {
	return &memoryStore{
		players: map[string]Player{},
		now:     time.Now,
		newID:   newPlayerID,
	}
}

func newPlayerID() string { return idPrefix + uuid.NewString() }

func (m *memoryStore) Create() (Player, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	id := m.newID()
	if _, dup := m.players[id]; dup {
		return Player{}, errors.New("player id collision: " + id)
	}
	p := New(id, m.now())
	m.players[id] = p
	return p.clone(), nil
}

func (m *memoryStore) Get(id string) (Player, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	p, ok := m.players[id]
	if !ok {
		return Player{}, ErrPlayerNotFound
	}
	return p.clone(), nil
}

func (m *memoryStore) Update(id string, _ map[string]any) (Player, error) {
	return m.Get(id)
}

func (m *memoryStore) Delete(id string) (Player, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.players[id]
	if !ok {
		return Player{}, ErrPlayerNotFound
	}
	delete(m.players, id)
	return p, nil
}

func (m *memoryStore) Apply(id string, fn func(p *Player, now time.Time)) (Player, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.players[id]
	if !ok {
		return Player{}, ErrPlayerNotFound
	}
	fn(&p, m.now())
	m.players[id] = p
	return p.clone(), nil
}
