package calendar

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// registryEntry сессия с отметкой последнего обращения
type registryEntry struct {
	session  *Session
	lastSeen time.Time
}

// Registry реестр живых календарных сессий, ключ - выданный клиенту UUID.
// Сессия живёт, пока рендерящая поверхность активна; брошенные сессии
// вычищаются по TTL при обращениях к реестру.
type Registry struct {
	mu      sync.Mutex
	entries map[string]*registryEntry
	ttl     time.Duration
	now     func() time.Time
}

// DefaultSessionTTL время жизни сессии без обращений
const DefaultSessionTTL = 30 * time.Minute

// NewRegistry создает пустой реестр сессий с дефолтным TTL
func NewRegistry() *Registry {
	return &Registry{
		entries: make(map[string]*registryEntry),
		ttl:     DefaultSessionTTL,
		now:     time.Now,
	}
}

// Open создает новую сессию и возвращает её идентификатор
func (r *Registry) Open() (string, *Session) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.evictLocked()

	id := uuid.NewString()
	session := NewSession()
	r.entries[id] = &registryEntry{session: session, lastSeen: r.now()}
	return id, session
}

// Get возвращает сессию по идентификатору и продлевает её TTL
func (r *Registry) Get(id string) (*Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.evictLocked()

	entry, ok := r.entries[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	entry.lastSeen = r.now()
	return entry.session, nil
}

// Close удаляет сессию из реестра (поверхность рендеринга снесена)
func (r *Registry) Close(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.entries, id)
}

// Len возвращает количество живых сессий
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

func (r *Registry) evictLocked() {
	deadline := r.now().Add(-r.ttl)
	for id, entry := range r.entries {
		if entry.lastSeen.Before(deadline) {
			delete(r.entries, id)
		}
	}
}
