package assessmentstore

import (
	"sync"
	"time"

	"interview-assessment/lib/assessment"
	"interview-assessment/lib/catalog"
	"interview-assessment/lib/metrics"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

var ErrSessionNotFound = errors.New("форма оценки не найдена")

// UpdateFunc - чистая функция изменения формы
type UpdateFunc func(state assessment.FormState) (assessment.FormState, error)

// Provider - хранилище форм в памяти процесса, по одной форме на сессию браузера.
// Наружу отдаются только копии состояния.
type Provider interface {
	Create() (id string, state assessment.FormState)
	Ensure(id string) (actualID string, state assessment.FormState, created bool)
	Get(id string) (assessment.FormState, error)
	Update(id string, fn UpdateFunc) (assessment.FormState, error)
	Delete(id string) error
	EvictIdle(now time.Time) int
	Count() int
}

var Instance Provider

func NewHandler(cat *catalog.Catalog, ttl time.Duration) {
	Instance = NewInstance(cat, ttl, time.Now)
}

func NewInstance(cat *catalog.Catalog, ttl time.Duration, now func() time.Time) Provider {
	return &impl{
		cat:      cat,
		ttl:      ttl,
		now:      now,
		sessions: make(map[string]*entry),
	}
}

type entry struct {
	state     assessment.FormState
	touchedAt time.Time
}

type impl struct {
	mu       sync.Mutex
	cat      *catalog.Catalog
	ttl      time.Duration
	now      func() time.Time
	sessions map[string]*entry
}

func (i *impl) Create() (string, assessment.FormState) {
	i.mu.Lock()
	defer i.mu.Unlock()
	id, state := i.create()
	return id, state.Clone()
}

func (i *impl) create() (string, assessment.FormState) {
	id := uuid.New().String()
	state := assessment.NewFormState(i.cat)
	i.sessions[id] = &entry{state: state, touchedAt: i.now()}
	metrics.ActiveSessions.Set(float64(len(i.sessions)))
	log.WithField("session_id", id).Debug("создана форма оценки")
	return id, state
}

func (i *impl) Ensure(id string) (string, assessment.FormState, bool) {
	i.mu.Lock()
	defer i.mu.Unlock()
	if item, ok := i.sessions[id]; ok {
		item.touchedAt = i.now()
		return id, item.state.Clone(), false
	}
	newID, state := i.create()
	return newID, state.Clone(), true
}

func (i *impl) Get(id string) (assessment.FormState, error) {
	i.mu.Lock()
	defer i.mu.Unlock()
	item, ok := i.sessions[id]
	if !ok {
		return assessment.FormState{}, ErrSessionNotFound
	}
	item.touchedAt = i.now()
	return item.state.Clone(), nil
}

// Update применяет fn к текущему состоянию; при ошибке состояние не меняется
func (i *impl) Update(id string, fn UpdateFunc) (assessment.FormState, error) {
	i.mu.Lock()
	defer i.mu.Unlock()
	item, ok := i.sessions[id]
	if !ok {
		return assessment.FormState{}, ErrSessionNotFound
	}
	state, err := fn(item.state.Clone())
	if err != nil {
		return item.state.Clone(), err
	}
	item.state = state
	item.touchedAt = i.now()
	return state.Clone(), nil
}

func (i *impl) Delete(id string) error {
	i.mu.Lock()
	defer i.mu.Unlock()
	if _, ok := i.sessions[id]; !ok {
		return ErrSessionNotFound
	}
	delete(i.sessions, id)
	metrics.ActiveSessions.Set(float64(len(i.sessions)))
	return nil
}

// EvictIdle удаляет формы, не использовавшиеся дольше ttl
func (i *impl) EvictIdle(now time.Time) int {
	if i.ttl <= 0 {
		return 0
	}
	i.mu.Lock()
	defer i.mu.Unlock()
	evicted := 0
	for id, item := range i.sessions {
		if now.Sub(item.touchedAt) > i.ttl {
			delete(i.sessions, id)
			evicted++
		}
	}
	if evicted > 0 {
		metrics.SessionsEvicted.Add(float64(evicted))
		metrics.ActiveSessions.Set(float64(len(i.sessions)))
	}
	return evicted
}

func (i *impl) Count() int {
	i.mu.Lock()
	defer i.mu.Unlock()
	return len(i.sessions)
}
