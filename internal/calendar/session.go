package calendar

import (
	"fmt"
	"sync"
	"time"

	"github.com/agendaplus/booking-service/internal/domain"
)

// State состояние календарной view-сессии
type State string

const (
	// StateIdle сессия создана, данных ещё нет
	StateIdle State = "idle"
	// StateLoading идёт первая загрузка данных
	StateLoading State = "loading"
	// StateReady список событий актуален и может мутироваться
	StateReady State = "ready"
	// StateOptimisticPending применена оптимистичная мутация,
	// ожидается подтверждение или откат
	StateOptimisticPending State = "optimistic_pending"
)

// Session состояние одной календарной view-сессии: список событий плюс
// машина состояний Idle -> Loading -> Ready -> OptimisticPending -> Ready.
//
// Мутации оптимистичные: список правится немедленно, снимок до мутации
// сохраняется и восстанавливается при отказе бэкенда. Пока мутация не
// разрешена, новые мутации не принимаются (guard по id события закрывает
// гонку двух перетаскиваний одного события). Все переходы сериализуются
// на внутреннем мьютексе.
type Session struct {
	mu       sync.Mutex
	state    State
	events   []domain.CalendarEvent
	inflight map[string]struct{} // id события -> незавершённая мутация
}

// NewSession создает пустую сессию в состоянии Idle
func NewSession() *Session {
	return &Session{
		state:    StateIdle,
		inflight: make(map[string]struct{}),
	}
}

// State возвращает текущее состояние сессии
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// BeginLoad переводит сессию в Loading перед первой загрузкой
func (s *Session) BeginLoad() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateIdle {
		return fmt.Errorf("%w: BeginLoad from %s", ErrInvalidState, s.state)
	}
	s.state = StateLoading
	return nil
}

// CompleteLoad сохраняет загруженные события и переводит сессию в Ready
func (s *Session) CompleteLoad(events []domain.CalendarEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateLoading {
		return fmt.Errorf("%w: CompleteLoad from %s", ErrInvalidState, s.state)
	}
	s.events = cloneEvents(events)
	s.state = StateReady
	return nil
}

// Refresh заменяет список событий результатом фонового refetch (Ready -> Ready)
// Во время незавершённой мутации refetch отклоняется - авторитетный ответ
// по мутации всё равно придёт через Commit/Rollback
func (s *Session) Refresh(events []domain.CalendarEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateReady {
		return fmt.Errorf("%w: Refresh from %s", ErrInvalidState, s.state)
	}
	s.events = cloneEvents(events)
	return nil
}

// Events возвращает копию текущего списка событий
func (s *Session) Events() []domain.CalendarEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneEvents(s.events)
}

// PendingMove незавершённая оптимистичная мутация: хранит снимок списка до
// правки и разрешается ровно один раз - Commit при успехе бэкенда,
// Rollback при отказе
type PendingMove struct {
	session  *Session
	eventID  string
	snapshot []domain.CalendarEvent
	resolved bool
}

// ApplyMove применяет перенос/изменение длительности события оптимистично:
// список правится сразу, снимок до правки остаётся в возвращаемом PendingMove.
//
// Отклоняется, если: сессия не в Ready (в том числе когда другая мутация
// ещё не разрешена), события нет, событие - synthetic-плейсхолдер, либо
// newEnd <= newStart.
func (s *Session) ApplyMove(eventID string, newStart, newEnd time.Time) (*PendingMove, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !newEnd.After(newStart) {
		return nil, fmt.Errorf("%w: [%s, %s]", ErrInvalidInterval, newStart, newEnd)
	}

	if s.state == StateOptimisticPending {
		if _, ok := s.inflight[eventID]; ok {
			return nil, ErrMoveInFlight
		}
		return nil, ErrMutationPending
	}
	if s.state != StateReady {
		return nil, fmt.Errorf("%w: ApplyMove from %s", ErrInvalidState, s.state)
	}

	idx := -1
	for i := range s.events {
		if s.events[i].ID == eventID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, fmt.Errorf("%w: id=%s", ErrEventNotFound, eventID)
	}
	if s.events[idx].IsPlaceholder() {
		return nil, fmt.Errorf("%w: id=%s", ErrEventNotMovable, eventID)
	}

	snapshot := cloneEvents(s.events)

	s.events[idx].Start = newStart
	s.events[idx].End = newEnd
	s.inflight[eventID] = struct{}{}
	s.state = StateOptimisticPending

	return &PendingMove{
		session:  s,
		eventID:  eventID,
		snapshot: snapshot,
	}, nil
}

// Commit подтверждает мутацию: локальный список уже соответствует бэкенду,
// сессия возвращается в Ready
func (p *PendingMove) Commit() error {
	return p.resolve(false)
}

// Rollback откатывает мутацию: оптимистичный список отбрасывается,
// восстанавливается снимок до правки
func (p *PendingMove) Rollback() error {
	return p.resolve(true)
}

func (p *PendingMove) resolve(restore bool) error {
	s := p.session
	s.mu.Lock()
	defer s.mu.Unlock()

	if p.resolved {
		return ErrMoveResolved
	}
	p.resolved = true

	if restore {
		s.events = p.snapshot
	}

	delete(s.inflight, p.eventID)
	s.state = StateReady
	return nil
}

// cloneEvents делает глубокую копию списка событий
// CalendarEvent и EventResource - value-типы без указателей, поэтому
// поэлементного копирования достаточно
func cloneEvents(events []domain.CalendarEvent) []domain.CalendarEvent {
	cloned := make([]domain.CalendarEvent, len(events))
	copy(cloned, events)
	return cloned
}
