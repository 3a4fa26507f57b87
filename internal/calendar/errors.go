package calendar

import "errors"

var (
	// ErrEventNotFound возвращается, когда события с таким id нет в сессии
	ErrEventNotFound = errors.New("calendar: event not found")

	// ErrEventNotMovable возвращается при попытке сдвинуть synthetic-событие
	// (availability-слой не имеет идентичности в хранилище)
	ErrEventNotMovable = errors.New("calendar: event cannot be moved")

	// ErrMoveInFlight возвращается, когда по этому событию уже есть
	// незавершённая оптимистичная мутация
	ErrMoveInFlight = errors.New("calendar: move already in flight for this event")

	// ErrMutationPending возвращается, когда сессия ждёт подтверждения
	// другой мутации - новые мутации не принимаются до её разрешения
	ErrMutationPending = errors.New("calendar: another mutation is pending")

	// ErrInvalidState возвращается при недопустимом переходе состояния сессии
	ErrInvalidState = errors.New("calendar: invalid session state transition")

	// ErrInvalidInterval возвращается при некорректном интервале (end <= start)
	ErrInvalidInterval = errors.New("calendar: invalid event interval")

	// ErrMoveResolved возвращается при повторном разрешении одной мутации
	ErrMoveResolved = errors.New("calendar: move already resolved")

	// ErrSessionNotFound возвращается, когда сессия не найдена в реестре
	ErrSessionNotFound = errors.New("calendar: session not found")
)
