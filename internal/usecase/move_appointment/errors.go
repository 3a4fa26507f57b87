package move_appointment

import "errors"

var (
	// ErrSessionNotFound возвращается, когда сессия календаря не найдена или истекла
	ErrSessionNotFound = errors.New("move_appointment: session not found")

	// ErrEventNotFound возвращается, когда событие не найдено в сессии
	ErrEventNotFound = errors.New("move_appointment: event not found")

	// ErrEventNotMovable возвращается при попытке двигать синтетический плейсхолдер
	ErrEventNotMovable = errors.New("move_appointment: event is not movable")

	// ErrMutationPending возвращается, когда в сессии уже идёт другая мутация
	ErrMutationPending = errors.New("move_appointment: another mutation is pending")

	// ErrIntervalBusy возвращается, когда новый интервал занят другой записью
	ErrIntervalBusy = errors.New("move_appointment: interval overlaps an existing appointment")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("move_appointment: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("move_appointment: internal error")
)
