package slotengine

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("slotengine client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе движка
	ErrInvalidResponse = errors.New("slotengine client: invalid response")

	// ErrEngineUnavailable возвращается, когда движок расчёта слотов недоступен
	ErrEngineUnavailable = errors.New("slotengine unavailable")
)
