package timeoff

import "errors"

var (
	// ErrTimeOffNotFound возвращается, когда отгул не найден
	ErrTimeOffNotFound = errors.New("time off not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
