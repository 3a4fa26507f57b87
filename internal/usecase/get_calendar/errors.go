package get_calendar

import "errors"

var (
	// ErrInvalidRange возвращается при некорректном диапазоне дат
	ErrInvalidRange = errors.New("get_calendar: invalid date range")

	// ErrInvalidGranularity возвращается при неизвестной гранулярности вида
	ErrInvalidGranularity = errors.New("get_calendar: invalid granularity")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_calendar: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_calendar: internal error")
)
