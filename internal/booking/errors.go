package booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных сборки:
	// нераспарсиваемое время, пустые идентификаторы, неположительная длительность
	ErrInvalidInput = errors.New("booking: invalid input")
)
