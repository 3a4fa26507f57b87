package slots

import (
	"encoding/json"
	"errors"
	"fmt"
)

var (
	// ErrUnknownShape возвращается, когда элемент ответа движка слотов
	// не является ни строкой, ни объектом с полем slot_time / start_time
	ErrUnknownShape = errors.New("slots: unrecognized raw slot shape")
)

// RawSlot сырой дескриптор слота из удалённой процедуры расчёта доступности.
// Процедура исторически отдаёт элементы трёх форм:
//   - голая строка: "09:00:00"
//   - объект {"slot_time": "09:00:00"}
//   - объект {"start_time": "09:00"}
//
// Декодирование - строгое: любая другая форма считается ошибкой протокола
// (fail fast на границе данных), дальше по пайплайну идут уже типизированные
// значения
type RawSlot struct {
	// SlotTime значение поля slot_time, если элемент был объектом
	SlotTime *string
	// StartTime значение поля start_time, если элемент был объектом
	StartTime *string
	// Bare значение элемента-строки
	Bare *string
}

type rawSlotObject struct {
	SlotTime  *string `json:"slot_time"`
	StartTime *string `json:"start_time"`
}

// UnmarshalJSON реализует строгий tagged-union декодер дескриптора
func (r *RawSlot) UnmarshalJSON(data []byte) error {
	// Сначала пробуем голую строку
	var bare string
	if err := json.Unmarshal(data, &bare); err == nil {
		r.Bare = &bare
		return nil
	}

	// Затем объект с известными полями
	var obj rawSlotObject
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("%w: %s", ErrUnknownShape, string(data))
	}
	if obj.SlotTime == nil && obj.StartTime == nil {
		return fmt.Errorf("%w: object without slot_time/start_time: %s", ErrUnknownShape, string(data))
	}

	r.SlotTime = obj.SlotTime
	r.StartTime = obj.StartTime
	return nil
}

// FromString создает дескриптор из голой строки (для тестов и ручной сборки)
func FromString(s string) RawSlot {
	return RawSlot{Bare: &s}
}

// FromSlotTime создает дескриптор формы {"slot_time": ...}
func FromSlotTime(s string) RawSlot {
	return RawSlot{SlotTime: &s}
}

// FromStartTime создает дескриптор формы {"start_time": ...}
func FromStartTime(s string) RawSlot {
	return RawSlot{StartTime: &s}
}
