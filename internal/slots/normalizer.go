package slots

// Normalize приводит сырые дескрипторы слотов к каноническому списку времён
// "HH:MM".
//
// Для каждого элемента берётся первое заполненное поле в порядке приоритета:
// slot_time, затем start_time, затем голое строковое значение. Строки вида
// "HH:MM[:SS]" (длина >= 5) усекаются до первых пяти символов; всё остальное
// проходит как есть - вызывающая сторона обязана терпеть неканонические
// значения.
//
// Порядок входа сохраняется, дедупликация и сортировка не выполняются:
// процедура расчёта отдаёт слоты уже упорядоченными и без дублей, и её
// вывод передаётся дальше дословно. Функция чистая и никогда не падает.
func Normalize(raw []RawSlot) []string {
	result := make([]string, 0, len(raw))

	for _, slot := range raw {
		result = append(result, normalizeOne(slot))
	}

	return result
}

func normalizeOne(slot RawSlot) string {
	value := ""
	switch {
	case slot.SlotTime != nil:
		value = *slot.SlotTime
	case slot.StartTime != nil:
		value = *slot.StartTime
	case slot.Bare != nil:
		value = *slot.Bare
	}

	// "09:00:00" -> "09:00"; короткие и нестандартные значения не трогаем
	if len(value) >= 5 && looksLikeTime(value) {
		return value[:5]
	}
	return value
}

// looksLikeTime грубая проверка формы "HH:MM..." без разбора чисел
// Настоящая валидация происходит позже, при сборке бронирования
func looksLikeTime(s string) bool {
	return len(s) >= 5 &&
		isDigit(s[0]) && isDigit(s[1]) && s[2] == ':' && isDigit(s[3]) && isDigit(s[4])
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
