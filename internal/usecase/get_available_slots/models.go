package get_available_slots

import "time"

// Request модель запроса доступных слотов
type Request struct {
	TenantID   string    // ID арендатора
	Date       time.Time // Дата, на которую запрашиваются слоты
	EmployeeID *string   // ID сотрудника (опционально, nil = любой)
}

// Response модель ответа со слотами
type Response struct {
	Date  string   // Дата в формате YYYY-MM-DD
	Slots []string // Канонические времена "HH:MM" в порядке движка
}
