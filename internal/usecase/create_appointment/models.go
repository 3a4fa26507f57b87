package create_appointment

import (
	"time"
)

// Request модель запроса на создание записи
type Request struct {
	TenantID   string    // ID арендатора
	ClientID   string    // ID клиента
	ServiceID  string    // ID услуги
	EmployeeID *string   // ID сотрудника (опционально, nil = не назначен)
	Date       time.Time // Дата записи (без времени)
	TimeOfDay  string    // Время начала, "10:00" или "10:00:00"
	Notes      *string   // Дополнительные заметки (опционально)
}

// Response модель ответа с созданной записью
type Response struct {
	ID         string    // ID созданной записи
	TenantID   string    // ID арендатора
	ClientID   string    // ID клиента
	ServiceID  string    // ID услуги
	EmployeeID *string   // ID сотрудника
	Start      time.Time // Начало записи
	End        time.Time // Конец записи
	Status     string    // Статус записи

	// Денормализованные данные
	ServiceName string  // Название услуги
	Price       float64 // Цена услуги
	Notes       *string // Заметки

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
