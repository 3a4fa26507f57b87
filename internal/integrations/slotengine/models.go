package slotengine

import "github.com/agendaplus/booking-service/internal/slots"

// slotsRequest тело вызова процедуры get_available_slots
type slotsRequest struct {
	QueryDate       string  `json:"query_date"`        // YYYY-MM-DD
	TenantFilter    string  `json:"tenant_filter"`     // UUID арендатора
	QueryEmployeeID *string `json:"query_employee_id"` // nil = любой сотрудник
}

// slotsResponse движок возвращает слоты в разнородных формах,
// нормализацией занимается пакет slots
type slotsResponse struct {
	Slots []slots.RawSlot `json:"slots"`
}

// ErrorResponse модель ошибки движка
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
