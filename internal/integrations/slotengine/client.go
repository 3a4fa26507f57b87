package slotengine

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/agendaplus/booking-service/internal/domain"
	"github.com/agendaplus/booking-service/internal/slots"
)

// Client клиент движка расчёта доступных слотов
// Движок вызывается как RPC-процедура поверх HTTP POST
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента движка слотов
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetAvailableSlots вызывает процедуру get_available_slots
// Возвращает сырые дескрипторы слотов как есть, без нормализации
func (c *Client) GetAvailableSlots(ctx context.Context, tenantID string, date time.Time, employeeID *string) ([]slots.RawSlot, error) {
	url := fmt.Sprintf("%s/rpc/get_available_slots", c.baseURL)

	payload := slotsRequest{
		QueryDate:       date.Format(domain.DateFormat),
		TenantFilter:    tenantID,
		QueryEmployeeID: employeeID,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrEngineUnavailable, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusBadRequest:
		respBody, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: engine rejected request: %s", ErrInvalidResponse, string(respBody))
	case http.StatusServiceUnavailable, http.StatusBadGateway, http.StatusGatewayTimeout:
		return nil, fmt.Errorf("%w: status code %d", ErrEngineUnavailable, resp.StatusCode)
	default:
		respBody, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(respBody))
	}

	// Парсим ответ
	var result slotsResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return result.Slots, nil
}

// GetAvailableSlotsWithGracefulDegradation вызывает движок с деградацией
// При недоступности движка возвращает пустой список слотов вместо ошибки,
// чтобы экран записи оставался рабочим
func (c *Client) GetAvailableSlotsWithGracefulDegradation(ctx context.Context, tenantID string, date time.Time, employeeID *string) ([]slots.RawSlot, error) {
	c.log.Info("Fetching available slots for tenant=%s date=%s", tenantID, date.Format(domain.DateFormat))

	raw, err := c.GetAvailableSlots(ctx, tenantID, date, employeeID)
	if err != nil {
		// Некорректный запрос - бизнес-ошибка, пробрасываем дальше
		if !errors.Is(err, ErrEngineUnavailable) {
			return nil, err
		}

		// Движок лежит - отдаём пустой список, повышаем уровень логирования
		c.log.Error("Slot engine unavailable, returning empty slot list for tenant=%s: %v", tenantID, err)
		return []slots.RawSlot{}, nil
	}

	c.log.Info("Successfully fetched %d raw slots for tenant=%s", len(raw), tenantID)
	return raw, nil
}
