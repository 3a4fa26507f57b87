package timeoff

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/agendaplus/booking-service/internal/domain"
	"github.com/agendaplus/booking-service/pkg/dbmetrics"
	"github.com/agendaplus/booking-service/pkg/psqlbuilder"
)

// Repository репозиторий для работы с отгулами сотрудников
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория отгулов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает отгул
func (r *Repository) Create(ctx context.Context, item *domain.TimeOff) (*domain.TimeOff, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	item.ID = uuid.NewString()

	query, args, err := psqlbuilder.Insert("employee_time_off").
		Columns(
			"id",
			"tenant_id",
			"employee_id",
			"start_time",
			"end_time",
			"reason",
		).
		Values(
			item.ID,
			item.TenantID,
			item.EmployeeID,
			item.StartTime,
			item.EndTime,
			item.Reason,
		).
		Suffix("RETURNING created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	item.CreatedAt = createdAt.Time

	return item, nil
}

// GetByTenant получает отгулы арендатора, пересекающие интервал [from, to)
// Имя сотрудника подтягивается LEFT JOIN'ом
func (r *Repository) GetByTenant(ctx context.Context, tenantID string, from, to *time.Time) ([]*domain.TimeOff, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"t.id",
		"t.tenant_id",
		"t.employee_id",
		"t.start_time",
		"t.end_time",
		"t.reason",
		"e.full_name AS employee_name",
		"t.created_at",
	).
		From("employee_time_off t").
		LeftJoin("employees e ON e.id = t.employee_id").
		Where(squirrel.Eq{"t.tenant_id": tenantID}).
		OrderBy("t.start_time ASC")

	if from != nil {
		selectBuilder = selectBuilder.Where(squirrel.Gt{"t.end_time": *from})
	}
	if to != nil {
		selectBuilder = selectBuilder.Where(squirrel.Lt{"t.start_time": *to})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByTenant - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByTenant - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	items := make([]*domain.TimeOff, 0)
	for rows.Next() {
		var item domain.TimeOff
		var createdAt sql.NullTime

		err := rows.Scan(
			&item.ID,
			&item.TenantID,
			&item.EmployeeID,
			&item.StartTime,
			&item.EndTime,
			&item.Reason,
			&item.EmployeeName,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: GetByTenant - scan row: %v", ErrScanRow, err)
		}

		item.CreatedAt = createdAt.Time
		items = append(items, &item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByTenant - rows error: %v", ErrScanRow, err)
	}

	return items, nil
}

// Delete удаляет отгул
func (r *Repository) Delete(ctx context.Context, tenantID, id string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("employee_time_off").
		Where(squirrel.Eq{"id": id, "tenant_id": tenantID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrTimeOffNotFound
	}

	return nil
}
