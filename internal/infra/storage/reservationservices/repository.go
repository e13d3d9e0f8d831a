package reservationservices

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-ReservationsService/internal/domain"
	"github.com/m04kA/SMC-ReservationsService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-ReservationsService/pkg/txmanager"
)

// Repository репозиторий таблицы связей резервация-услуга (reservas_servicios)
type Repository struct {
	db txmanager.DBExecutor
}

// NewRepository создает новый экземпляр репозитория связей
func NewRepository(db txmanager.DBExecutor) *Repository {
	return &Repository{db: db}
}

// ReplaceAll атомарно заменяет полный набор строк услуг резервации:
// удаляет существующие и вставляет переданный список.
//
// Вызывается только внутри транзакции оркестратора — либо старый набор
// полностью заменен новым, либо (при любой ошибке) транзакция откатывается
// и старый набор остается нетронутым. Каждая вставка подтверждается до
// возврата, поэтому к моменту коммита все строки гарантированно записаны.
//
// Синхронизация при обновлении — это всегда полный delete-then-insert,
// а не diff: вызывающая сторона передает полный желаемый набор.
func (r *Repository) ReplaceAll(ctx context.Context, reservationID int64, lines []domain.ServiceLine) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	deleteQuery, deleteArgs, err := psqlbuilder.Delete("reservas_servicios").
		Where(squirrel.Eq{"reserva_id": reservationID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReplaceAll - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		return fmt.Errorf("%w: ReplaceAll - execute delete: %v", ErrExecQuery, err)
	}

	if len(lines) == 0 {
		return nil
	}

	insertBuilder := psqlbuilder.Insert("reservas_servicios").
		Columns("reserva_id", "servicio_id", "importe")

	for _, line := range lines {
		insertBuilder = insertBuilder.Values(reservationID, line.ServiceID, line.Amount)
	}

	insertQuery, insertArgs, err := insertBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReplaceAll - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, insertQuery, insertArgs...); err != nil {
		return fmt.Errorf("%w: ReplaceAll - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// ListByReservation возвращает строки услуг резервации
func (r *Repository) ListByReservation(ctx context.Context, reservationID int64) ([]domain.ServiceLine, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("servicio_id", "importe").
		From("reservas_servicios").
		Where(squirrel.Eq{"reserva_id": reservationID}).
		OrderBy("servicio_id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByReservation - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByReservation - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	lines := make([]domain.ServiceLine, 0)
	for rows.Next() {
		var line domain.ServiceLine
		if err := rows.Scan(&line.ServiceID, &line.Amount); err != nil {
			return nil, fmt.Errorf("%w: ListByReservation - scan row: %v", ErrScanRow, err)
		}
		lines = append(lines, line)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByReservation - rows error: %v", ErrScanRow, err)
	}

	return lines, nil
}
