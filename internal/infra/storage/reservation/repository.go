package reservation

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-ReservationsService/internal/domain"
	"github.com/m04kA/SMC-ReservationsService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-ReservationsService/pkg/txmanager"
)

var reservationColumns = []string{
	"reserva_id",
	"fecha_reserva",
	"salon_id",
	"usuario_id",
	"turno_id",
	"foto_cumpleaniero",
	"tematica",
	"importe_salon",
	"importe_total",
	"activo",
	"creado",
	"modificado",
}

// Repository репозиторий для работы с резервациями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория резерваций
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую резервацию и перечитывает каноничную строку из БД.
// Если в контексте есть активная транзакция, использует её — и тогда
// перечитанная строка отражает еще не закоммиченные данные этой транзакции.
func (r *Repository) Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("reservas").
		Columns(
			"fecha_reserva",
			"salon_id",
			"usuario_id",
			"turno_id",
			"foto_cumpleaniero",
			"tematica",
			"importe_salon",
			"importe_total",
			"activo",
			"creado",
			"modificado",
		).
		Values(
			res.Date,
			res.VenueID,
			res.CustomerID,
			res.ShiftID,
			res.BirthdayPhoto,
			res.Theme,
			res.VenueFee,
			res.TotalAmount,
			true,
			squirrel.Expr("NOW()"),
			squirrel.Expr("NOW()"),
		).
		Suffix("RETURNING reserva_id").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var id int64
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	// Всегда возвращаем то, что реально легло в базу
	return r.GetByID(ctx, id)
}

// GetByID получает активную резервацию по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(reservationColumns...).
		From("reservas").
		Where(squirrel.Eq{"reserva_id": id, "activo": true}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var res domain.Reservation
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&res.ID,
		&res.Date,
		&res.VenueID,
		&res.CustomerID,
		&res.ShiftID,
		&res.BirthdayPhoto,
		&res.Theme,
		&res.VenueFee,
		&res.TotalAmount,
		&res.Active,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrReservationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan reservation: %v", ErrScanRow, err)
	}

	res.CreatedAt = createdAt.Time
	res.UpdatedAt = updatedAt.Time

	return &res, nil
}

// List получает список активных резерваций.
// Опционально фильтрует по клиенту (роль "клиент" видит только свои).
// Сортировка фиксированная, чтобы повторные чтения были стабильны.
func (r *Repository) List(ctx context.Context, filter domain.ReservationFilter) ([]*domain.Reservation, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(reservationColumns...).
		From("reservas").
		Where(squirrel.Eq{"activo": true}).
		OrderBy("fecha_reserva DESC, reserva_id DESC")

	if filter.CustomerID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"usuario_id": *filter.CustomerID})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanReservations(rows)
}

// Update полностью заменяет изменяемые поля резервации.
// WHERE требует activo = true: обновление деактивированной резервации
// возвращает ErrReservationNotFound, а не ошибку.
func (r *Repository) Update(ctx context.Context, id int64, res *domain.Reservation) (*domain.Reservation, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("reservas").
		Set("fecha_reserva", res.Date).
		Set("salon_id", res.VenueID).
		Set("usuario_id", res.CustomerID).
		Set("turno_id", res.ShiftID).
		Set("foto_cumpleaniero", res.BirthdayPhoto).
		Set("tematica", res.Theme).
		Set("importe_salon", res.VenueFee).
		Set("importe_total", res.TotalAmount).
		Set("modificado", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"reserva_id": id, "activo": true}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return nil, ErrReservationNotFound
	}

	return r.GetByID(ctx, id)
}

// SoftDelete деактивирует резервацию (activo -> false) и штампует modificado.
// Повторное удаление уже неактивной резервации возвращает ErrReservationNotFound.
func (r *Repository) SoftDelete(ctx context.Context, id int64) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("reservas").
		Set("activo", false).
		Set("modificado", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"reserva_id": id, "activo": true}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: SoftDelete - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: SoftDelete - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: SoftDelete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrReservationNotFound
	}

	return nil
}

// GetNotificationData собирает данные для уведомления одной агрегатной выборкой:
// резервация + название салона + смена + email получателя.
// Дата форматируется строкой прямо в запросе, чтобы проекция совпадала
// с тем, что уходит в шаблон письма.
func (r *Repository) GetNotificationData(ctx context.Context, id int64) (*domain.NotificationData, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"r.reserva_id",
		"to_char(r.fecha_reserva, 'YYYY-MM-DD') AS fecha",
		"s.titulo AS salon",
		"t.hora_desde || ' - ' || t.hora_hasta AS turno",
		"COALESCE(u.nombre_usuario, '') AS correo",
	).
		From("reservas r").
		Join("salones s ON s.salon_id = r.salon_id").
		Join("turnos t ON t.turno_id = r.turno_id").
		LeftJoin("usuarios u ON u.usuario_id = r.usuario_id AND u.activo = true").
		Where(squirrel.Eq{"r.reserva_id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetNotificationData - build select query: %v", ErrBuildQuery, err)
	}

	var data domain.NotificationData
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&data.ReservationID,
		&data.Date,
		&data.VenueName,
		&data.ShiftLabel,
		&data.RecipientEmail,
	)

	if err == sql.ErrNoRows {
		return nil, ErrReservationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetNotificationData - scan row: %v", ErrScanRow, err)
	}

	return &data, nil
}

// GetReportRows возвращает денормализованные строки отчета по активным
// резервациям. Генератор отчетов сам в базу не ходит — только трансформирует
// этот набор.
func (r *Repository) GetReportRows(ctx context.Context) ([]domain.ReportRow, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"r.reserva_id",
		"to_char(r.fecha_reserva, 'YYYY-MM-DD') AS fecha",
		"s.titulo AS salon",
		"t.hora_desde || ' - ' || t.hora_hasta AS turno",
		"COALESCE(u.nombre_usuario, '') AS cliente",
		"r.importe_salon",
		"r.importe_total",
	).
		From("reservas r").
		Join("salones s ON s.salon_id = r.salon_id").
		Join("turnos t ON t.turno_id = r.turno_id").
		LeftJoin("usuarios u ON u.usuario_id = r.usuario_id").
		Where(squirrel.Eq{"r.activo": true}).
		OrderBy("r.fecha_reserva DESC, r.reserva_id DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetReportRows - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetReportRows - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	reportRows := make([]domain.ReportRow, 0)
	for rows.Next() {
		var row domain.ReportRow
		if err := rows.Scan(
			&row.ReservationID,
			&row.Date,
			&row.VenueName,
			&row.ShiftLabel,
			&row.CustomerEmail,
			&row.VenueFee,
			&row.TotalAmount,
		); err != nil {
			return nil, fmt.Errorf("%w: GetReportRows - scan row: %v", ErrScanRow, err)
		}
		reportRows = append(reportRows, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetReportRows - rows error: %v", ErrScanRow, err)
	}

	return reportRows, nil
}

// GetVenueStats возвращает агрегат резерваций по клиентам и салонам
func (r *Repository) GetVenueStats(ctx context.Context) ([]domain.VenueStat, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"r.usuario_id",
		"COALESCE(u.nombre_usuario, '') AS cliente",
		"s.titulo AS salon",
		"COUNT(*) AS total_reservas",
		"COALESCE(SUM(r.importe_total), 0) AS total_gastado",
	).
		From("reservas r").
		Join("salones s ON s.salon_id = r.salon_id").
		LeftJoin("usuarios u ON u.usuario_id = r.usuario_id").
		Where(squirrel.Eq{"r.activo": true}).
		GroupBy("r.usuario_id", "u.nombre_usuario", "s.titulo").
		OrderBy("total_reservas DESC, r.usuario_id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetVenueStats - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetVenueStats - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	stats := make([]domain.VenueStat, 0)
	for rows.Next() {
		var stat domain.VenueStat
		if err := rows.Scan(
			&stat.CustomerID,
			&stat.CustomerEmail,
			&stat.VenueName,
			&stat.Reservations,
			&stat.TotalSpent,
		); err != nil {
			return nil, fmt.Errorf("%w: GetVenueStats - scan row: %v", ErrScanRow, err)
		}
		stats = append(stats, stat)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetVenueStats - rows error: %v", ErrScanRow, err)
	}

	return stats, nil
}

// scanReservations сканирует результаты запроса в слайс резерваций
func (r *Repository) scanReservations(rows *sql.Rows) ([]*domain.Reservation, error) {
	reservations := make([]*domain.Reservation, 0)

	for rows.Next() {
		var res domain.Reservation
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&res.ID,
			&res.Date,
			&res.VenueID,
			&res.CustomerID,
			&res.ShiftID,
			&res.BirthdayPhoto,
			&res.Theme,
			&res.VenueFee,
			&res.TotalAmount,
			&res.Active,
			&createdAt,
			&updatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanReservations - scan row: %v", ErrScanRow, err)
		}

		res.CreatedAt = createdAt.Time
		res.UpdatedAt = updatedAt.Time

		reservations = append(reservations, &res)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanReservations - rows error: %v", ErrScanRow, err)
	}

	return reservations, nil
}
