package create_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ReservationsService/internal/domain"
	reservationRepo "github.com/m04kA/SMC-ReservationsService/internal/infra/storage/reservation"
)

// UseCase use case для создания резервации.
// Строка резервации и полный набор строк услуг пишутся одной сериализуемой
// транзакцией; уведомление ставится в очередь только после коммита.
type UseCase struct {
	reservationRepo ReservationRepository
	serviceLinkRepo ServiceLinkRepository
	dispatcher      NotificationDispatcher
	txManager       TransactionManager
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	serviceLinkRepo ServiceLinkRepository,
	dispatcher NotificationDispatcher,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		serviceLinkRepo: serviceLinkRepo,
		dispatcher:      dispatcher,
		txManager:       txManager,
		logger:          logger,
	}
}

// Execute выполняет use case создания резервации
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: venue=%d, customer=%d, shift=%d, date=%s, services=%d",
		req.VenueID, req.CustomerID, req.ShiftID, req.Date.Format(domain.DateFormat), len(req.Services))

	// 1. Валидация входных данных — до любой попытки записи
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	reservation := &domain.Reservation{
		Date:          req.Date,
		VenueID:       req.VenueID,
		CustomerID:    req.CustomerID,
		ShiftID:       req.ShiftID,
		BirthdayPhoto: req.BirthdayPhoto,
		Theme:         req.Theme,
		VenueFee:      req.VenueFee,
		// Принимаем сумму клиента как есть, без пересчета по строкам услуг
		TotalAmount: req.TotalAmount,
	}

	var created *domain.Reservation

	// 2. Строка резервации + полный набор строк услуг — одна атомарная
	// единица. Любая ошибка до коммита откатывает всё: состояния
	// "резервация есть, услуг нет" не существует.
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		result, err := uc.reservationRepo.Create(txCtx, reservation)
		if err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				return ErrNotPersisted
			}
			return fmt.Errorf("%w: failed to create reservation: %v", ErrInternal, err)
		}

		if err := uc.serviceLinkRepo.ReplaceAll(txCtx, result.ID, toDomainLines(req.Services)); err != nil {
			return fmt.Errorf("%w: failed to persist service lines: %v", ErrInternal, err)
		}

		created = result
		return nil
	})

	if err != nil {
		if !errors.Is(err, ErrNotPersisted) {
			uc.logger.Error("CreateReservation: transaction failed: %v", err)
		}
		return nil, err
	}

	uc.logger.Info("CreateReservation: successfully created reservation id=%d", created.ID)

	// 3. Уведомление — строго после коммита и по перечитанным данным,
	// чтобы письмо никогда не ссылалось на незакоммиченную резервацию.
	// Любая ошибка здесь не влияет на результат use case.
	uc.enqueueNotification(ctx, created.ID)

	// 4. Возвращаем закоммиченную каноничную строку
	final, err := uc.reservationRepo.GetByID(ctx, created.ID)
	if err != nil {
		uc.logger.Error("CreateReservation: failed to re-read reservation id=%d: %v", created.ID, err)
		return nil, fmt.Errorf("%w: failed to re-read reservation: %v", ErrInternal, err)
	}

	return fromDomain(final, req.Services), nil
}

func (uc *UseCase) enqueueNotification(ctx context.Context, reservationID int64) {
	data, err := uc.reservationRepo.GetNotificationData(ctx, reservationID)
	if err != nil {
		uc.logger.Error("CreateReservation: failed to fetch notification data for id=%d: %v",
			reservationID, err)
		return
	}

	uc.dispatcher.DispatchCreated(*data)
}
