package update_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ReservationsService/internal/domain"
	reservationRepo "github.com/m04kA/SMC-ReservationsService/internal/infra/storage/reservation"
)

// UseCase use case для обновления резервации.
// Замена полей и пересинхронизация строк услуг идут одной сериализуемой
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

// Execute выполняет use case обновления резервации
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateReservation: id=%d, venue=%d, customer=%d, shift=%d, date=%s",
		req.ID, req.VenueID, req.CustomerID, req.ShiftID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("UpdateReservation: validation failed: %v", err)
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
		TotalAmount:   req.TotalAmount,
	}

	// 2. Замена полей + пересинхронизация строк услуг — одна атомарная
	// единица. Пересинхронизация — это всегда полный delete-then-insert
	// переданного набора, поэтому повторный вызов с теми же данными
	// оставляет ровно те же N строк.
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		if _, err := uc.reservationRepo.Update(txCtx, req.ID, reservation); err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				return ErrReservationNotFound
			}
			return fmt.Errorf("%w: failed to update reservation: %v", ErrInternal, err)
		}

		// Строки услуг трогаем только если набор был передан
		if req.Services != nil {
			if err := uc.serviceLinkRepo.ReplaceAll(txCtx, req.ID, toDomainLines(*req.Services)); err != nil {
				return fmt.Errorf("%w: failed to resync service lines: %v", ErrInternal, err)
			}
		}

		return nil
	})

	if err != nil {
		if errors.Is(err, ErrReservationNotFound) {
			uc.logger.Warn("UpdateReservation: reservation id=%d not found", req.ID)
		} else {
			uc.logger.Error("UpdateReservation: transaction failed for id=%d: %v", req.ID, err)
		}
		return nil, err
	}

	uc.logger.Info("UpdateReservation: successfully updated reservation id=%d", req.ID)

	// 3. Уведомление — после коммита, по перечитанным данным; его ошибки
	// не влияют на результат use case
	uc.enqueueNotification(ctx, req.ID)

	// 4. Возвращаем закоммиченную каноничную строку
	final, err := uc.reservationRepo.GetByID(ctx, req.ID)
	if err != nil {
		uc.logger.Error("UpdateReservation: failed to re-read reservation id=%d: %v", req.ID, err)
		return nil, fmt.Errorf("%w: failed to re-read reservation: %v", ErrInternal, err)
	}

	return fromDomain(final), nil
}

func (uc *UseCase) enqueueNotification(ctx context.Context, reservationID int64) {
	data, err := uc.reservationRepo.GetNotificationData(ctx, reservationID)
	if err != nil {
		uc.logger.Error("UpdateReservation: failed to fetch notification data for id=%d: %v",
			reservationID, err)
		return
	}

	uc.dispatcher.DispatchUpdated(*data)
}
