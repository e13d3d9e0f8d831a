package update_reservation

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationsService/internal/domain"
	reservationRepo "github.com/m04kA/SMC-ReservationsService/internal/infra/storage/reservation"
)

type fakeReservationRepo struct {
	updateFn       func(ctx context.Context, id int64, res *domain.Reservation) (*domain.Reservation, error)
	getByIDFn      func(ctx context.Context, id int64) (*domain.Reservation, error)
	notificationFn func(ctx context.Context, id int64) (*domain.NotificationData, error)
	updateCalls    int
	updatedWith    *domain.Reservation
}

func (f *fakeReservationRepo) Update(ctx context.Context, id int64, res *domain.Reservation) (*domain.Reservation, error) {
	f.updateCalls++
	f.updatedWith = res
	return f.updateFn(ctx, id, res)
}

func (f *fakeReservationRepo) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	return f.getByIDFn(ctx, id)
}

func (f *fakeReservationRepo) GetNotificationData(ctx context.Context, id int64) (*domain.NotificationData, error) {
	return f.notificationFn(ctx, id)
}

type fakeServiceLinkRepo struct {
	replaceFn    func(ctx context.Context, reservationID int64, lines []domain.ServiceLine) error
	replaceCalls int
	lastID       int64
	lastLines    []domain.ServiceLine
}

func (f *fakeServiceLinkRepo) ReplaceAll(ctx context.Context, reservationID int64, lines []domain.ServiceLine) error {
	f.replaceCalls++
	f.lastID = reservationID
	f.lastLines = lines
	if f.replaceFn != nil {
		return f.replaceFn(ctx, reservationID, lines)
	}
	return nil
}

type fakeDispatcher struct {
	calls []domain.NotificationData
}

func (f *fakeDispatcher) DispatchUpdated(data domain.NotificationData) {
	f.calls = append(f.calls, data)
}

type fakeTxManager struct {
	calls      int
	rolledBack bool
}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	if err := fn(ctx); err != nil {
		f.rolledBack = true
		return err
	}
	return nil
}

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

func storedReservation(id int64) *domain.Reservation {
	return &domain.Reservation{
		ID:          id,
		Date:        time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC),
		VenueID:     2,
		CustomerID:  3,
		ShiftID:     1,
		VenueFee:    50000,
		TotalAmount: 80000,
		Active:      true,
		CreatedAt:   time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC),
		UpdatedAt:   time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC),
	}
}

func validRequest() *Request {
	services := []ServiceLineInput{
		{ServiceID: 4, Amount: 15000},
		{ServiceID: 9, Amount: 15000},
	}
	return &Request{
		ID:          42,
		Date:        time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC),
		VenueID:     2,
		CustomerID:  3,
		ShiftID:     1,
		VenueFee:    50000,
		TotalAmount: 80000,
		Services:    &services,
	}
}

func happyRepo(stored *domain.Reservation) *fakeReservationRepo {
	return &fakeReservationRepo{
		updateFn: func(ctx context.Context, id int64, res *domain.Reservation) (*domain.Reservation, error) {
			return stored, nil
		},
		getByIDFn: func(ctx context.Context, id int64) (*domain.Reservation, error) {
			return stored, nil
		},
		notificationFn: func(ctx context.Context, id int64) (*domain.NotificationData, error) {
			return &domain.NotificationData{
				ReservationID:  id,
				Date:           "2025-12-31",
				VenueName:      "Salón Estrella",
				ShiftLabel:     "14:00 - 18:00",
				RecipientEmail: "cliente@example.com",
			}, nil
		},
	}
}

func TestExecute_Success(t *testing.T) {
	stored := storedReservation(42)
	repo := happyRepo(stored)
	linkRepo := &fakeServiceLinkRepo{}
	dispatcher := &fakeDispatcher{}
	txMgr := &fakeTxManager{}

	uc := NewUseCase(repo, linkRepo, dispatcher, txMgr, noopLogger{})

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, float64(80000), resp.TotalAmount)

	// Строки услуг пересинхронизированы переданным набором
	assert.Equal(t, 1, linkRepo.replaceCalls)
	assert.Equal(t, int64(42), linkRepo.lastID)
	assert.Len(t, linkRepo.lastLines, 2)

	require.Len(t, dispatcher.calls, 1)
	assert.Equal(t, "cliente@example.com", dispatcher.calls[0].RecipientEmail)
	assert.Equal(t, 1, txMgr.calls)
}

func TestExecute_NilServicesSkipsResync(t *testing.T) {
	stored := storedReservation(42)
	linkRepo := &fakeServiceLinkRepo{}

	uc := NewUseCase(happyRepo(stored), linkRepo, &fakeDispatcher{}, &fakeTxManager{}, noopLogger{})

	req := validRequest()
	req.Services = nil
	_, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	// Поле не передано — существующие строки услуг не трогаем
	assert.Equal(t, 0, linkRepo.replaceCalls)
}

func TestExecute_EmptyServicesClearsLines(t *testing.T) {
	stored := storedReservation(42)
	linkRepo := &fakeServiceLinkRepo{}

	uc := NewUseCase(happyRepo(stored), linkRepo, &fakeDispatcher{}, &fakeTxManager{}, noopLogger{})

	req := validRequest()
	empty := []ServiceLineInput{}
	req.Services = &empty
	_, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	// Пустой набор — валидная замена: все строки удаляются
	assert.Equal(t, 1, linkRepo.replaceCalls)
	assert.Empty(t, linkRepo.lastLines)
}

func TestExecute_TotalAmountIsPinned(t *testing.T) {
	stored := storedReservation(42)
	repo := happyRepo(stored)

	uc := NewUseCase(repo, &fakeServiceLinkRepo{}, &fakeDispatcher{}, &fakeTxManager{}, noopLogger{})

	req := validRequest()
	req.TotalAmount = 123.45
	_, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	// Сумма клиента пишется как есть, без пересчета по строкам
	assert.Equal(t, 123.45, repo.updatedWith.TotalAmount)
}

func TestExecute_ReservationNotFound(t *testing.T) {
	repo := &fakeReservationRepo{
		updateFn: func(ctx context.Context, id int64, res *domain.Reservation) (*domain.Reservation, error) {
			return nil, reservationRepo.ErrReservationNotFound
		},
	}
	linkRepo := &fakeServiceLinkRepo{}
	dispatcher := &fakeDispatcher{}

	uc := NewUseCase(repo, linkRepo, dispatcher, &fakeTxManager{}, noopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())
	require.ErrorIs(t, err, ErrReservationNotFound)

	// Неактивная или отсутствующая резервация: услуги не трогаем, письма нет
	assert.Equal(t, 0, linkRepo.replaceCalls)
	assert.Empty(t, dispatcher.calls)
}

func TestExecute_ResyncFailureRollsBack(t *testing.T) {
	stored := storedReservation(42)
	repo := happyRepo(stored)
	linkRepo := &fakeServiceLinkRepo{
		replaceFn: func(ctx context.Context, reservationID int64, lines []domain.ServiceLine) error {
			return errors.New("deadlock detected")
		},
	}
	dispatcher := &fakeDispatcher{}
	txMgr := &fakeTxManager{}

	uc := NewUseCase(repo, linkRepo, dispatcher, txMgr, noopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())
	require.ErrorIs(t, err, ErrInternal)

	assert.True(t, txMgr.rolledBack)
	assert.Empty(t, dispatcher.calls)
}

func TestExecute_ValidationFailures(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(req *Request)
	}{
		{"non-positive id", func(req *Request) { req.ID = 0 }},
		{"zero date", func(req *Request) { req.Date = time.Time{} }},
		{"non-positive venue", func(req *Request) { req.VenueID = -2 }},
		{"negative total", func(req *Request) { req.TotalAmount = -1 }},
		{"duplicate service", func(req *Request) {
			services := []ServiceLineInput{{ServiceID: 4, Amount: 1}, {ServiceID: 4, Amount: 2}}
			req.Services = &services
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			txMgr := &fakeTxManager{}
			uc := NewUseCase(&fakeReservationRepo{}, &fakeServiceLinkRepo{}, &fakeDispatcher{}, txMgr, noopLogger{})

			req := validRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)
			require.ErrorIs(t, err, ErrInvalidInput)
			assert.Equal(t, 0, txMgr.calls)
		})
	}
}

func TestExecute_NotificationFailureDoesNotAffectResult(t *testing.T) {
	stored := storedReservation(42)
	repo := happyRepo(stored)
	repo.notificationFn = func(ctx context.Context, id int64) (*domain.NotificationData, error) {
		return nil, errors.New("join failed")
	}
	dispatcher := &fakeDispatcher{}

	uc := NewUseCase(repo, &fakeServiceLinkRepo{}, dispatcher, &fakeTxManager{}, noopLogger{})

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, int64(42), resp.ID)
	assert.Empty(t, dispatcher.calls)
}
