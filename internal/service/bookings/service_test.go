package bookings

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/m04kA/SPAuto-BookingService/internal/domain"
	"github.com/m04kA/SPAuto-BookingService/internal/infra/kvstore"
	bookingRepo "github.com/m04kA/SPAuto-BookingService/internal/infra/storage/booking"
	"github.com/m04kA/SPAuto-BookingService/internal/service/bookings/models"
	"github.com/m04kA/SPAuto-BookingService/internal/service/slots"
	getAvailableSlots "github.com/m04kA/SPAuto-BookingService/internal/usecase/get_available_slots"
	"github.com/m04kA/SPAuto-BookingService/pkg/logger"
	"github.com/m04kA/SPAuto-BookingService/pkg/types"
)

type fixedTime struct{ now time.Time }

func (f *fixedTime) Now() time.Time { return f.now }

type recordingMetrics struct {
	created   int
	conflicts int
	statuses  []string
}

func (m *recordingMetrics) IncBookingCreated() { m.created++ }

func (m *recordingMetrics) IncBookingConflict() { m.conflicts++ }

func (m *recordingMetrics) IncBookingStatusChange(s string) { m.statuses = append(m.statuses, s) }

type stubCatalog []domain.Service

func (c stubCatalog) ListServices() []domain.Service { return c }

type failingSetStore struct {
	*kvstore.MemoryStore
	fail bool
}

func (s *failingSetStore) Set(ctx context.Context, key string, value []byte) error {
	if s.fail {
		return errors.New("connection reset")
	}
	return s.MemoryStore.Set(ctx, key, value)
}

type fixture struct {
	svc     *Service
	repo    *bookingRepo.Repository
	store   *failingSetStore
	clock   *fixedTime
	metrics *recordingMetrics
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := &failingSetStore{MemoryStore: kvstore.NewMemoryStore()}
	repo := bookingRepo.NewRepository(store)
	_, err := repo.Load(context.Background())
	require.NoError(t, err)

	repo.InsertSlots([]domain.BookingSlot{
		domain.NewBookingSlot("2025-06-02", "09:00", "10:00", "1"),
		domain.NewBookingSlot("2025-06-02", "10:00", "11:00", "1"),
		domain.NewBookingSlot("2025-06-02", "11:00", "12:00", "1"),
		domain.NewBookingSlot("2025-06-03", "09:00", "10:00", "2"),
	})

	clock := &fixedTime{now: time.Date(2025, 6, 2, 8, 0, 0, 0, time.UTC)}
	m := &recordingMetrics{}
	seq := 0
	svc := NewService(repo, stubCatalog{
		{ID: "1", Name: "Oil Change", Duration: 30},
		{ID: "2", Name: "Brake Service", Duration: 90},
	}, m, logger.NewNop()).
		WithTimeProvider(clock).
		WithIDGenerator(func() string {
			seq++
			return fmt.Sprintf("b%d", seq)
		})

	return &fixture{svc: svc, repo: repo, store: store, clock: clock, metrics: m}
}

func bookingData(date, start, serviceID, name string) domain.BookingData {
	return domain.BookingData{
		SlotID:    domain.SlotID{Date: date, TimeStart: types.TimeString(start), ServiceID: serviceID},
		ServiceID: serviceID,
		Customer:  domain.Customer{Name: name, Email: "john@example.com", Phone: "(555) 123-4567"},
		Vehicle:   domain.Vehicle{Make: "Toyota", Model: "Camry", Year: "2018"},
	}
}

func dataFor(start string) domain.BookingData {
	return bookingData("2025-06-02", start, "1", "John Doe")
}

// shopCatalog каталог с недельным расписанием: Пн–Сб 08:00–18:00 (Пт до 17:00), воскресенье выходной
type shopCatalog struct{ stubCatalog }

func (c shopCatalog) GetHours() domain.ShopHours {
	hours := make(domain.ShopHours, 0, len(domain.Weekdays))
	for _, day := range domain.Weekdays {
		h := domain.DayHours{Day: day, Open: "08:00", Close: "18:00", IsOpen: true}
		switch day {
		case time.Friday.String():
			h.Close = "17:00"
		case time.Sunday.String():
			h.IsOpen = false
		}
		hours = append(hours, h)
	}
	return hours
}

func TestService_MondayScenario(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemoryStore()
	repo := bookingRepo.NewRepository(store)
	_, err := repo.Load(ctx)
	require.NoError(t, err)

	catalog := shopCatalog{stubCatalog{{ID: "1", Name: "Oil Change", Duration: 30}}}
	monday := time.Date(2025, 6, 2, 8, 0, 0, 0, time.UTC)
	require.NoError(t, catalog.GetHours().Validate())
	require.True(t, catalog.GetHours().IsOpenOn(monday))
	require.False(t, catalog.GetHours().IsOpenOn(monday.AddDate(0, 0, 6)))

	generator := slots.NewService(repo, catalog, nopSlotMetrics{}, slots.BootstrapOptions{}, logger.NewNop())
	ledger := NewService(repo, catalog, &recordingMetrics{}, logger.NewNop()).
		WithTimeProvider(&fixedTime{now: monday})
	query := getAvailableSlots.NewUseCase(repo, logger.NewNop())

	available := func() []domain.BookingSlot {
		resp, err := query.Execute(ctx, &getAvailableSlots.Request{ServiceID: "1", Date: "2025-06-02"})
		require.NoError(t, err)
		return resp.Slots
	}

	created, err := generator.Generate(ctx, slots.GenerateRequest{
		Date: "2025-06-02", StartTime: "09:00", EndTime: "12:00", Interval: 60, ServiceID: "1",
	})
	require.NoError(t, err)
	require.Len(t, created, 3)
	for i, want := range [][2]string{{"09:00", "10:00"}, {"10:00", "11:00"}, {"11:00", "12:00"}} {
		assert.EqualValues(t, want[0], created[i].TimeStart)
		assert.EqualValues(t, want[1], created[i].TimeEnd)
		assert.True(t, created[i].IsAvailable)
	}
	assert.Len(t, available(), 3)

	id, err := ledger.CreateBooking(ctx, dataFor("10:00"))
	require.NoError(t, err)

	after := available()
	require.Len(t, after, 2)
	for _, s := range after {
		assert.NotEqual(t, "10:00", s.TimeStart.String())
	}

	_, err = ledger.CreateBooking(ctx, dataFor("10:00"))
	assert.ErrorIs(t, err, ErrSlotUnavailable)

	require.NoError(t, ledger.CancelBooking(ctx, id))
	assert.Len(t, available(), 3)

	details, err := ledger.GetBookingDetails(id)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCancelled), details.Booking.Status)
	require.NotNil(t, details.Slot)
	assert.True(t, details.Slot.IsAvailable)
	require.NotNil(t, details.Service)
	assert.Equal(t, "Oil Change", details.Service.Name)

	// журнал пережил перезапуск: новый репозиторий читает то же хранилище
	reloaded := bookingRepo.NewRepository(store)
	found, err := reloaded.Load(ctx)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Len(t, reloaded.AvailableSlots("2025-06-02", "1"), 3)
}

type nopSlotMetrics struct{}

func (nopSlotMetrics) AddSlotsGenerated(int) {}

func TestService_DoubleBookingCountsConflict(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	id, err := f.svc.CreateBooking(ctx, dataFor("10:00"))
	require.NoError(t, err)
	assert.Equal(t, "b1", id)

	_, err = f.svc.CreateBooking(ctx, dataFor("10:00"))
	assert.ErrorIs(t, err, ErrSlotUnavailable)
	assert.Equal(t, 1, f.metrics.conflicts)

	require.NoError(t, f.svc.CancelBooking(ctx, id))
	assert.Equal(t, 1, f.metrics.created)
	assert.Equal(t, []string{"cancelled"}, f.metrics.statuses)
}

func TestService_CreateBooking(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	notes := "Check engine light is on"
	data := dataFor("09:00")
	data.AdditionalNotes = &notes

	id, err := f.svc.CreateBooking(ctx, data)
	require.NoError(t, err)

	b, err := f.repo.GetByID(id)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, b.Status)
	assert.Equal(t, f.clock.now, b.CreatedAt)
	assert.Equal(t, "Camry", b.VehicleModel)
	require.NotNil(t, b.AdditionalNotes)
	assert.Equal(t, notes, *b.AdditionalNotes)

	// бронирование сохранено в хранилище
	var stored []domain.Booking
	require.NoError(t, kvstore.GetJSON(ctx, f.store, bookingRepo.KeyBookings, &stored))
	assert.Len(t, stored, 1)

	missing := dataFor("13:00")
	_, err = f.svc.CreateBooking(ctx, missing)
	assert.ErrorIs(t, err, ErrSlotUnavailable)
}

func TestService_CreateBooking_SaveFailure(t *testing.T) {
	f := newFixture(t)
	f.store.fail = true

	_, err := f.svc.CreateBooking(context.Background(), dataFor("09:00"))
	assert.ErrorIs(t, err, ErrInternal)
	assert.Equal(t, 0, f.metrics.created)
}

func TestService_UpdateBookingStatus(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	id, err := f.svc.CreateBooking(ctx, dataFor("09:00"))
	require.NoError(t, err)

	require.NoError(t, f.svc.UpdateBookingStatus(ctx, id, domain.StatusConfirmed))
	require.NoError(t, f.svc.UpdateBookingStatus(ctx, id, domain.StatusCompleted))

	err = f.svc.UpdateBookingStatus(ctx, id, domain.StatusCancelled)
	var te *domain.TransitionError
	require.True(t, errors.As(err, &te))
	assert.Equal(t, domain.StatusCompleted, te.From)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	// завершённое бронирование продолжает занимать слот
	s, _ := f.repo.GetSlot(dataFor("09:00").SlotID)
	assert.False(t, s.IsAvailable)

	assert.ErrorIs(t, f.svc.UpdateBookingStatus(ctx, "nope", domain.StatusConfirmed), ErrBookingNotFound)
	assert.ErrorIs(t, f.svc.CancelBooking(ctx, "nope"), ErrBookingNotFound)
	assert.ErrorIs(t, f.svc.UpdateBookingStatus(ctx, id, "in_progress"), ErrInvalidInput)
}

func TestService_CancelTwiceIsTransitionError(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	id, err := f.svc.CreateBooking(ctx, dataFor("09:00"))
	require.NoError(t, err)
	require.NoError(t, f.svc.CancelBooking(ctx, id))

	// слот снова занят другим клиентом
	_, err = f.svc.CreateBooking(ctx, dataFor("09:00"))
	require.NoError(t, err)

	// повторная отмена не должна освободить чужой слот
	assert.ErrorIs(t, f.svc.CancelBooking(ctx, id), domain.ErrInvalidTransition)
	s, _ := f.repo.GetSlot(dataFor("09:00").SlotID)
	assert.False(t, s.IsAvailable)
}

func TestService_GetBookingBySlotID(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	slot := dataFor("11:00").SlotID

	_, err := f.svc.GetBookingBySlotID(slot)
	assert.ErrorIs(t, err, ErrBookingNotFound)

	id, err := f.svc.CreateBooking(ctx, dataFor("11:00"))
	require.NoError(t, err)

	got, err := f.svc.GetBookingBySlotID(slot)
	require.NoError(t, err)
	assert.Equal(t, id, got.ID)
	assert.Equal(t, "2025-06-02-11:00-1", got.SlotID)

	_, err = f.svc.GetBookingDetails("nope")
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func seedList(t *testing.T, f *fixture) {
	t.Helper()
	ctx := context.Background()

	first := dataFor("09:00")
	_, err := f.svc.CreateBooking(ctx, first)
	require.NoError(t, err)

	f.clock.now = f.clock.now.Add(time.Hour)
	second := dataFor("10:00")
	second.Customer.Name = "Jane Smith"
	second.Vehicle = domain.Vehicle{Make: "Honda", Model: "Civic", Year: "2020"}
	_, err = f.svc.CreateBooking(ctx, second)
	require.NoError(t, err)

	f.clock.now = f.clock.now.Add(time.Hour)
	third := bookingData("2025-06-03", "09:00", "2", "Bob Stone")
	_, err = f.svc.CreateBooking(ctx, third)
	require.NoError(t, err)
	require.NoError(t, f.svc.UpdateBookingStatus(ctx, "b3", domain.StatusConfirmed))
}

func TestService_ListBookings(t *testing.T) {
	f := newFixture(t)
	seedList(t, f)

	all, err := f.svc.ListBookings(&models.ListBookingsRequest{})
	require.NoError(t, err)
	require.Equal(t, 3, all.Total)
	assert.Equal(t, []string{"b3", "b2", "b1"}, []string{all.Bookings[0].ID, all.Bookings[1].ID, all.Bookings[2].ID})

	honda, err := f.svc.ListBookings(&models.ListBookingsRequest{Search: "civic"})
	require.NoError(t, err)
	require.Len(t, honda.Bookings, 1)
	assert.Equal(t, "Jane Smith", honda.Bookings[0].CustomerName)

	confirmed := "confirmed"
	byStatus, err := f.svc.ListBookings(&models.ListBookingsRequest{Status: &confirmed})
	require.NoError(t, err)
	require.Len(t, byStatus.Bookings, 1)
	assert.Equal(t, "b3", byStatus.Bookings[0].ID)

	allStatus := "all"
	everything, err := f.svc.ListBookings(&models.ListBookingsRequest{Status: &allStatus})
	require.NoError(t, err)
	assert.Equal(t, 3, everything.Total)

	bogus := "lost"
	_, err = f.svc.ListBookings(&models.ListBookingsRequest{Status: &bogus})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_Dashboard(t *testing.T) {
	f := newFixture(t)
	seedList(t, f)

	d := f.svc.Dashboard()
	assert.Equal(t, "2025-06-02", d.Date)
	assert.Equal(t, 3, d.TotalBookings)
	assert.Equal(t, 2, d.PendingBookings)
	assert.Equal(t, 1, d.ConfirmedBookings)
	assert.Equal(t, map[string]int{"1": 2, "2": 1}, d.BookingsByService)
	require.Len(t, d.TodayBookings, 2)
	assert.Equal(t, "09:00", d.TodayBookings[0].TimeStart)
	assert.Equal(t, "10:00", d.TodayBookings[1].TimeStart)
}

func TestService_ExportBookings(t *testing.T) {
	f := newFixture(t)
	seedList(t, f)

	data, err := f.svc.ExportBookings(&models.ListBookingsRequest{Search: "toyota"})
	require.NoError(t, err)

	wb, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer wb.Close()

	rows, err := wb.GetRows(exportSheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Booking ID", rows[0][0])
	assert.Equal(t, "b3", rows[1][0])
	assert.Equal(t, "Brake Service", rows[1][3])
	assert.Equal(t, "9:00 AM", rows[2][2])
	assert.Equal(t, "Toyota Camry", rows[2][7])
}
