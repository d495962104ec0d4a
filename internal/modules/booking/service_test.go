package booking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"autoloc/internal/domain"
	"autoloc/internal/repository"
)

// Mock repositories
type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) CreateWithSlot(ctx context.Context, b *domain.Booking) error {
	args := m.Called(ctx, b)
	if b != nil && b.ID == "" {
		b.ID = "booking-1" // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockBookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) GetByIDWithVehicle(ctx context.Context, id string) (*repository.BookingWithVehicle, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.BookingWithVehicle), args.Error(1)
}

func (m *MockBookingRepository) ListByUser(ctx context.Context, userID string, asOwner bool) ([]repository.BookingWithVehicle, error) {
	args := m.Called(ctx, userID, asOwner)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.BookingWithVehicle), args.Error(1)
}

func (m *MockBookingRepository) UpdateStatus(ctx context.Context, b *domain.Booking, status domain.BookingStatus) error {
	args := m.Called(ctx, b, status)
	return args.Error(0)
}

type MockVehicleReader struct {
	mock.Mock
}

func (m *MockVehicleReader) GetByID(ctx context.Context, id string) (*domain.Vehicle, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Vehicle), args.Error(1)
}

type MockAvailabilityReader struct {
	mock.Mock
}

func (m *MockAvailabilityReader) HasOverlap(ctx context.Context, vehicleID, start, end string) (bool, error) {
	args := m.Called(ctx, vehicleID, start, end)
	return args.Bool(0), args.Error(1)
}

func activeVehicle() *domain.Vehicle {
	return &domain.Vehicle{
		ID:          "veh-1",
		OwnerID:     "owner-1",
		Name:        "Renault Clio V",
		Type:        domain.VehicleCitadine,
		PricePerDay: 4500,
		IsActive:    true,
	}
}

func TestService_Create_Success(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockVehicles := new(MockVehicleReader)
	mockSlots := new(MockAvailabilityReader)

	mockVehicles.On("GetByID", mock.Anything, "veh-1").Return(activeVehicle(), nil)
	mockSlots.On("HasOverlap", mock.Anything, "veh-1", "2024-06-01", "2024-06-03").Return(false, nil)
	mockBookings.On("CreateWithSlot", mock.Anything, mock.Anything).Return(nil)

	service := NewService(mockBookings, mockVehicles, mockSlots)

	req := CreateBookingRequest{
		VehicleID: "veh-1",
		StartDate: "2024-06-01",
		EndDate:   "2024-06-03",
	}

	b, err := service.Create(context.Background(), "cust-1", req)

	assert.NoError(t, err)
	assert.NotNil(t, b)
	assert.Equal(t, int64(9000), b.TotalPrice) // 2 days x 4500
	assert.Equal(t, domain.BookingPending, b.Status)
	assert.Equal(t, "owner-1", b.OwnerID)
	mockBookings.AssertExpectations(t)
}

func TestService_Create_Overlap(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockVehicles := new(MockVehicleReader)
	mockSlots := new(MockAvailabilityReader)

	mockVehicles.On("GetByID", mock.Anything, "veh-1").Return(activeVehicle(), nil)
	mockSlots.On("HasOverlap", mock.Anything, "veh-1", "2024-06-02", "2024-06-04").Return(true, nil)

	service := NewService(mockBookings, mockVehicles, mockSlots)

	_, err := service.Create(context.Background(), "cust-1", CreateBookingRequest{
		VehicleID: "veh-1",
		StartDate: "2024-06-02",
		EndDate:   "2024-06-04",
	})

	assert.ErrorIs(t, err, ErrConflict)
	mockBookings.AssertNotCalled(t, "CreateWithSlot", mock.Anything, mock.Anything)
}

func TestService_Create_LostRace(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockVehicles := new(MockVehicleReader)
	mockSlots := new(MockAvailabilityReader)

	mockVehicles.On("GetByID", mock.Anything, "veh-1").Return(activeVehicle(), nil)
	mockSlots.On("HasOverlap", mock.Anything, "veh-1", "2024-06-01", "2024-06-03").Return(false, nil)
	mockBookings.On("CreateWithSlot", mock.Anything, mock.Anything).Return(repository.ErrSlotConflict)

	service := NewService(mockBookings, mockVehicles, mockSlots)

	_, err := service.Create(context.Background(), "cust-1", CreateBookingRequest{
		VehicleID: "veh-1",
		StartDate: "2024-06-01",
		EndDate:   "2024-06-03",
	})

	assert.ErrorIs(t, err, ErrConflict)
}

func TestService_Create_SelfBooking(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockVehicles := new(MockVehicleReader)
	mockSlots := new(MockAvailabilityReader)

	mockVehicles.On("GetByID", mock.Anything, "veh-1").Return(activeVehicle(), nil)

	service := NewService(mockBookings, mockVehicles, mockSlots)

	_, err := service.Create(context.Background(), "owner-1", CreateBookingRequest{
		VehicleID: "veh-1",
		StartDate: "2024-06-01",
		EndDate:   "2024-06-03",
	})

	assert.ErrorIs(t, err, ErrSelfBooking)
}

func TestService_Create_InactiveVehicle(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockVehicles := new(MockVehicleReader)
	mockSlots := new(MockAvailabilityReader)

	v := activeVehicle()
	v.IsActive = false
	mockVehicles.On("GetByID", mock.Anything, "veh-1").Return(v, nil)

	service := NewService(mockBookings, mockVehicles, mockSlots)

	_, err := service.Create(context.Background(), "cust-1", CreateBookingRequest{
		VehicleID: "veh-1",
		StartDate: "2024-06-01",
		EndDate:   "2024-06-03",
	})

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_Create_VehicleNotFound(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockVehicles := new(MockVehicleReader)
	mockSlots := new(MockAvailabilityReader)

	mockVehicles.On("GetByID", mock.Anything, "missing").Return(nil, gorm.ErrRecordNotFound)

	service := NewService(mockBookings, mockVehicles, mockSlots)

	_, err := service.Create(context.Background(), "cust-1", CreateBookingRequest{
		VehicleID: "missing",
		StartDate: "2024-06-01",
		EndDate:   "2024-06-03",
	})

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_Create_BadDates(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockVehicles := new(MockVehicleReader)
	mockSlots := new(MockAvailabilityReader)

	mockVehicles.On("GetByID", mock.Anything, "veh-1").Return(activeVehicle(), nil)

	service := NewService(mockBookings, mockVehicles, mockSlots)

	cases := []struct {
		name       string
		start, end string
	}{
		{"end before start", "2024-06-03", "2024-06-01"},
		{"same day", "2024-06-01", "2024-06-01"},
		{"malformed start", "01/06/2024", "2024-06-03"},
		{"malformed end", "2024-06-01", "not-a-date"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := service.Create(context.Background(), "cust-1", CreateBookingRequest{
				VehicleID: "veh-1",
				StartDate: tc.start,
				EndDate:   tc.end,
			})
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestService_UpdateStatus_Transitions(t *testing.T) {
	cases := []struct {
		name    string
		from    domain.BookingStatus
		to      string
		asOwner bool
		wantErr error
	}{
		{"owner confirms pending", domain.BookingPending, "confirmed", true, nil},
		{"customer cannot confirm", domain.BookingPending, "confirmed", false, ErrInvalidTransition},
		{"customer cancels pending", domain.BookingPending, "cancelled", false, nil},
		{"owner cancels pending", domain.BookingPending, "cancelled", true, nil},
		{"owner completes confirmed", domain.BookingConfirmed, "completed", true, nil},
		{"customer cannot complete", domain.BookingConfirmed, "completed", false, ErrInvalidTransition},
		{"customer cancels confirmed", domain.BookingConfirmed, "cancelled", false, nil},
		{"pending cannot complete", domain.BookingPending, "completed", true, ErrInvalidTransition},
		{"cancelled is terminal", domain.BookingCancelled, "pending", true, ErrInvalidTransition},
		{"completed is terminal", domain.BookingCompleted, "cancelled", true, ErrInvalidTransition},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			mockBookings := new(MockBookingRepository)
			mockVehicles := new(MockVehicleReader)
			mockSlots := new(MockAvailabilityReader)

			b := &domain.Booking{
				ID:         "booking-1",
				VehicleID:  "veh-1",
				CustomerID: "cust-1",
				OwnerID:    "owner-1",
				StartDate:  "2024-06-01",
				EndDate:    "2024-06-03",
				Status:     tc.from,
			}
			mockBookings.On("GetByID", mock.Anything, "booking-1").Return(b, nil)
			if tc.wantErr == nil {
				mockBookings.On("UpdateStatus", mock.Anything, b, domain.BookingStatus(tc.to)).Return(nil)
			}

			actor := "cust-1"
			if tc.asOwner {
				actor = "owner-1"
			}

			service := NewService(mockBookings, mockVehicles, mockSlots)
			_, err := service.UpdateStatus(context.Background(), "booking-1", actor, tc.to)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
			} else {
				assert.NoError(t, err)
				mockBookings.AssertExpectations(t)
			}
		})
	}
}

func TestService_UpdateStatus_Forbidden(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockVehicles := new(MockVehicleReader)
	mockSlots := new(MockAvailabilityReader)

	b := &domain.Booking{
		ID:         "booking-1",
		CustomerID: "cust-1",
		OwnerID:    "owner-1",
		Status:     domain.BookingPending,
	}
	mockBookings.On("GetByID", mock.Anything, "booking-1").Return(b, nil)

	service := NewService(mockBookings, mockVehicles, mockSlots)

	_, err := service.UpdateStatus(context.Background(), "booking-1", "stranger", "cancelled")
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestService_Get_PartyCheck(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockVehicles := new(MockVehicleReader)
	mockSlots := new(MockAvailabilityReader)

	row := &repository.BookingWithVehicle{
		Booking: domain.Booking{
			ID:         "booking-1",
			CustomerID: "cust-1",
			OwnerID:    "owner-1",
		},
		VehicleName: "Renault Clio V",
	}
	mockBookings.On("GetByIDWithVehicle", mock.Anything, "booking-1").Return(row, nil)

	service := NewService(mockBookings, mockVehicles, mockSlots)

	got, err := service.Get(context.Background(), "booking-1", "cust-1")
	assert.NoError(t, err)
	assert.Equal(t, "Renault Clio V", got.VehicleName)

	_, err = service.Get(context.Background(), "booking-1", "stranger")
	assert.ErrorIs(t, err, ErrForbidden)
}
