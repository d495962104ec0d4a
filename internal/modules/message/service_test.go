package message

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"autoloc/internal/domain"
)

type MockMessageRepository struct {
	mock.Mock
}

func (m *MockMessageRepository) Create(ctx context.Context, msg *domain.Message) error {
	args := m.Called(ctx, msg)
	if msg != nil && msg.ID == "" {
		msg.ID = "msg-1"
	}
	return args.Error(0)
}

func (m *MockMessageRepository) GetByID(ctx context.Context, id string) (*domain.Message, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Message), args.Error(1)
}

func (m *MockMessageRepository) ListByBooking(ctx context.Context, bookingID string) ([]domain.Message, error) {
	args := m.Called(ctx, bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Message), args.Error(1)
}

func (m *MockMessageRepository) MarkReadForReader(ctx context.Context, bookingID, readerID string) error {
	args := m.Called(ctx, bookingID, readerID)
	return args.Error(0)
}

type MockBookingReader struct {
	mock.Mock
}

func (m *MockBookingReader) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func partyBooking() *domain.Booking {
	return &domain.Booking{
		ID:         "booking-1",
		CustomerID: "cust-1",
		OwnerID:    "owner-1",
		Status:     domain.BookingConfirmed,
	}
}

func TestService_List_MarksRead(t *testing.T) {
	mockMessages := new(MockMessageRepository)
	mockBookings := new(MockBookingReader)

	mockBookings.On("GetByID", mock.Anything, "booking-1").Return(partyBooking(), nil)
	mockMessages.On("ListByBooking", mock.Anything, "booking-1").Return([]domain.Message{
		{ID: "msg-1", SenderID: "cust-1", Content: "Bonjour"},
	}, nil)
	mockMessages.On("MarkReadForReader", mock.Anything, "booking-1", "owner-1").Return(nil)

	service := NewService(mockMessages, mockBookings)

	msgs, err := service.List(context.Background(), "booking-1", "owner-1")

	assert.NoError(t, err)
	assert.Len(t, msgs, 1)
	mockMessages.AssertCalled(t, "MarkReadForReader", mock.Anything, "booking-1", "owner-1")
}

func TestService_List_Stranger(t *testing.T) {
	mockMessages := new(MockMessageRepository)
	mockBookings := new(MockBookingReader)

	mockBookings.On("GetByID", mock.Anything, "booking-1").Return(partyBooking(), nil)

	service := NewService(mockMessages, mockBookings)

	_, err := service.List(context.Background(), "booking-1", "stranger")

	assert.ErrorIs(t, err, ErrForbidden)
	mockMessages.AssertNotCalled(t, "ListByBooking", mock.Anything, mock.Anything)
}

func TestService_List_BookingNotFound(t *testing.T) {
	mockMessages := new(MockMessageRepository)
	mockBookings := new(MockBookingReader)

	mockBookings.On("GetByID", mock.Anything, "missing").Return(nil, gorm.ErrRecordNotFound)

	service := NewService(mockMessages, mockBookings)

	_, err := service.List(context.Background(), "missing", "cust-1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_Send_Success(t *testing.T) {
	mockMessages := new(MockMessageRepository)
	mockBookings := new(MockBookingReader)

	mockBookings.On("GetByID", mock.Anything, "booking-1").Return(partyBooking(), nil)
	mockMessages.On("Create", mock.Anything, mock.Anything).Return(nil)
	mockMessages.On("GetByID", mock.Anything, "msg-1").Return(&domain.Message{
		ID:         "msg-1",
		BookingID:  "booking-1",
		SenderID:   "cust-1",
		Content:    "Bonjour",
		SenderName: "Pierre Martin",
	}, nil)

	service := NewService(mockMessages, mockBookings)

	msg, err := service.Send(context.Background(), "booking-1", "cust-1", SendMessageRequest{Content: "Bonjour"})

	assert.NoError(t, err)
	assert.Equal(t, "Pierre Martin", msg.SenderName)
	assert.False(t, msg.IsRead)
}

func TestService_Send_Stranger(t *testing.T) {
	mockMessages := new(MockMessageRepository)
	mockBookings := new(MockBookingReader)

	mockBookings.On("GetByID", mock.Anything, "booking-1").Return(partyBooking(), nil)

	service := NewService(mockMessages, mockBookings)

	_, err := service.Send(context.Background(), "booking-1", "stranger", SendMessageRequest{Content: "Bonjour"})

	assert.ErrorIs(t, err, ErrForbidden)
	mockMessages.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}
