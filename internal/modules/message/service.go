package message

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"autoloc/internal/domain"
)

type BookingReader interface {
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
}

type MessageRepository interface {
	Create(ctx context.Context, msg *domain.Message) error
	GetByID(ctx context.Context, id string) (*domain.Message, error)
	ListByBooking(ctx context.Context, bookingID string) ([]domain.Message, error)
	MarkReadForReader(ctx context.Context, bookingID, readerID string) error
}

type Service struct {
	messages MessageRepository
	bookings BookingReader
}

func NewService(messages MessageRepository, bookings BookingReader) *Service {
	return &Service{messages: messages, bookings: bookings}
}

// List returns the thread and, as a side effect of reading it, marks
// every message not authored by the reader as read. The read receipt
// is coupled to the read itself; there is no separate endpoint.
func (s *Service) List(ctx context.Context, bookingID, readerID string) ([]domain.Message, error) {
	if err := s.authorize(ctx, bookingID, readerID); err != nil {
		return nil, err
	}

	msgs, err := s.messages.ListByBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if err := s.messages.MarkReadForReader(ctx, bookingID, readerID); err != nil {
		return nil, err
	}
	return msgs, nil
}

// Send appends to the thread. Sending never changes booking status.
func (s *Service) Send(ctx context.Context, bookingID, senderID string, req SendMessageRequest) (*domain.Message, error) {
	if err := s.authorize(ctx, bookingID, senderID); err != nil {
		return nil, err
	}

	msg := &domain.Message{
		BookingID: bookingID,
		SenderID:  senderID,
		Content:   req.Content,
	}
	if err := s.messages.Create(ctx, msg); err != nil {
		return nil, err
	}

	// Re-read with the sender name joined
	return s.messages.GetByID(ctx, msg.ID)
}

func (s *Service) authorize(ctx context.Context, bookingID, userID string) error {
	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if b.CustomerID != userID && b.OwnerID != userID {
		return ErrForbidden
	}
	return nil
}
