package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"autoloc/internal/domain"
)

type MessageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) *MessageRepository {
	return &MessageRepository{db: db}
}

type MessageModel struct {
	ID        string    `gorm:"column:id;primaryKey"`
	BookingID string    `gorm:"column:booking_id;index"`
	SenderID  string    `gorm:"column:sender_id"`
	Content   string    `gorm:"column:content;type:text"`
	IsRead    bool      `gorm:"column:is_read;default:false"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (MessageModel) TableName() string { return "messages" }

type messageJoinRow struct {
	MessageModel
	SenderName string `gorm:"column:sender_name"`
}

func toDomainMessage(m MessageModel, senderName string) domain.Message {
	return domain.Message{
		ID:         m.ID,
		BookingID:  m.BookingID,
		SenderID:   m.SenderID,
		Content:    m.Content,
		IsRead:     m.IsRead,
		CreatedAt:  m.CreatedAt,
		SenderName: senderName,
	}
}

func (r *MessageRepository) Create(ctx context.Context, msg *domain.Message) error {
	if msg.ID == "" {
		msg.ID = uuid.New().String()
	}
	m := MessageModel{
		ID:        msg.ID,
		BookingID: msg.BookingID,
		SenderID:  msg.SenderID,
		Content:   msg.Content,
	}
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*msg = toDomainMessage(m, msg.SenderName)
	return nil
}

func (r *MessageRepository) GetByID(ctx context.Context, id string) (*domain.Message, error) {
	var row messageJoinRow
	tx := r.db.WithContext(ctx).Model(&MessageModel{}).
		Select("messages.*, users.name AS sender_name").
		Joins("JOIN users ON messages.sender_id = users.id").
		Where("messages.id = ?", id).
		First(&row)
	if tx.Error != nil {
		return nil, tx.Error
	}
	msg := toDomainMessage(row.MessageModel, row.SenderName)
	return &msg, nil
}

// ListByBooking returns the thread oldest first, sender names joined.
func (r *MessageRepository) ListByBooking(ctx context.Context, bookingID string) ([]domain.Message, error) {
	var rows []messageJoinRow
	tx := r.db.WithContext(ctx).Model(&MessageModel{}).
		Select("messages.*, users.name AS sender_name").
		Joins("JOIN users ON messages.sender_id = users.id").
		Where("messages.booking_id = ?", bookingID).
		Order("messages.created_at ASC").
		Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Message, 0, len(rows))
	for _, row := range rows {
		out = append(out, toDomainMessage(row.MessageModel, row.SenderName))
	}
	return out, nil
}

// MarkReadForReader flags every message in the thread not authored by
// the reader as read. Coupled to the list operation, not a separate
// endpoint.
func (r *MessageRepository) MarkReadForReader(ctx context.Context, bookingID, readerID string) error {
	return r.db.WithContext(ctx).Model(&MessageModel{}).
		Where("booking_id = ? AND sender_id != ?", bookingID, readerID).
		Update("is_read", true).Error
}
