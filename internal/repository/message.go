package repository

import (
	"context"

	"skillswap/internal/models"

	"gorm.io/gorm"
)

// MessageRepository defines the interface for the append-only message log
type MessageRepository interface {
	Append(ctx context.Context, message *models.Message) error
	History(ctx context.Context, userID1, userID2 uint) ([]models.Message, error)
	CountFromSender(ctx context.Context, senderID, receiverID uint) (int64, error)
}

// messageRepository implements MessageRepository
type messageRepository struct {
	db *gorm.DB
}

// NewMessageRepository creates a new message repository
func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &messageRepository{db: db}
}

func (r *messageRepository) Append(ctx context.Context, message *models.Message) error {
	if err := r.db.WithContext(ctx).Create(message).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// History returns the full ordered log for the unordered pair, chronological
// ascending with IDs breaking timestamp ties. Cheap enough for the polling
// consumption pattern.
func (r *messageRepository) History(ctx context.Context, userID1, userID2 uint) ([]models.Message, error) {
	var messages []models.Message
	if err := readDB(r.db).WithContext(ctx).
		Where("(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)",
			userID1, userID2, userID2, userID1).
		Preload("Sender").
		Order("created_at ASC, id ASC").
		Find(&messages).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return messages, nil
}

// CountFromSender counts prior messages sent by senderID to receiverID. The
// pending-connection allowance is per sender, not per pair, so direction
// matters here.
func (r *messageRepository) CountFromSender(ctx context.Context, senderID, receiverID uint) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Message{}).
		Where("sender_id = ? AND receiver_id = ?", senderID, receiverID).
		Count(&count).Error; err != nil {
		return 0, models.NewInternalError(err)
	}
	return count, nil
}
