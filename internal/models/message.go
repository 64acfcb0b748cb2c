package models

import (
	"time"
)

// Message is one append-only record in a pair's conversation. History is
// ordered by CreatedAt, then ID to break same-timestamp ties.
type Message struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	SenderID   uint      `gorm:"not null;index:idx_messages_pair" json:"sender_id"`
	ReceiverID uint      `gorm:"not null;index:idx_messages_pair" json:"receiver_id"`
	Content    string    `gorm:"type:text" json:"content"`
	Attachment string    `gorm:"type:varchar(255)" json:"attachment,omitempty"`
	CreatedAt  time.Time `json:"created_at"`

	Sender *User `gorm:"foreignKey:SenderID" json:"sender,omitempty"`
}

// TableName specifies the table name for GORM
func (Message) TableName() string {
	return "messages"
}
