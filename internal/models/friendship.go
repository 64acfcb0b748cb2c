package models

import (
	"time"

	"gorm.io/gorm"
)

// FriendshipStatus represents the status of a friendship edge.
type FriendshipStatus string

const (
	// FriendshipStatusPending indicates a request awaiting the addressee's decision.
	FriendshipStatusPending FriendshipStatus = "pending"
	// FriendshipStatusAccepted indicates a confirmed connection.
	FriendshipStatusAccepted FriendshipStatus = "accepted"
	// FriendshipStatusRejected indicates the addressee declined the request.
	FriendshipStatusRejected FriendshipStatus = "rejected"
)

// Friendship is the directional request record between two users. At most one
// edge exists per unordered pair: PairLo/PairHi hold the normalized pair and
// carry a unique index, so a reverse-direction insert collides at the store
// level rather than racing into a duplicate.
type Friendship struct {
	ID          uint             `gorm:"primaryKey" json:"id"`
	RequesterID uint             `gorm:"not null;index" json:"requester_id"`
	AddresseeID uint             `gorm:"not null;index" json:"addressee_id"`
	PairLo      uint             `gorm:"not null;uniqueIndex:idx_friendship_pair" json:"-"`
	PairHi      uint             `gorm:"not null;uniqueIndex:idx_friendship_pair" json:"-"`
	Status      FriendshipStatus `gorm:"type:varchar(20);default:'pending';index" json:"status"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`

	// Relationships
	Requester User `gorm:"foreignKey:RequesterID" json:"requester,omitempty"`
	Addressee User `gorm:"foreignKey:AddresseeID" json:"addressee,omitempty"`
}

// TableName specifies the table name for GORM
func (Friendship) TableName() string {
	return "friendships"
}

// BeforeSave normalizes the unordered pair columns from the directional ones.
func (f *Friendship) BeforeSave(_ *gorm.DB) error {
	f.PairLo, f.PairHi = f.RequesterID, f.AddresseeID
	if f.PairLo > f.PairHi {
		f.PairLo, f.PairHi = f.PairHi, f.PairLo
	}
	return nil
}

// OtherUserID returns the counterpart of userID on this edge.
func (f *Friendship) OtherUserID(userID uint) uint {
	if f.RequesterID == userID {
		return f.AddresseeID
	}
	return f.RequesterID
}

// PendingRequest annotates a pending edge with the caller's role, which
// determines whether accept/reject controls apply.
type PendingRequest struct {
	RequestID   uint        `json:"request_id"`
	Counterpart UserSummary `json:"counterpart"`
	Incoming    bool        `json:"incoming"`
	CreatedAt   time.Time   `json:"created_at"`
}
