package repository

import (
	"context"
	"errors"

	"skillswap/internal/models"

	"gorm.io/gorm"
)

// FriendRepository defines the interface for friendship edge operations
type FriendRepository interface {
	CreateIfAbsent(ctx context.Context, friendship *models.Friendship) error
	GetByID(ctx context.Context, id uint) (*models.Friendship, error)
	GetBetweenUsers(ctx context.Context, userID1, userID2 uint) (*models.Friendship, error)
	GetFriends(ctx context.Context, userID uint) ([]models.User, error)
	GetPendingInvolving(ctx context.Context, userID uint) ([]models.Friendship, error)
	ConnectedUserIDs(ctx context.Context, userID uint) ([]uint, error)
	UpdateStatus(ctx context.Context, friendshipID uint, status models.FriendshipStatus) error
	RemoveBetweenUsers(ctx context.Context, userID1, userID2 uint) (bool, error)
}

// friendRepository implements FriendRepository
type friendRepository struct {
	db *gorm.DB
}

// NewFriendRepository creates a new friend repository
func NewFriendRepository(db *gorm.DB) FriendRepository {
	return &friendRepository{db: db}
}

// ErrEdgeExists signals that an edge for the pair appeared between the
// absence check and the insert. The unique index on the normalized pair
// backs the check, so two concurrent requests cannot both insert.
var ErrEdgeExists = errors.New("friendship edge already exists")

func (r *friendRepository) CreateIfAbsent(ctx context.Context, friendship *models.Friendship) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Friendship{}).
			Where("(requester_id = ? AND addressee_id = ?) OR (requester_id = ? AND addressee_id = ?)",
				friendship.RequesterID, friendship.AddresseeID,
				friendship.AddresseeID, friendship.RequesterID).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrEdgeExists
		}
		return tx.Create(friendship).Error
	})
	if err != nil {
		if errors.Is(err, ErrEdgeExists) || errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrEdgeExists
		}
		return models.NewInternalError(err)
	}
	return nil
}

func (r *friendRepository) GetByID(ctx context.Context, id uint) (*models.Friendship, error) {
	var friendship models.Friendship
	if err := r.db.WithContext(ctx).Preload("Requester").Preload("Addressee").First(&friendship, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Friendship", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &friendship, nil
}

func (r *friendRepository) GetBetweenUsers(ctx context.Context, userID1, userID2 uint) (*models.Friendship, error) {
	var friendship models.Friendship

	// Find the edge regardless of which user is the requester.
	if err := r.db.WithContext(ctx).
		Where("(requester_id = ? AND addressee_id = ?) OR (requester_id = ? AND addressee_id = ?)",
			userID1, userID2, userID2, userID1).
		Preload("Requester").
		Preload("Addressee").
		First(&friendship).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil // No edge exists
		}
		return nil, models.NewInternalError(err)
	}
	return &friendship, nil
}

func (r *friendRepository) GetFriends(ctx context.Context, userID uint) ([]models.User, error) {
	var users []models.User

	// Accepted edges touching the user, resolved to the counterpart.
	if err := readDB(r.db).WithContext(ctx).
		Table("users").
		Joins("JOIN friendships f ON (users.id = f.requester_id OR users.id = f.addressee_id)").
		Where("f.status = ? AND (f.requester_id = ? OR f.addressee_id = ?) AND users.id != ?",
			models.FriendshipStatusAccepted, userID, userID, userID).
		Order("users.id ASC").
		Find(&users).Error; err != nil {
		return nil, models.NewInternalError(err)
	}

	return users, nil
}

func (r *friendRepository) GetPendingInvolving(ctx context.Context, userID uint) ([]models.Friendship, error) {
	var friendships []models.Friendship

	// Pending edges in either direction; the service annotates the caller's role.
	if err := readDB(r.db).WithContext(ctx).
		Where("(requester_id = ? OR addressee_id = ?) AND status = ?",
			userID, userID, models.FriendshipStatusPending).
		Preload("Requester").
		Preload("Addressee").
		Order("created_at ASC").
		Find(&friendships).Error; err != nil {
		return nil, models.NewInternalError(err)
	}

	return friendships, nil
}

// ConnectedUserIDs returns every user sharing an edge of any status with
// userID, in either direction. Used to exclude candidates from matching.
func (r *friendRepository) ConnectedUserIDs(ctx context.Context, userID uint) ([]uint, error) {
	var edges []models.Friendship
	if err := readDB(r.db).WithContext(ctx).
		Select("requester_id, addressee_id").
		Where("requester_id = ? OR addressee_id = ?", userID, userID).
		Find(&edges).Error; err != nil {
		return nil, models.NewInternalError(err)
	}

	ids := make([]uint, 0, len(edges))
	for _, e := range edges {
		ids = append(ids, e.OtherUserID(userID))
	}
	return ids, nil
}

func (r *friendRepository) UpdateStatus(ctx context.Context, friendshipID uint, status models.FriendshipStatus) error {
	if err := r.db.WithContext(ctx).
		Model(&models.Friendship{}).
		Where("id = ?", friendshipID).
		Update("status", status).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// RemoveBetweenUsers deletes any edge between the pair, of any status.
// Returns false when no edge existed.
func (r *friendRepository) RemoveBetweenUsers(ctx context.Context, userID1, userID2 uint) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("(requester_id = ? AND addressee_id = ?) OR (requester_id = ? AND addressee_id = ?)",
			userID1, userID2, userID2, userID1).
		Delete(&models.Friendship{})
	if res.Error != nil {
		return false, models.NewInternalError(res.Error)
	}
	return res.RowsAffected > 0, nil
}
