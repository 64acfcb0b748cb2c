// Package service provides application business logic (matching, friendships, messaging).
package service

import (
	"context"
	"errors"

	"skillswap/internal/cache"
	"skillswap/internal/models"
	"skillswap/internal/observability"
	"skillswap/internal/repository"
)

// Decision is the addressee's response to a pending friend request.
type Decision string

const (
	DecisionAccept Decision = "accept"
	DecisionReject Decision = "reject"
)

// FriendService provides friend-request and friendship business logic.
type FriendService struct {
	friendRepo repository.FriendRepository
	userRepo   repository.UserRepository
}

// NewFriendService returns a new FriendService.
func NewFriendService(friendRepo repository.FriendRepository, userRepo repository.UserRepository) *FriendService {
	return &FriendService{
		friendRepo: friendRepo,
		userRepo:   userRepo,
	}
}

// Request sends a friend request to the target user. Any existing edge
// between the pair, in either direction, blocks the request with a
// status-specific reason.
func (s *FriendService) Request(ctx context.Context, requesterID, targetID uint) (*models.Friendship, error) {
	if requesterID == targetID {
		return nil, models.NewInvalidOperationError("Cannot send a friend request to yourself")
	}

	if _, err := s.userRepo.GetByID(ctx, targetID); err != nil {
		return nil, err
	}

	existing, err := s.friendRepo.GetBetweenUsers(ctx, requesterID, targetID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, classifyExistingEdge(existing, requesterID)
	}

	friendship := &models.Friendship{
		RequesterID: requesterID,
		AddresseeID: targetID,
		Status:      models.FriendshipStatusPending,
	}
	if err := s.friendRepo.CreateIfAbsent(ctx, friendship); err != nil {
		if errors.Is(err, repository.ErrEdgeExists) {
			// Lost the race: classify whatever edge won.
			if existing, lookupErr := s.friendRepo.GetBetweenUsers(ctx, requesterID, targetID); lookupErr == nil && existing != nil {
				return nil, classifyExistingEdge(existing, requesterID)
			}
			return nil, models.NewRequestAlreadySentError("Friend request already sent")
		}
		return nil, err
	}

	observability.FriendshipTransitions.WithLabelValues(string(models.FriendshipStatusPending)).Inc()
	cache.InvalidateRecommendations(ctx, requesterID)
	cache.InvalidateRecommendations(ctx, targetID)

	return s.friendRepo.GetByID(ctx, friendship.ID)
}

// classifyExistingEdge maps an existing edge to the duplicate-request reason
// the caller should see.
func classifyExistingEdge(edge *models.Friendship, requesterID uint) error {
	switch edge.Status {
	case models.FriendshipStatusAccepted:
		return models.NewAlreadyConnectedError()
	case models.FriendshipStatusRejected:
		return models.NewPreviouslyRejectedError()
	default:
		if edge.RequesterID == requesterID {
			return models.NewRequestAlreadySentError("Friend request already sent")
		}
		return models.NewRequestAlreadySentError("You already have a pending friend request from this user")
	}
}

// Respond lets the addressee accept or reject the pending request from
// requesterID. Anyone other than the addressee is rejected outright, and a
// decided edge never goes back to pending.
func (s *FriendService) Respond(ctx context.Context, requesterID, targetID uint, decision Decision, actingUserID uint) (*models.Friendship, error) {
	friendship, err := s.friendRepo.GetBetweenUsers(ctx, requesterID, targetID)
	if err != nil {
		return nil, err
	}
	if friendship == nil || friendship.Status != models.FriendshipStatusPending || friendship.RequesterID != requesterID {
		return nil, models.NewNotFoundError("Pending friend request", requesterID)
	}

	if friendship.AddresseeID != actingUserID {
		return nil, models.NewForbiddenError("Only the recipient of a friend request can respond to it")
	}

	next := models.FriendshipStatusAccepted
	if decision == DecisionReject {
		next = models.FriendshipStatusRejected
	}
	if err := s.friendRepo.UpdateStatus(ctx, friendship.ID, next); err != nil {
		return nil, err
	}

	observability.FriendshipTransitions.WithLabelValues(string(next)).Inc()

	return s.friendRepo.GetByID(ctx, friendship.ID)
}

// Remove deletes the edge between the two users regardless of status. Either
// party may call it; a fresh request is permitted afterwards.
func (s *FriendService) Remove(ctx context.Context, userID, otherID uint) error {
	if userID == otherID {
		return models.NewInvalidOperationError("Cannot remove yourself")
	}
	removed, err := s.friendRepo.RemoveBetweenUsers(ctx, userID, otherID)
	if err != nil {
		return err
	}
	if !removed {
		return models.NewNotFoundError("Friendship", otherID)
	}

	cache.InvalidateRecommendations(ctx, userID)
	cache.InvalidateRecommendations(ctx, otherID)
	return nil
}

// ListFriends returns the confirmed connections of the user.
func (s *FriendService) ListFriends(ctx context.Context, userID uint) ([]models.UserSummary, error) {
	users, err := s.friendRepo.GetFriends(ctx, userID)
	if err != nil {
		return nil, err
	}
	summaries := make([]models.UserSummary, 0, len(users))
	for _, u := range users {
		summaries = append(summaries, u.Summary())
	}
	return summaries, nil
}

// ListPendingRequests returns pending edges touching the user, annotated with
// whether the caller is the addressee (incoming) and therefore may respond.
func (s *FriendService) ListPendingRequests(ctx context.Context, userID uint) ([]models.PendingRequest, error) {
	edges, err := s.friendRepo.GetPendingInvolving(ctx, userID)
	if err != nil {
		return nil, err
	}

	requests := make([]models.PendingRequest, 0, len(edges))
	for _, e := range edges {
		counterpart := e.Requester
		incoming := true
		if e.RequesterID == userID {
			counterpart = e.Addressee
			incoming = false
		}
		requests = append(requests, models.PendingRequest{
			RequestID:   e.ID,
			Counterpart: counterpart.Summary(),
			Incoming:    incoming,
			CreatedAt:   e.CreatedAt,
		})
	}
	return requests, nil
}

// Status returns the friendship status between two users as seen by userID.
func (s *FriendService) Status(ctx context.Context, userID, otherID uint) (string, error) {
	friendship, err := s.friendRepo.GetBetweenUsers(ctx, userID, otherID)
	if err != nil {
		return "", err
	}
	if friendship == nil {
		return "none", nil
	}
	switch friendship.Status {
	case models.FriendshipStatusAccepted:
		return "friends", nil
	case models.FriendshipStatusRejected:
		return "rejected", nil
	default:
		if friendship.RequesterID == userID {
			return "pending_sent", nil
		}
		return "pending_received", nil
	}
}
