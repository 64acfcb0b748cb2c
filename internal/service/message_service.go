package service

import (
	"context"
	"path"
	"strings"

	"skillswap/internal/models"
	"skillswap/internal/observability"
	"skillswap/internal/repository"

	"github.com/google/uuid"
)

// pendingAllowance is the number of messages each side of an unconfirmed
// connection may send before the recipient must decide: enough to make your
// case, not enough to spam.
const pendingAllowance = 2

// CanSend is the message gate policy. Confirmed connections always pass;
// pending ones pass while the sender stays under the allowance; strangers and
// rejected pairs never pass. Pure function, exported for direct testing.
func CanSend(status models.FriendshipStatus, priorFromSender int64) bool {
	switch status {
	case models.FriendshipStatusAccepted:
		return true
	case models.FriendshipStatusPending:
		return priorFromSender < pendingAllowance
	default:
		return false
	}
}

// MessageService provides gated messaging between users.
type MessageService struct {
	messageRepo repository.MessageRepository
	friendRepo  repository.FriendRepository
	userRepo    repository.UserRepository
}

// NewMessageService returns a new MessageService.
func NewMessageService(messageRepo repository.MessageRepository, friendRepo repository.FriendRepository, userRepo repository.UserRepository) *MessageService {
	return &MessageService{
		messageRepo: messageRepo,
		friendRepo:  friendRepo,
		userRepo:    userRepo,
	}
}

// Send validates the message against the gate and appends it to the log.
func (s *MessageService) Send(ctx context.Context, senderID, receiverID uint, content, attachment string) (*models.Message, error) {
	if senderID == receiverID {
		return nil, models.NewInvalidOperationError("Cannot message yourself")
	}
	content = strings.TrimSpace(content)
	if content == "" && attachment == "" {
		return nil, models.NewValidationError("Message needs content or an attachment")
	}

	if _, err := s.userRepo.GetByID(ctx, receiverID); err != nil {
		return nil, err
	}

	status := models.FriendshipStatus("")
	edge, err := s.friendRepo.GetBetweenUsers(ctx, senderID, receiverID)
	if err != nil {
		return nil, err
	}
	if edge != nil {
		status = edge.Status
	}

	var prior int64
	if status == models.FriendshipStatusPending {
		prior, err = s.messageRepo.CountFromSender(ctx, senderID, receiverID)
		if err != nil {
			return nil, err
		}
	}

	if !CanSend(status, prior) {
		reason := "no_connection"
		msg := "You can only message users you are connected with"
		switch status {
		case models.FriendshipStatusPending:
			reason = "pending_limit"
			msg = "Introduction limit reached; wait for them to respond to your request"
		case models.FriendshipStatusRejected:
			reason = "rejected"
		}
		observability.GateRejections.WithLabelValues(reason).Inc()
		return nil, models.NewGateRejectedError(msg)
	}

	message := &models.Message{
		SenderID:   senderID,
		ReceiverID: receiverID,
		Content:    content,
		Attachment: attachmentRef(attachment),
	}
	if err := s.messageRepo.Append(ctx, message); err != nil {
		return nil, err
	}
	observability.MessagesSent.Inc()
	return message, nil
}

// History returns the full ordered conversation between the user and the
// counterpart. Reads are never gated.
func (s *MessageService) History(ctx context.Context, userID, counterpartID uint) ([]models.Message, error) {
	return s.messageRepo.History(ctx, userID, counterpartID)
}

// attachmentRef turns a caller-supplied attachment name into a collision-free
// stored reference. The blob itself is owned by the upload layer.
func attachmentRef(attachment string) string {
	if attachment == "" {
		return ""
	}
	return uuid.NewString() + "_" + path.Base(attachment)
}
