package usecase

import (
	"context"

	"hotelchat/internal/entity"
	"hotelchat/internal/repository"
)

// Notifier tells connected clients that a user's inbox changed.
type Notifier interface {
	InboxChanged(userId int64)
}

type MessageUsecase interface {
	Send(ctx context.Context, viewer entity.Viewer, token string, req entity.SendMessageRequest) (entity.Message, error)
	Respond(ctx context.Context, viewer entity.Viewer, token string, messageId int64, response string) (entity.Message, error)
	Delete(ctx context.Context, viewer entity.Viewer, token string, messageId int64) error
}

type messageUsecase struct {
	messageRepo repository.MessageWriteRepository
	notifier    Notifier
}

func NewMessageUseCase(messageRepo repository.MessageWriteRepository, notifier Notifier) MessageUsecase {
	return &messageUsecase{
		messageRepo: messageRepo,
		notifier:    notifier,
	}
}

func (m *messageUsecase) Send(ctx context.Context, viewer entity.Viewer, token string, req entity.SendMessageRequest) (entity.Message, error) {
	message, err := m.messageRepo.Create(ctx, token, req)
	if err != nil {
		return entity.Message{}, err
	}

	m.notify(viewer.Id, req.RecipientId)
	return message, nil
}

// Respond sets the operator's reply on a traveler's message.
func (m *messageUsecase) Respond(ctx context.Context, viewer entity.Viewer, token string, messageId int64, response string) (entity.Message, error) {
	if viewer.Role != entity.RoleOperator {
		return entity.Message{}, ErrNotOperator
	}

	message, err := m.messageRepo.Respond(ctx, token, messageId, response)
	if err != nil {
		return entity.Message{}, err
	}

	m.notify(viewer.Id, message.SenderId, message.RecipientId)
	return message, nil
}

// Delete removes a message. It is looked up first so both of its sides
// can be told their inbox changed.
func (m *messageUsecase) Delete(ctx context.Context, viewer entity.Viewer, token string, messageId int64) error {
	if viewer.Role != entity.RoleOperator {
		return ErrNotOperator
	}

	message, err := m.messageRepo.Get(ctx, token, messageId)
	if err != nil {
		return err
	}

	if err := m.messageRepo.Delete(ctx, token, messageId); err != nil {
		return err
	}

	m.notify(viewer.Id, message.SenderId, message.RecipientId)
	return nil
}

func (m *messageUsecase) notify(userIds ...int64) {
	if m.notifier == nil {
		return
	}
	seen := make(map[int64]bool, len(userIds))
	for _, id := range userIds {
		if id <= 0 || seen[id] {
			continue
		}
		seen[id] = true
		m.notifier.InboxChanged(id)
	}
}
