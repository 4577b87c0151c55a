package usecase

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"hotelchat/internal/conversation"
	"hotelchat/internal/entity"
	"hotelchat/internal/repository"
	"hotelchat/pkg/logger"
)

type InboxUsecase interface {
	// Get rebuilds the viewer's conversations from scratch and resolves
	// which one is selected.
	Get(ctx context.Context, viewer entity.Viewer, token string) (entity.InboxView, error)
	// Conversation returns one conversation without touching the stored
	// selection.
	Conversation(ctx context.Context, viewer entity.Viewer, token, key string) (entity.Conversation, error)
	// Select records a manual selection that later refreshes keep.
	Select(ctx context.Context, viewer entity.Viewer, key string) error
}

type InboxOptions struct {
	RefreshTitleOnNewData bool
}

type inboxUsecase struct {
	messageRepo   repository.MessageRepository
	nameRepo      repository.NameRepository
	selectionRepo repository.SelectionRepository
	opts          InboxOptions
}

func NewInboxUsecase(
	messageRepo repository.MessageRepository,
	nameRepo repository.NameRepository,
	selectionRepo repository.SelectionRepository,
	opts InboxOptions,
) InboxUsecase {
	return &inboxUsecase{
		messageRepo:   messageRepo,
		nameRepo:      nameRepo,
		selectionRepo: selectionRepo,
		opts:          opts,
	}
}

func (u *inboxUsecase) Get(ctx context.Context, viewer entity.Viewer, token string) (entity.InboxView, error) {
	convs, err := u.conversations(ctx, viewer, token)
	if err != nil {
		return entity.InboxView{}, err
	}

	current, err := u.selectionRepo.Get(ctx, viewer.Id)
	if err != nil {
		logger.Warn("inbox %d: read selection: %v", viewer.Id, err)
	}

	selected := conversation.Select(current, convs)
	if selected != "" && selected != current {
		if err := u.selectionRepo.Set(ctx, viewer.Id, selected); err != nil {
			logger.Warn("inbox %d: store selection: %v", viewer.Id, err)
		}
	}

	return entity.InboxView{
		Conversations: convs,
		Selected:      selected,
	}, nil
}

func (u *inboxUsecase) Conversation(ctx context.Context, viewer entity.Viewer, token, key string) (entity.Conversation, error) {
	convs, err := u.conversations(ctx, viewer, token)
	if err != nil {
		return entity.Conversation{}, err
	}

	conv, found := conversation.Find(key, convs)
	if !found {
		return entity.Conversation{}, ErrConversationNotFound
	}
	return conv, nil
}

// conversations fetches and groups the viewer's messages. Missing names
// degrade to fallback labels; only a failed message fetch is an error.
func (u *inboxUsecase) conversations(ctx context.Context, viewer entity.Viewer, token string) ([]entity.Conversation, error) {
	if viewer.Id <= 0 || !viewer.Role.Valid() {
		return nil, ErrInvalidViewer
	}

	messages, err := u.messageRepo.Index(ctx, viewer, token)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMessagesFailed, err)
	}

	userIds, hotelIds := referencedIds(messages)

	var (
		wg            sync.WaitGroup
		users, hotels map[int64]string
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		var err error
		users, err = u.nameRepo.UserNames(ctx, token, userIds)
		if err != nil {
			logger.Warn("inbox %d: user names incomplete: %v", viewer.Id, err)
		}
	}()
	go func() {
		defer wg.Done()
		var err error
		hotels, err = u.nameRepo.HotelNames(ctx, token, hotelIds)
		if err != nil {
			logger.Warn("inbox %d: hotel names incomplete: %v", viewer.Id, err)
		}
	}()
	wg.Wait()

	convs := conversation.Group(messages, viewer.Role, viewer.Id, users, hotels,
		conversation.WithTitleRefresh(u.opts.RefreshTitleOnNewData))

	logger.Debug("inbox %d: %d messages in %d conversations", viewer.Id, len(messages), len(convs))
	return convs, nil
}

func (u *inboxUsecase) Select(ctx context.Context, viewer entity.Viewer, key string) error {
	if key == "" {
		return ErrEmptySelection
	}
	return u.selectionRepo.Set(ctx, viewer.Id, key)
}

// referencedIds returns the distinct sender and hotel ids, sorted.
func referencedIds(messages []entity.Message) ([]int64, []int64) {
	userSet := make(map[int64]struct{})
	hotelSet := make(map[int64]struct{})
	for _, m := range messages {
		userSet[m.SenderId] = struct{}{}
		if m.HotelId != nil {
			hotelSet[*m.HotelId] = struct{}{}
		}
	}
	return sortedKeys(userSet), sortedKeys(hotelSet)
}

func sortedKeys(set map[int64]struct{}) []int64 {
	out := make([]int64, 0, len(set))
	for id := range set {
		out = append(out, id)
	}
	slices.Sort(out)
	return out
}
