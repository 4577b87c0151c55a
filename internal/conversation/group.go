// Package conversation turns the flat list of messages a viewer can see into
// conversation threads ordered by most recent activity.
package conversation

import (
	"sort"

	"hotelchat/internal/entity"
)

type options struct {
	refreshTitle bool
}

type Option func(*options)

// WithTitleRefresh makes a bucket's title follow its latest message instead
// of staying fixed at the first message seen.
func WithTitleRefresh(enabled bool) Option {
	return func(o *options) {
		o.refreshTitle = enabled
	}
}

// Group partitions messages into conversations for a viewer of the given
// role. Every message lands in exactly one conversation. Conversations are
// ordered newest activity first; ties keep the order in which their first
// message appeared in the input. Group performs no I/O and never fails.
//
// viewerID identifies whose inbox is being built. Grouping depends only on
// the role, so it does not change bucket keys.
func Group(messages []entity.Message, role entity.Role, viewerID int64, users, hotels Lookup, opts ...Option) []entity.Conversation {
	return GroupBy(StrategyFor(role), messages, users, hotels, opts...)
}

// GroupBy is Group with an explicit bucketing strategy.
func GroupBy(strategy Strategy, messages []entity.Message, users, hotels Lookup, opts ...Option) []entity.Conversation {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	buckets := make(map[string]*entity.Conversation)
	order := make([]*entity.Conversation, 0)

	for _, m := range messages {
		key := strategy.Key(m)

		b, ok := buckets[key]
		if !ok {
			b = &entity.Conversation{
				Key:           key,
				Title:         strategy.Title(m, users, hotels),
				LatestSender:  users.UserName(m.SenderId),
				LatestMessage: m.Text(),
				LatestSentAt:  m.SentAt,
			}
			buckets[key] = b
			order = append(order, b)
		}

		b.Messages = append(b.Messages, m)

		if m.SentAt.After(b.LatestSentAt) {
			b.LatestMessage = m.Text()
			b.LatestSentAt = m.SentAt
			b.LatestSender = users.UserName(m.SenderId)
			if o.refreshTitle {
				b.Title = strategy.Title(m, users, hotels)
			}
		}
	}

	convs := make([]entity.Conversation, 0, len(order))
	for _, b := range order {
		convs = append(convs, *b)
	}

	sort.SliceStable(convs, func(i, j int) bool {
		return convs[i].LatestSentAt.After(convs[j].LatestSentAt)
	})

	return convs
}
