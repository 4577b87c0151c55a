package conversation

import "hotelchat/internal/entity"

// Select returns the conversation key that should be shown. A non-empty
// current selection is always kept, even when a refresh no longer contains
// it. With nothing selected the most recently active conversation wins.
// It returns "" only when there is nothing to select.
func Select(current string, convs []entity.Conversation) string {
	if current != "" {
		return current
	}
	if len(convs) == 0 {
		return ""
	}
	return convs[0].Key
}

// Find returns the conversation with the given key.
func Find(key string, convs []entity.Conversation) (entity.Conversation, bool) {
	for _, c := range convs {
		if c.Key == key {
			return c, true
		}
	}
	return entity.Conversation{}, false
}
