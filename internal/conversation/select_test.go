package conversation

import (
	"testing"

	"hotelchat/internal/entity"

	"github.com/stretchr/testify/assert"
)

func TestSelect(t *testing.T) {
	convs := []entity.Conversation{{Key: "user-2"}, {Key: "user-1"}}

	tests := []struct {
		name    string
		current string
		convs   []entity.Conversation
		want    string
	}{
		{name: "defaults to most recent", current: "", convs: convs, want: "user-2"},
		{name: "keeps manual selection", current: "user-1", convs: convs, want: "user-1"},
		{name: "keeps selection missing from refresh", current: "user-7", convs: convs, want: "user-7"},
		{name: "nothing to select", current: "", convs: nil, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Select(tt.current, tt.convs))
		})
	}
}

func TestFind(t *testing.T) {
	convs := []entity.Conversation{{Key: "hotel-1", Title: "Inn"}}

	c, ok := Find("hotel-1", convs)
	assert.True(t, ok)
	assert.Equal(t, "Inn", c.Title)

	_, ok = Find("hotel-2", convs)
	assert.False(t, ok)
}
