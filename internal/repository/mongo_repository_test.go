package repository

import (
	"context"
	"testing"
	"time"

	"hotelchat/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestMessageFilter(t *testing.T) {
	traveler := messageFilter(5, nil)
	assert.Equal(t, bson.M{"$or": bson.A{
		bson.M{"senderId": int64(5)},
		bson.M{"recipientId": int64(5)},
	}}, traveler)

	operator := messageFilter(9, []int64{2, 3})
	assert.Equal(t, bson.M{"$or": bson.A{
		bson.M{"senderId": int64(9)},
		bson.M{"recipientId": int64(9)},
		bson.M{"hotelId": bson.M{"$in": []int64{2, 3}}},
	}}, operator)
}

func TestHotelFilter(t *testing.T) {
	assert.Equal(t, bson.M{}, hotelFilter(entity.HotelIndexFilter{}))

	f := hotelFilter(entity.HotelIndexFilter{Search: "sea.view", Location: "Bali", MinPrice: 50, MaxPrice: 120})
	pattern := primitive.Regex{Pattern: `sea\.view`, Options: "i"}
	assert.Equal(t, bson.A{bson.M{"name": pattern}, bson.M{"location": pattern}}, f["$or"])
	assert.Equal(t, primitive.Regex{Pattern: "Bali", Options: "i"}, f["location"])
	assert.Equal(t, bson.M{"$gte": float64(50), "$lte": float64(120)}, f["pricePerNight"])
}

func TestMongoMessageRepository_Index(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	sentAt := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)

	mt.Run("traveler reads own messages", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "hotels.messages", mtest.FirstBatch,
			bson.D{{Key: "_id", Value: int64(1)}, {Key: "senderId", Value: int64(5)}, {Key: "recipientId", Value: int64(9)}, {Key: "hotelId", Value: int64(2)}, {Key: "content", Value: "a"}, {Key: "sentAt", Value: sentAt}},
			bson.D{{Key: "_id", Value: int64(2)}, {Key: "senderId", Value: int64(9)}, {Key: "recipientId", Value: int64(5)}, {Key: "response", Value: "b"}},
		))

		repo := NewMongoMessageRepository(mt.DB)
		messages, err := repo.Index(context.Background(), entity.Viewer{Id: 5, Role: entity.RoleUser}, "")
		require.NoError(mt, err)
		require.Len(mt, messages, 2)

		require.NotNil(mt, messages[0].HotelId)
		assert.Equal(mt, int64(2), *messages[0].HotelId)
		assert.True(mt, sentAt.Equal(messages[0].SentAt))
		assert.Nil(mt, messages[1].HotelId)
		assert.Equal(mt, "b", messages[1].Text())
	})

	mt.Run("operator also reads messages about owned hotels", func(mt *mtest.T) {
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, "hotels.hotels", mtest.FirstBatch,
				bson.D{{Key: "_id", Value: int64(2)}},
			),
			mtest.CreateCursorResponse(0, "hotels.messages", mtest.FirstBatch,
				bson.D{{Key: "_id", Value: int64(3)}, {Key: "senderId", Value: int64(5)}, {Key: "recipientId", Value: int64(4)}, {Key: "hotelId", Value: int64(2)}, {Key: "content", Value: "c"}},
			),
		)

		repo := NewMongoMessageRepository(mt.DB)
		messages, err := repo.Index(context.Background(), entity.Viewer{Id: 9, Role: entity.RoleOperator}, "")
		require.NoError(mt, err)
		require.Len(mt, messages, 1)
		assert.Equal(mt, int64(4), messages[0].RecipientId)
	})

	mt.Run("operator hotel lookup failure", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    2,
			Name:    "BadValue",
			Message: "hotels unavailable",
		}))

		repo := NewMongoMessageRepository(mt.DB)
		_, err := repo.Index(context.Background(), entity.Viewer{Id: 9, Role: entity.RoleOperator}, "")
		assert.ErrorContains(mt, err, "hotels unavailable")
	})

	mt.Run("no messages", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "hotels.messages", mtest.FirstBatch))

		repo := NewMongoMessageRepository(mt.DB)
		messages, err := repo.Index(context.Background(), entity.Viewer{Id: 5, Role: entity.RoleUser}, "")
		require.NoError(mt, err)
		assert.NotNil(mt, messages)
		assert.Empty(mt, messages)
	})
}

func TestMongoUserRepository_Index(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("by ids", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "hotels.users", mtest.FirstBatch,
			bson.D{{Key: "_id", Value: int64(1)}, {Key: "username", Value: "alice"}, {Key: "role", Value: "user"}},
			bson.D{{Key: "_id", Value: int64(9)}, {Key: "username", Value: "owner"}, {Key: "role", Value: "operator"}},
		))

		repo := NewMongoUserRepository(mt.DB)
		users, err := repo.Index(context.Background(), "", entity.UserIndexFilter{Ids: []int64{1, 9}})
		require.NoError(mt, err)
		require.Len(mt, users, 2)
		assert.Equal(mt, "alice", users[0].Username)
		assert.Equal(mt, entity.RoleOperator, users[1].Role)
	})
}

func TestMongoHotelRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("get", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "hotels.hotels", mtest.FirstBatch,
			bson.D{{Key: "_id", Value: int64(2)}, {Key: "name", Value: "Seaview"}, {Key: "createdBy", Value: int64(9)}},
		))

		repo := NewMongoHotelRepository(mt.DB)
		hotel, err := repo.Get(context.Background(), "", 2)
		require.NoError(mt, err)
		assert.Equal(mt, "Seaview", hotel.Name)
		assert.Equal(mt, int64(9), hotel.CreatedBy)
	})

	mt.Run("get missing", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "hotels.hotels", mtest.FirstBatch))

		repo := NewMongoHotelRepository(mt.DB)
		_, err := repo.Get(context.Background(), "", 404)
		assert.ErrorIs(mt, err, ErrHotelNotFound)
	})

	mt.Run("index", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "hotels.hotels", mtest.FirstBatch,
			bson.D{{Key: "_id", Value: int64(2)}, {Key: "name", Value: "Seaview"}, {Key: "pricePerNight", Value: 80.0}},
		))

		repo := NewMongoHotelRepository(mt.DB)
		hotels, err := repo.Index(context.Background(), "", entity.HotelIndexFilter{MaxPrice: 100})
		require.NoError(mt, err)
		require.Len(mt, hotels, 1)
		assert.Equal(mt, 80.0, hotels[0].PricePerNight)
	})
}
