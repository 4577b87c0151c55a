package repository

import (
	"context"
	"errors"

	"hotelchat/infrastructure/bookingapi"
	"hotelchat/internal/entity"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var ErrMessageNotFound = errors.New("message not found")

// MessageRepository lists the messages visible to a viewer. The token is
// the viewer's bearer token; sources that do not need it ignore it.
type MessageRepository interface {
	Index(ctx context.Context, viewer entity.Viewer, token string) ([]entity.Message, error)
}

type apiMessageRepository struct {
	client *bookingapi.Client
}

func NewApiMessageRepository(client *bookingapi.Client) MessageRepository {
	return &apiMessageRepository{
		client: client,
	}
}

// Index relies on the API scoping the list to the token's owner.
func (r *apiMessageRepository) Index(ctx context.Context, _ entity.Viewer, token string) ([]entity.Message, error) {
	return r.client.ListMessages(ctx, token)
}

type mongoMessageRepository struct {
	db *mongo.Database
}

func NewMongoMessageRepository(db *mongo.Database) MessageRepository {
	return &mongoMessageRepository{
		db: db,
	}
}

// Index returns messages the viewer sent or received and, for operators,
// every message about a hotel they created.
func (r *mongoMessageRepository) Index(ctx context.Context, viewer entity.Viewer, _ string) ([]entity.Message, error) {
	var hotelIds []int64
	if viewer.Role == entity.RoleOperator {
		var err error
		if hotelIds, err = r.ownedHotelIds(ctx, viewer.Id); err != nil {
			return nil, err
		}
	}

	cursor, err := r.db.Collection("messages").Find(ctx, messageFilter(viewer.Id, hotelIds))
	if err != nil {
		return nil, err
	}

	messages := make([]entity.Message, 0)
	if err := cursor.All(ctx, &messages); err != nil {
		return nil, err
	}

	return messages, nil
}

// messageFilter matches messages the viewer sent or received, plus any
// message about one of hotelIds.
func messageFilter(viewerId int64, hotelIds []int64) bson.M {
	or := bson.A{
		bson.M{"senderId": viewerId},
		bson.M{"recipientId": viewerId},
	}
	if len(hotelIds) > 0 {
		or = append(or, bson.M{"hotelId": bson.M{"$in": hotelIds}})
	}
	return bson.M{"$or": or}
}

func (r *mongoMessageRepository) ownedHotelIds(ctx context.Context, operatorId int64) ([]int64, error) {
	opts := options.Find().SetProjection(bson.M{"_id": 1})
	cursor, err := r.db.Collection("hotels").Find(ctx, bson.M{"createdBy": operatorId}, opts)
	if err != nil {
		return nil, err
	}

	var rows []struct {
		Id int64 `bson:"_id"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, err
	}

	ids := make([]int64, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.Id)
	}
	return ids, nil
}

// MessageWriteRepository changes messages. Writes always go to the booking
// API, whichever source serves reads.
type MessageWriteRepository interface {
	Get(ctx context.Context, token string, messageId int64) (entity.Message, error)
	Create(ctx context.Context, token string, req entity.SendMessageRequest) (entity.Message, error)
	Respond(ctx context.Context, token string, messageId int64, response string) (entity.Message, error)
	Delete(ctx context.Context, token string, messageId int64) error
}

func NewApiMessageWriteRepository(client *bookingapi.Client) MessageWriteRepository {
	return &apiMessageRepository{
		client: client,
	}
}

// Get finds one message among those visible to the token's owner. The API
// has no single-message endpoint.
func (r *apiMessageRepository) Get(ctx context.Context, token string, messageId int64) (entity.Message, error) {
	messages, err := r.client.ListMessages(ctx, token)
	if err != nil {
		return entity.Message{}, err
	}
	for _, m := range messages {
		if m.Id == messageId {
			return m, nil
		}
	}
	return entity.Message{}, ErrMessageNotFound
}

func (r *apiMessageRepository) Create(ctx context.Context, token string, req entity.SendMessageRequest) (entity.Message, error) {
	return r.client.SendMessage(ctx, token, req)
}

func (r *apiMessageRepository) Respond(ctx context.Context, token string, messageId int64, response string) (entity.Message, error) {
	return r.client.RespondToMessage(ctx, token, messageId, response)
}

func (r *apiMessageRepository) Delete(ctx context.Context, token string, messageId int64) error {
	return r.client.DeleteMessage(ctx, token, messageId)
}
