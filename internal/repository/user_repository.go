package repository

import (
	"context"

	"hotelchat/infrastructure/bookingapi"
	"hotelchat/internal/entity"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	userPageSize = 100
	maxUserPages = 20
)

type UserRepository interface {
	// Index returns the users matching filter. With filter.Ids set it returns
	// whichever of those users exist; unknown ids are simply absent.
	Index(ctx context.Context, token string, filter entity.UserIndexFilter) ([]entity.User, error)
}

type apiUserRepository struct {
	client *bookingapi.Client
}

func NewApiUserRepository(client *bookingapi.Client) UserRepository {
	return &apiUserRepository{
		client: client,
	}
}

// Index pages through the user list. The API cannot filter by id, so with
// ids given it stops once all of them are found or the list runs out.
func (r *apiUserRepository) Index(ctx context.Context, token string, filter entity.UserIndexFilter) ([]entity.User, error) {
	if len(filter.Ids) == 0 {
		return r.client.ListUsers(ctx, token, filter.Limit, filter.Page)
	}

	wanted := make(map[int64]bool, len(filter.Ids))
	for _, id := range filter.Ids {
		wanted[id] = true
	}

	users := make([]entity.User, 0, len(filter.Ids))
	for page := 1; page <= maxUserPages && len(wanted) > 0; page++ {
		batch, err := r.client.ListUsers(ctx, token, userPageSize, page)
		if err != nil {
			return nil, err
		}
		for _, u := range batch {
			if wanted[u.Id] {
				users = append(users, u)
				delete(wanted, u.Id)
			}
		}
		if len(batch) < userPageSize {
			break
		}
	}

	return users, nil
}

type mongoUserRepository struct {
	db *mongo.Database
}

func NewMongoUserRepository(db *mongo.Database) UserRepository {
	return &mongoUserRepository{
		db: db,
	}
}

func (r *mongoUserRepository) Index(ctx context.Context, _ string, filter entity.UserIndexFilter) ([]entity.User, error) {
	collection := r.db.Collection("users")

	bsonFilter := bson.M{}
	opts := options.Find()
	if len(filter.Ids) > 0 {
		bsonFilter["_id"] = bson.M{"$in": filter.Ids}
	} else {
		limit := filter.Limit
		if limit <= 0 {
			limit = 20
		}
		page := filter.Page
		if page <= 0 {
			page = 1
		}
		opts.SetLimit(int64(limit)).SetSkip(int64((page - 1) * limit))
	}
	opts.SetSort(bson.D{{Key: "_id", Value: 1}})

	cursor, err := collection.Find(ctx, bsonFilter, opts)
	if err != nil {
		return nil, err
	}

	users := make([]entity.User, 0)
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}

	return users, nil
}
