package repository

import (
	"context"
	"errors"
	"regexp"

	"hotelchat/infrastructure/bookingapi"
	"hotelchat/internal/entity"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var ErrHotelNotFound = errors.New("hotel not found")

type HotelRepository interface {
	Index(ctx context.Context, token string, filter entity.HotelIndexFilter) ([]entity.Hotel, error)
	Get(ctx context.Context, token string, hotelId int64) (entity.Hotel, error)
}

type apiHotelRepository struct {
	client *bookingapi.Client
}

func NewApiHotelRepository(client *bookingapi.Client) HotelRepository {
	return &apiHotelRepository{
		client: client,
	}
}

func (r *apiHotelRepository) Index(ctx context.Context, token string, filter entity.HotelIndexFilter) ([]entity.Hotel, error) {
	return r.client.ListHotels(ctx, token, filter)
}

func (r *apiHotelRepository) Get(ctx context.Context, token string, hotelId int64) (entity.Hotel, error) {
	hotel, err := r.client.GetHotel(ctx, token, hotelId)
	if errors.Is(err, bookingapi.ErrNotFound) {
		return entity.Hotel{}, ErrHotelNotFound
	}
	return hotel, err
}

type mongoHotelRepository struct {
	db *mongo.Database
}

func NewMongoHotelRepository(db *mongo.Database) HotelRepository {
	return &mongoHotelRepository{
		db: db,
	}
}

// Index matches search against name or location, case-insensitively.
func (r *mongoHotelRepository) Index(ctx context.Context, _ string, filter entity.HotelIndexFilter) ([]entity.Hotel, error) {
	cursor, err := r.db.Collection("hotels").Find(ctx, hotelFilter(filter),
		options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, err
	}

	hotels := make([]entity.Hotel, 0)
	if err := cursor.All(ctx, &hotels); err != nil {
		return nil, err
	}
	return hotels, nil
}

func hotelFilter(filter entity.HotelIndexFilter) bson.M {
	query := bson.M{}
	if filter.Search != "" {
		pattern := primitive.Regex{Pattern: regexp.QuoteMeta(filter.Search), Options: "i"}
		query["$or"] = bson.A{
			bson.M{"name": pattern},
			bson.M{"location": pattern},
		}
	}
	if filter.Location != "" {
		query["location"] = primitive.Regex{Pattern: regexp.QuoteMeta(filter.Location), Options: "i"}
	}

	price := bson.M{}
	if filter.MinPrice > 0 {
		price["$gte"] = filter.MinPrice
	}
	if filter.MaxPrice > 0 {
		price["$lte"] = filter.MaxPrice
	}
	if len(price) > 0 {
		query["pricePerNight"] = price
	}
	return query
}

func (r *mongoHotelRepository) Get(ctx context.Context, _ string, hotelId int64) (entity.Hotel, error) {
	var hotel entity.Hotel
	err := r.db.Collection("hotels").FindOne(ctx, bson.M{"_id": hotelId}).Decode(&hotel)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return entity.Hotel{}, ErrHotelNotFound
	}
	if err != nil {
		return entity.Hotel{}, err
	}
	return hotel, nil
}
