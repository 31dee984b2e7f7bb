package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mirado/doctors-portal-api/internal/models"
)

// MongoStore implements Store on top of the doctors_portal database.
type MongoStore struct {
	services *mongo.Collection
	bookings *mongo.Collection
	users    *mongo.Collection
}

func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{
		services: db.Collection("services"),
		bookings: db.Collection("bookings"),
		users:    db.Collection("users"),
	}
}

func (s *MongoStore) Services(ctx context.Context) ([]models.Service, error) {
	cursor, err := s.services.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var services []models.Service
	if err := cursor.All(ctx, &services); err != nil {
		return nil, err
	}
	return services, nil
}

func (s *MongoStore) BookingsByDate(ctx context.Context, date string) ([]models.Booking, error) {
	return s.findBookings(ctx, bson.M{"date": date})
}

func (s *MongoStore) BookingsByPatient(ctx context.Context, patient string) ([]models.Booking, error) {
	return s.findBookings(ctx, bson.M{"patient": patient})
}

func (s *MongoStore) findBookings(ctx context.Context, filter bson.M) ([]models.Booking, error) {
	cursor, err := s.bookings.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (s *MongoStore) FindBooking(ctx context.Context, treatment, date, patient string) (*models.Booking, error) {
	filter := bson.M{"treatment": treatment, "date": date, "patient": patient}

	var booking models.Booking
	err := s.bookings.FindOne(ctx, filter).Decode(&booking)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (s *MongoStore) InsertBooking(ctx context.Context, booking models.Booking) (*mongo.InsertOneResult, error) {
	return s.bookings.InsertOne(ctx, booking)
}

func (s *MongoStore) Users(ctx context.Context) ([]models.User, error) {
	cursor, err := s.users.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var users []models.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (s *MongoStore) UserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := s.users.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *MongoStore) UpsertUser(ctx context.Context, email string, user models.User) (*mongo.UpdateResult, error) {
	user.Email = email
	opts := options.Update().SetUpsert(true)
	return s.users.UpdateOne(ctx, bson.M{"email": email}, bson.M{"$set": user}, opts)
}

// GrantAdmin deliberately does not upsert: a missing target matches zero
// documents and the caller sees that in the returned counts.
func (s *MongoStore) GrantAdmin(ctx context.Context, email string) (*mongo.UpdateResult, error) {
	return s.users.UpdateOne(ctx, bson.M{"email": email}, bson.M{"$set": bson.M{"role": "admin"}})
}
