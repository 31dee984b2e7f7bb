package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Service is a bookable treatment with its daily time slots.
// Services are read-only from this API's perspective.
type Service struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name  string             `bson:"name" json:"name"`
	Slots []string           `bson:"slots" json:"slots"`
}
