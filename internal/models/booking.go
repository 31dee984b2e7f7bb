package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Booking reserves one slot of a treatment for a patient on a date.
// Treatment must match a Service name; slot equality is plain string match.
type Booking struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Treatment   string             `bson:"treatment" json:"treatment" binding:"required"`
	Date        string             `bson:"date" json:"date" binding:"required"`
	Patient     string             `bson:"patient" json:"patient" binding:"required,email"`
	Slot        string             `bson:"slot" json:"slot" binding:"required"`
	PatientName string             `bson:"patientName,omitempty" json:"patientName,omitempty"`
	Phone       string             `bson:"phone,omitempty" json:"phone,omitempty"`
}
