package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// User is keyed by email. Role is either empty or "admin"; it is only
// elevated through the admin-grant endpoint, never through the upsert.
// bson omitempty keeps a plain profile upsert from clobbering the role.
type User struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email string             `bson:"email" json:"email"`
	Name  string             `bson:"name,omitempty" json:"name,omitempty"`
	Phone string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Role  string             `bson:"role,omitempty" json:"role,omitempty"`
}

func (u *User) IsAdmin() bool {
	return u.Role == "admin"
}
