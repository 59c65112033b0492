package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Account is the document stored in the accounts collection.
type Account struct {
	ID               primitive.ObjectID `bson:"_id,omitempty"`
	Username         string             `bson:"username"`
	PasswordHash     string             `bson:"password_hash"`
	Phone            string             `bson:"phone"`
	Role             string             `bson:"role"`
	IsActive         *bool              `bson:"is_active,omitempty"`
	IsVerified       bool               `bson:"is_verified"`
	VerificationCode *string            `bson:"verification_code"`
	CreatedAt        time.Time          `bson:"created_at"`
}

// AppUser is the document stored in the users collection.
type AppUser struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name"`
	Email     string             `bson:"email"`
	Role      string             `bson:"role"`
	IsActive  bool               `bson:"is_active"`
	CreatedAt time.Time          `bson:"created_at"`
}
