package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Employee is the document stored in the employes collection.
// Fields written by older clients may be missing, so every string is optional.
type Employee struct {
	ID           primitive.ObjectID    `bson:"_id,omitempty"`
	Nom          string                `bson:"nom,omitempty"`
	Prenom       string                `bson:"prenom,omitempty"`
	Email        string                `bson:"email,omitempty"`
	Departement  string                `bson:"departement,omitempty"`
	Role         string                `bson:"role,omitempty"`
	DateEmbauche string                `bson:"date_embauche,omitempty"`
	Salaire      *primitive.Decimal128 `bson:"salaire,omitempty"`
	CreatedAt    time.Time             `bson:"created_at,omitempty"`
}
