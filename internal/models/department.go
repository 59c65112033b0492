package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Department is the document stored in the departements collection.
type Department struct {
	ID  primitive.ObjectID `bson:"_id,omitempty"`
	Nom string             `bson:"nom"`
}

// Role is the document stored in the roles collection.
type Role struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Nom         string             `bson:"nom"`
	Description string             `bson:"description"`
}
