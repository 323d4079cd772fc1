package models

import "go.mongodb.org/mongo-driver/v2/bson"

type Note struct {
	ID          bson.ObjectID `bson:"_id,omitempty" json:"_id"`
	Email       string        `bson:"email" json:"email"`
	Title       string        `bson:"title" json:"title"`
	Description string        `bson:"description" json:"description"`
}
