package models

import "go.mongodb.org/mongo-driver/v2/bson"

type Material struct {
	ID         bson.ObjectID `bson:"_id,omitempty" json:"_id"`
	TutorEmail string        `bson:"tutorEmail" json:"tutorEmail"`
	SessionID  Ref           `bson:"sessionId" json:"sessionId"`
	Title      string        `bson:"title" json:"title"`
	Image      string        `bson:"image" json:"image"`
	Material   string        `bson:"material" json:"material"` // link to the uploaded content
}
