package models

import "go.mongodb.org/mongo-driver/v2/bson"

type Review struct {
	ID           bson.ObjectID `bson:"_id,omitempty" json:"_id"`
	SessionID    Ref           `bson:"sessionId" json:"sessionId"`
	StudentName  string        `bson:"studentName,omitempty" json:"studentName,omitempty"`
	StudentEmail string        `bson:"studentEmail,omitempty" json:"studentEmail,omitempty"`
	Rating       Number        `bson:"rating" json:"rating"`
	Comment      string        `bson:"comment" json:"comment"`
}
