package models

import "go.mongodb.org/mongo-driver/v2/bson"

type Booking struct {
	ID           bson.ObjectID `bson:"_id,omitempty" json:"_id"`
	StudentEmail string        `bson:"studentEmail" json:"studentEmail"`
	StudentName  string        `bson:"studentName,omitempty" json:"studentName,omitempty"`
	TutorEmail   string        `bson:"tutorEmail,omitempty" json:"tutorEmail,omitempty"`
	SessionID    Ref           `bson:"sessionId" json:"sessionId"`
}

// BookedSession is a booking joined with the course it refers to.
// SessionInfo is nil when the course no longer exists.
type BookedSession struct {
	Booking     `bson:",inline"`
	SessionInfo *Course `bson:"sessionInfo,omitempty" json:"sessionInfo,omitempty"`
}
