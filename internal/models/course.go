package models

import "go.mongodb.org/mongo-driver/v2/bson"

// CourseStatus is the moderation state of a course. Courses start pending and
// an admin moves them to approved or rejected; a tutor can send a rejected
// course back to pending.
type CourseStatus string

const (
	StatusPending  CourseStatus = "pending"
	StatusApproved CourseStatus = "approved"
	StatusRejected CourseStatus = "rejected"
)

func (s CourseStatus) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// Course is called a "session" by the web client; both names refer to the
// same document in the course collection.
type Course struct {
	ID                    bson.ObjectID `bson:"_id,omitempty" json:"_id"`
	Title                 string        `bson:"title" json:"title"`
	Description           string        `bson:"description" json:"description"`
	TutorName             string        `bson:"tutorName,omitempty" json:"tutorName,omitempty"`
	TutorEmail            string        `bson:"tutorEmail" json:"tutorEmail"`
	Status                CourseStatus  `bson:"status" json:"status"`
	RegistrationFee       Number        `bson:"registrationFee" json:"registrationFee"`
	RejectReason          string        `bson:"rejectReason,omitempty" json:"rejectReason,omitempty"`
	Feedback              string        `bson:"feedback,omitempty" json:"feedback,omitempty"`
	RegistrationStartDate Text          `bson:"registrationStartDate" json:"registrationStartDate"`
	RegistrationEndDate   Text          `bson:"registrationEndDate" json:"registrationEndDate"`
	ClassStartTime        Text          `bson:"classStartTime" json:"classStartTime"`
	ClassEndDate          Text          `bson:"classEndDate" json:"classEndDate"`
	Duration              Text          `bson:"duration" json:"duration"`
}

// CourseDetails is the set of fields a tutor may edit on an existing course.
type CourseDetails struct {
	TutorEmail            string
	Title                 string
	Description           string
	RegistrationStartDate string
	RegistrationEndDate   string
	ClassStartTime        string
	ClassEndDate          string
	RegistrationFee       int64
	Duration              string
}
