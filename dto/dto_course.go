package dto

type CreateCourseRequest struct {
	Title                 string `json:"title"`
	Description           string `json:"description"`
	TutorName             string `json:"tutorName"`
	TutorEmail            string `json:"tutorEmail"`
	RegistrationFee       Number `json:"registrationFee"`
	RegistrationStartDate string `json:"registrationStartDate"`
	RegistrationEndDate   string `json:"registrationEndDate"`
	ClassStartTime        string `json:"classStartTime"`
	ClassEndDate          string `json:"classEndDate"`
	Duration              string `json:"duration"`
}

// ReviewCourseRequest approves or rejects a pending course.
type ReviewCourseRequest struct {
	Status          string  `json:"status" example:"approved"`
	RegistrationFee *Number `json:"registrationFee,omitempty"`
	RejectReason    string  `json:"rejectReason,omitempty"`
	Feedback        string  `json:"feedback,omitempty"`
}

type UpdateSessionRequest struct {
	TutorEmail            string `json:"tutorEmail"`
	Title                 string `json:"title"`
	Description           string `json:"description"`
	RegistrationStartDate string `json:"registrationStartDate"`
	RegistrationEndDate   string `json:"registrationEndDate"`
	ClassStartTime        string `json:"classStartTime"`
	ClassEndDate          string `json:"classEndDate"`
	RegistrationFee       Number `json:"registrationFee"`
	Duration              string `json:"duration"`
}
