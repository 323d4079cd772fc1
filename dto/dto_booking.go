package dto

type CreateBookingRequest struct {
	StudentEmail string `json:"studentEmail"`
	StudentName  string `json:"studentName"`
	TutorEmail   string `json:"tutorEmail"`
	SessionID    string `json:"sessionId"`
}

type CreateReviewRequest struct {
	SessionID    string `json:"sessionId"`
	StudentName  string `json:"studentName"`
	StudentEmail string `json:"studentEmail"`
	Rating       Number `json:"rating"`
	Comment      string `json:"comment"`
}
