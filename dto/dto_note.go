package dto

type NoteRequest struct {
	Email       string `json:"email,omitempty"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type MaterialRequest struct {
	TutorEmail string `json:"tutorEmail,omitempty"`
	SessionID  string `json:"sessionId,omitempty"`
	Title      string `json:"title"`
	Image      string `json:"image"`
	Material   string `json:"material"`
}
