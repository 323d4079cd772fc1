package dto

type CreateUserRequest struct {
	Name  string `json:"name" example:"Jane Doe"`
	Email string `json:"email" example:"jane@example.com"`
	Photo string `json:"photo,omitempty"`
	Role  string `json:"role,omitempty" example:"student"`
}

type RoleUpdateRequest struct {
	Role string `json:"role" example:"tutor"`
}

type AdminStatus struct {
	Admin bool `json:"admin"`
}

type TutorStatus struct {
	Tutor bool `json:"tutor"`
}
