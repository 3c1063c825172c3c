package user

type CreateUserRequest struct {
	FirstName   string `json:"firstName" binding:"required,max=100"`
	LastName    string `json:"lastName" binding:"required,max=100"`
	Email       string `json:"email" binding:"required,email,max=255"`
	PhoneNumber string `json:"phoneNumber" binding:"max=50"`
	Department  string `json:"department" binding:"max=100"`
	Position    string `json:"position" binding:"max=100"`
}

// UpdateUserRequest distinguishes absent from present fields via
// pointers. FirstName/LastName/Email only overwrite when non-blank;
// PhoneNumber/Department/Position overwrite whenever present, empty
// string included; IsActive overwrites whenever present.
type UpdateUserRequest struct {
	FirstName   *string `json:"firstName" binding:"omitempty,max=100"`
	LastName    *string `json:"lastName" binding:"omitempty,max=100"`
	Email       *string `json:"email" binding:"omitempty,max=255"`
	PhoneNumber *string `json:"phoneNumber" binding:"omitempty,max=50"`
	Department  *string `json:"department" binding:"omitempty,max=100"`
	Position    *string `json:"position" binding:"omitempty,max=100"`
	IsActive    *bool   `json:"isActive"`
}

type ExistsResponse struct {
	Exists bool `json:"exists"`
}
