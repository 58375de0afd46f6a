package dto

type CreateAdminRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// UpdateAdminRequest leaves a field unchanged when it is empty.
type UpdateAdminRequest struct {
	Email    string `json:"email" validate:"omitempty,email"`
	Password string `json:"password" validate:"omitempty,min=6"`
}

type PromoteUserRequest struct {
	UserID int `json:"user_id" validate:"required,gt=0"`
}
