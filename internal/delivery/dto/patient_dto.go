package dto

// Request DTOs

type PatientRequest struct {
	FirstName string `json:"first_name" validate:"required,max=100"`
	LastName  string `json:"last_name" validate:"required,max=100"`
	Age       int    `json:"age" validate:"gte=0,lte=150"`
	Address   string `json:"address" validate:"omitempty,max=255"`
	Email     string `json:"email" validate:"omitempty,email"`
	Sex       string `json:"sex" validate:"omitempty,oneof=Homme Femme"`
	Phone     string `json:"phone" validate:"omitempty,max=20"`
}

type PatientListQuery struct {
	Name  string
	Page  int
	Limit int
}

// Response DTOs

type PatientResponse struct {
	ID        int    `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Age       int    `json:"age"`
	Address   string `json:"address,omitempty"`
	Email     string `json:"email,omitempty"`
	Sex       string `json:"sex,omitempty"`
	Phone     string `json:"phone,omitempty"`
}

type PatientListResponse struct {
	Patients []PatientResponse
	Page     int
	Limit    int
	Total    int64
}
