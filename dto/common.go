package dto

// StatusRequest is the body of the approval endpoints
type StatusRequest struct {
	Status string `json:"status" validate:"required,oneof=approved rejected"`
}
