package dto

type LoginRequest struct {
	Secret string `json:"secret"`
}
