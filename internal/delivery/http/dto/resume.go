package dto

type UpdateResumeRequest struct {
	Text string `json:"text" validate:"required,max=200000"`
}
