package dto

type CommentCreate struct {
	Body string `json:"body" validate:"required"`
}
