package dto

import "github.com/recipeshare/server/internal/models"

type UserSortBy string

const (
	UserSortName      UserSortBy = "name"
	UserSortEmail     UserSortBy = "email"
	UserSortCreatedAt UserSortBy = "createdAt"
)

type UserListQuery struct {
	Page     int
	PageSize int
	Search   string
	Role     models.Role
	SortBy   UserSortBy
}

type SetRoleRequest struct {
	Role models.Role `json:"role" validate:"required"`
}
