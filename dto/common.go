package dto

import "github.com/Jahid-Hassan-Noor/food-now/response"

// PaginatedResponse is the shared shape for paginated list responses.
type PaginatedResponse[T any] struct {
	Data       T                   `json:"data"`
	Pagination response.Pagination `json:"pagination"`
}

// PageQuery is the common page/limit query pair.
type PageQuery struct {
	Page  int `form:"page,default=1"`
	Limit int `form:"limit,default=20"`
}
