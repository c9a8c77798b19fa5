package dto

import "time"

type CreateFoodRequest struct {
	FoodName        string  `json:"foodName" binding:"required"`
	FoodDescription string  `json:"foodDescription"`
	FoodPrice       float64 `json:"foodPrice"`
	FoodImage       string  `json:"foodImage"`
}

type UpdateFoodRequest struct {
	FoodName        *string  `json:"foodName"`
	FoodDescription *string  `json:"foodDescription"`
	FoodPrice       *float64 `json:"foodPrice"`
	FoodImage       *string  `json:"foodImage"`
	IsListed        *bool    `json:"isListed"`
}

type FoodResponse struct {
	ID              uint      `json:"id"`
	FoodName        string    `json:"foodName"`
	FoodDescription string    `json:"foodDescription"`
	Chef            string    `json:"chef"`
	FoodPrice       float64   `json:"foodPrice"`
	FoodImage       string    `json:"foodImage"`
	IsListed        bool      `json:"isListed"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

type FoodListQuery struct {
	PageQuery
	Chef     string   `form:"chef"`
	Search   string   `form:"search"`
	SortBy   string   `form:"sortBy,default=created_at"`
	SortDir  string   `form:"sortDir,default=desc"`
	MinPrice *float64 `form:"minPrice"`
	MaxPrice *float64 `form:"maxPrice"`
}

// FoodPriceSummary aggregates the listed price spread for a chef.
type FoodPriceSummary struct {
	Count    int64   `json:"count"`
	MinPrice float64 `json:"minPrice"`
	MaxPrice float64 `json:"maxPrice"`
	AvgPrice float64 `json:"avgPrice"`
}
