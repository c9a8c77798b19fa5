package controllers

import (
	"sort"
	"strings"

	"github.com/Jahid-Hassan-Noor/food-now/config"
	"github.com/Jahid-Hassan-Noor/food-now/dto"
	"github.com/Jahid-Hassan-Noor/food-now/models"
	"github.com/Jahid-Hassan-Noor/food-now/response"

	"github.com/fiam/gounidecode/unidecode"
	"github.com/gin-gonic/gin"
	"github.com/schollz/closestmatch"
	"github.com/texttheater/golang-levenshtein/levenshtein"
)

func chefResponse(chef models.Chef) dto.ChefResponse {
	return dto.ChefResponse{
		ID:                  chef.ID,
		ChefUsername:        chef.ChefUsername,
		ChefDescription:     chef.ChefDescription,
		ChefImage:           chef.ChefImage,
		Balance:             chef.Balance,
		TotalDeposit:        chef.TotalDeposit,
		TotalCampaigns:      chef.TotalCampaigns,
		TotalOrdersReceived: chef.TotalOrdersReceived,
		CampaignPoints:      chef.CampaignPoints,
		SubscriptionStatus:  chef.SubscriptionStatus,
		SubscriptionEndsAt:  chef.SubscriptionEndsAt,
		CreatedAt:           chef.CreatedAt,
	}
}

func normalizeInput(input string) string {
	input = strings.TrimSpace(input)
	input = strings.ToLower(unidecode.Unidecode(input))
	return input
}

func createMatcher(keywords []string) *closestmatch.ClosestMatch {
	return closestmatch.New(keywords, []int{2, 3})
}

func calculateSimilarity(a, b string) float64 {
	distance := levenshtein.DistanceForStrings([]rune(a), []rune(b), levenshtein.DefaultOptions)
	maxLen := float64(len(a))
	if float64(len(b)) > maxLen {
		maxLen = float64(len(b))
	}
	if maxLen == 0 {
		return 1.0
	}
	return 1.0 - float64(distance)/maxLen
}

type scoredChef struct {
	chef  models.Chef
	score float64
}

// rankChefsByQuery orders chefs by fuzzy similarity between the search
// query and the chef username or description.
func rankChefsByQuery(query string, chefs []models.Chef) []models.Chef {
	normalizedQuery := normalizeInput(query)

	usernames := make([]string, 0, len(chefs))
	for _, chef := range chefs {
		usernames = append(usernames, normalizeInput(chef.ChefUsername))
	}
	matcher := createMatcher(usernames)
	closest := matcher.Closest(normalizedQuery)

	scored := make([]scoredChef, 0, len(chefs))
	for _, chef := range chefs {
		username := normalizeInput(chef.ChefUsername)
		score := calculateSimilarity(normalizedQuery, username)
		if username == closest {
			score += 0.5
		}
		if strings.Contains(username, normalizedQuery) {
			score += 0.3
		}
		if strings.Contains(normalizeInput(chef.ChefDescription), normalizedQuery) {
			score += 0.1
		}
		if score > 0.3 {
			scored = append(scored, scoredChef{chef: chef, score: score})
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	ranked := make([]models.Chef, 0, len(scored))
	for _, entry := range scored {
		ranked = append(ranked, entry.chef)
	}
	return ranked
}

// ListChefs returns chef profiles, fuzzily ranked when a search query is
// present.
func ListChefs(c *gin.Context) {
	var query dto.ChefListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	page, limit := pageWindow(query.Page, query.Limit)

	var chefs []models.Chef
	if err := config.DB.Order("total_orders_received DESC").Find(&chefs).Error; err != nil {
		response.ServerError(c)
		return
	}

	if query.Search != "" {
		chefs = rankChefsByQuery(query.Search, chefs)
	}

	total := len(chefs)
	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	results := make([]dto.ChefResponse, 0, end-start)
	for _, chef := range chefs[start:end] {
		results = append(results, chefResponse(chef))
	}

	response.SuccessWithPagination(c, results, page, limit, total)
}

func GetChef(c *gin.Context) {
	username := c.Param("username")

	var chef models.Chef
	if err := config.DB.Where("LOWER(chef_username) = LOWER(?)", username).First(&chef).Error; err != nil {
		response.NotFound(c)
		return
	}

	response.Success(c, chefResponse(chef))
}

// UpdateChefProfile edits the authenticated chef's own profile.
func UpdateChefProfile(c *gin.Context) {
	var input dto.UpdateChefRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	_, chef, err := loadCurrentChef(c)
	if err != nil {
		response.NotFound(c)
		return
	}

	if input.ChefDescription != "" {
		chef.ChefDescription = input.ChefDescription
	}
	if input.ChefImage != "" {
		chef.ChefImage = input.ChefImage
	}

	if err := config.DB.Save(&chef).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, chefResponse(chef))
}
