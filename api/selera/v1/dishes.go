package v1

import (
	"github.com/gogf/gf/v2/frame/g"
)

// DishResult 检索结果中的单个菜品
type DishResult struct {
	ID                   string          `json:"id"`
	Name                 string          `json:"name"`
	CuisineType          string          `json:"cuisine_type"`
	Category             string          `json:"category"`
	Description          string          `json:"description"`
	Ingredients          []string        `json:"ingredients,omitempty"`
	CookingMethod        string          `json:"cooking_method,omitempty"`
	TasteProfile         []string        `json:"taste_profile,omitempty"`
	DietaryInfo          map[string]bool `json:"dietary_info,omitempty"`
	CulturalSignificance string          `json:"cultural_significance,omitempty"`
	TypicalMealTime      []string        `json:"typical_meal_time,omitempty"`
	RegionalOrigin       string          `json:"regional_origin,omitempty"`
	CommonPairings       []string        `json:"common_pairings,omitempty"`
	Score                float32         `json:"score"`
}

type DishSearchReq struct {
	g.Meta      `path:"/v1/dishes/search" method:"post" tags:"dishes"`
	Query       string  `json:"query" v:"required"`
	CuisineType *string `json:"cuisine_type"`
	Category    *string `json:"category"`
	Halal       *bool   `json:"halal"`
	Vegetarian  *bool   `json:"vegetarian"`
	Limit       int     `json:"limit"` // Default is 5, max 50
}

type DishSearchRes struct {
	g.Meta `mime:"application/json"`
	Dishes []*DishResult `json:"dishes"`
	Total  int           `json:"total"`
}

type CuisineBrowseReq struct {
	g.Meta  `path:"/v1/cuisines/{cuisine}/dishes" method:"get" tags:"dishes"`
	Cuisine string `json:"cuisine" in:"path" v:"required"`
	Limit   int    `json:"limit" in:"query"` // Default is 10
	// Exhaustive 为 true 时走穷举列表而非语义排序浏览
	Exhaustive bool `json:"exhaustive" in:"query"`
}

type CuisineBrowseRes struct {
	g.Meta `mime:"application/json"`
	Dishes []*DishResult `json:"dishes"`
	Total  int           `json:"total"`
}
