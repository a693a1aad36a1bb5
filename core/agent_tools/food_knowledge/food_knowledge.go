// Package food_knowledge exposes the dish knowledge base as LLM-callable
// tools. Every tool returns a JSON envelope with a status field so the
// calling agent can tell "nothing found" apart from "system is broken".
package food_knowledge

import (
	"context"

	"github.com/Malowking/selera/core/agent_tools"
	"github.com/Malowking/selera/core/errors"
	"github.com/Malowking/selera/core/knowledge"
	"github.com/bytedance/sonic"
	"github.com/bytedance/sonic/decoder"
	"github.com/cloudwego/eino/schema"
	"github.com/gogf/gf/v2/frame/g"
)

// Tools builds the four knowledge tools backed by one retriever.
func Tools(r *knowledge.Retriever) []agent_tools.Tool {
	return []agent_tools.Tool{
		&searchDishesTool{retriever: r},
		&dishIngredientsTool{retriever: r},
		&dietaryInfoTool{retriever: r},
		&exploreCuisineTool{retriever: r},
	}
}

// envelope 工具结果的统一外层结构
type envelope struct {
	Status string      `json:"status"` // success / not_found / error
	Data   interface{} `json:"data,omitempty"`
	Error  *toolError  `json:"error,omitempty"`
}

type toolError struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

func successEnvelope(data interface{}) (string, error) {
	return sonic.MarshalString(&envelope{Status: "success", Data: data})
}

func notFoundEnvelope(message string) (string, error) {
	return sonic.MarshalString(&envelope{Status: "not_found", Error: &toolError{Kind: "not_found", Message: message}})
}

// errorEnvelope 把检索层错误规范化为调用方可见的结构化payload。
// 基础设施细节不外漏，只保留错误类别和简短说明。
func errorEnvelope(ctx context.Context, err error) (string, error) {
	kind := "internal"
	message := "an unexpected error occurred"

	switch {
	case errors.IsCode(err, errors.ErrInvalidParameter):
		kind = "invalid_argument"
		if appErr := errors.GetAppError(err); appErr != nil {
			message = appErr.Message
		}
	case errors.IsCode(err, errors.ErrIndexNotReady):
		kind = "index_not_ready"
		message = "the knowledge base index is still being prepared, please retry later"
	case errors.IsCode(err, errors.ErrRetrievalUnavailable):
		kind = "retrieval_unavailable"
		message = "the knowledge base is temporarily unavailable, please retry"
	}

	g.Log().Warningf(ctx, "knowledge tool error (%s): %v", kind, err)
	return sonic.MarshalString(&envelope{Status: "error", Error: &toolError{Kind: kind, Message: message}})
}

// decodeArgs 严格解析工具参数，未知字段直接拒绝而不是静默忽略
func decodeArgs(argsJSON string, out interface{}) error {
	dec := decoder.NewDecoder(argsJSON)
	dec.DisallowUnknownFields()
	if err := dec.Decode(out); err != nil {
		return errors.Wrap(errors.ErrInvalidParameter, err, "malformed tool arguments")
	}
	return nil
}

// ---- search_dishes ----

type searchDishesTool struct {
	retriever *knowledge.Retriever
}

type searchDishesArgs struct {
	Query       string  `json:"query"`
	CuisineType *string `json:"cuisine_type"`
	Category    *string `json:"category"`
	Halal       *bool   `json:"halal"`
	Vegetarian  *bool   `json:"vegetarian"`
	Limit       *int    `json:"limit"`
}

// dishHit 搜索结果视图，带相似度得分
type dishHit struct {
	Name         string          `json:"name"`
	CuisineType  string          `json:"cuisine_type"`
	Category     string          `json:"category"`
	Description  string          `json:"description"`
	TasteProfile []string        `json:"taste_profile,omitempty"`
	DietaryInfo  map[string]bool `json:"dietary_info,omitempty"`
	Score        float32         `json:"score"`
}

func (t *searchDishesTool) Info() *schema.ToolInfo {
	return &schema.ToolInfo{
		Name: "search_dishes",
		Desc: "Search the Malaysian food knowledge base by free-text query with optional filters. Use for open questions like 'spicy noodle soup' or 'halal breakfast dishes'.",
		ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
			"query": {
				Type:     schema.String,
				Desc:     "Natural language description of the dish to look for",
				Required: true,
			},
			"cuisine_type": {
				Type: schema.String,
				Desc: "Exact cuisine filter, e.g. Malay, Chinese Malaysian, Indian Malaysian, Nyonya, Mamak",
			},
			"category": {
				Type: schema.String,
				Desc: "Exact category filter, e.g. Main course, Dessert, Beverage",
			},
			"halal": {
				Type: schema.Boolean,
				Desc: "Filter by halal status",
			},
			"vegetarian": {
				Type: schema.Boolean,
				Desc: "Filter by vegetarian status",
			},
			"limit": {
				Type: schema.Integer,
				Desc: "Maximum number of results, default 5",
			},
		}),
	}
}

func (t *searchDishesTool) Execute(ctx context.Context, argsJSON string) (string, error) {
	var args searchDishesArgs
	if err := decodeArgs(argsJSON, &args); err != nil {
		return errorEnvelope(ctx, err)
	}

	filter := &knowledge.SearchFilter{
		CuisineType: args.CuisineType,
		Category:    args.Category,
		Halal:       args.Halal,
		Vegetarian:  args.Vegetarian,
	}

	limit := knowledge.DefaultSearchLimit
	if args.Limit != nil {
		limit = *args.Limit
	}

	results, err := t.retriever.Search(ctx, args.Query, limit, filter)
	if err != nil {
		return errorEnvelope(ctx, err)
	}
	if len(results) == 0 {
		return notFoundEnvelope("no dishes matched the query and filters")
	}

	hits := make([]dishHit, len(results))
	for i, sd := range results {
		hits[i] = dishHit{
			Name:         sd.Dish.Name,
			CuisineType:  sd.Dish.CuisineType,
			Category:     sd.Dish.Category,
			Description:  sd.Dish.Description,
			TasteProfile: sd.Dish.TasteProfile,
			DietaryInfo:  sd.Dish.DietaryInfo,
			Score:        sd.Score,
		}
	}
	return successEnvelope(hits)
}

// ---- get_dish_ingredients ----

type dishIngredientsTool struct {
	retriever *knowledge.Retriever
}

type dishNameArgs struct {
	DishName string `json:"dish_name"`
}

type ingredientsView struct {
	Name          string   `json:"name"`
	Ingredients   []string `json:"ingredients"`
	CookingMethod string   `json:"cooking_method,omitempty"`
}

func (t *dishIngredientsTool) Info() *schema.ToolInfo {
	return &schema.ToolInfo{
		Name: "get_dish_ingredients",
		Desc: "Get the ingredient list and cooking method of a specific Malaysian dish by name, e.g. 'Nasi Lemak'.",
		ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
			"dish_name": {
				Type:     schema.String,
				Desc:     "The dish name to look up",
				Required: true,
			},
		}),
	}
}

func (t *dishIngredientsTool) Execute(ctx context.Context, argsJSON string) (string, error) {
	var args dishNameArgs
	if err := decodeArgs(argsJSON, &args); err != nil {
		return errorEnvelope(ctx, err)
	}

	match, err := t.retriever.LookupByName(ctx, args.DishName)
	if err != nil {
		return errorEnvelope(ctx, err)
	}
	if match == nil {
		return notFoundEnvelope("no dish found with that name")
	}

	dish := match.Dish
	view := ingredientsView{
		Name:        dish.Name,
		Ingredients: dish.Ingredients,
	}
	if dish.CookingMethod != nil {
		view.CookingMethod = *dish.CookingMethod
	}
	return successEnvelope(view)
}

// ---- get_dietary_info ----

type dietaryInfoTool struct {
	retriever *knowledge.Retriever
}

type dietaryView struct {
	Name        string          `json:"name"`
	DietaryInfo map[string]bool `json:"dietary_info"`
	Ingredients []string        `json:"ingredients"`
}

func (t *dietaryInfoTool) Info() *schema.ToolInfo {
	return &schema.ToolInfo{
		Name: "get_dietary_info",
		Desc: "Get dietary flags (halal, vegetarian, vegan, gluten_free) and ingredients of a specific Malaysian dish by name. Missing flags mean the information is unknown, not false.",
		ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
			"dish_name": {
				Type:     schema.String,
				Desc:     "The dish name to look up",
				Required: true,
			},
		}),
	}
}

func (t *dietaryInfoTool) Execute(ctx context.Context, argsJSON string) (string, error) {
	var args dishNameArgs
	if err := decodeArgs(argsJSON, &args); err != nil {
		return errorEnvelope(ctx, err)
	}

	match, err := t.retriever.LookupByName(ctx, args.DishName)
	if err != nil {
		return errorEnvelope(ctx, err)
	}
	if match == nil {
		return notFoundEnvelope("no dish found with that name")
	}

	return successEnvelope(dietaryView{
		Name:        match.Dish.Name,
		DietaryInfo: match.Dish.DietaryInfo,
		Ingredients: match.Dish.Ingredients,
	})
}

// ---- explore_cuisine_type ----

type exploreCuisineTool struct {
	retriever *knowledge.Retriever
}

type exploreCuisineArgs struct {
	CuisineType string `json:"cuisine_type"`
	Limit       *int   `json:"limit"`
}

type cuisineView struct {
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	Category        string   `json:"category"`
	TypicalMealTime []string `json:"typical_meal_time,omitempty"`
}

func (t *exploreCuisineTool) Info() *schema.ToolInfo {
	return &schema.ToolInfo{
		Name: "explore_cuisine_type",
		Desc: "Browse representative dishes of one Malaysian cuisine type: Malay, Chinese Malaysian, Indian Malaysian, Nyonya, or Mamak.",
		ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
			"cuisine_type": {
				Type:     schema.String,
				Desc:     "The cuisine type to explore",
				Required: true,
			},
			"limit": {
				Type: schema.Integer,
				Desc: "Maximum number of dishes, default 10",
			},
		}),
	}
}

func (t *exploreCuisineTool) Execute(ctx context.Context, argsJSON string) (string, error) {
	var args exploreCuisineArgs
	if err := decodeArgs(argsJSON, &args); err != nil {
		return errorEnvelope(ctx, err)
	}

	limit := 0 // 0 让检索层使用默认值
	if args.Limit != nil {
		limit = *args.Limit
	}

	results, err := t.retriever.BrowseByCuisine(ctx, args.CuisineType, limit)
	if err != nil {
		return errorEnvelope(ctx, err)
	}
	if len(results) == 0 {
		return notFoundEnvelope("no dishes found for that cuisine type")
	}

	views := make([]cuisineView, len(results))
	for i, sd := range results {
		views[i] = cuisineView{
			Name:            sd.Dish.Name,
			Description:     sd.Dish.Description,
			Category:        sd.Dish.Category,
			TypicalMealTime: sd.Dish.TypicalMealTime,
		}
	}
	return successEnvelope(views)
}
