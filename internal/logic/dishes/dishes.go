package dishes

import (
	"context"
	"sync"

	v1 "github.com/Malowking/selera/api/selera/v1"
	"github.com/Malowking/selera/core/embedding"
	"github.com/Malowking/selera/core/knowledge"
	"github.com/Malowking/selera/core/vector_store"
	"github.com/gogf/gf/v2/os/gctx"
)

var (
	retrieverOnce sync.Once
	retriever     *knowledge.Retriever
	retrieverErr  error
)

// getRetriever 懒加载共享检索器，复用进程级的store和embedding连接
func getRetriever() (*knowledge.Retriever, error) {
	retrieverOnce.Do(func() {
		ctx := gctx.New()
		store, err := vector_store.GetDishStore()
		if err != nil {
			retrieverErr = err
			return
		}
		embedder, err := embedding.GetEmbedder(ctx)
		if err != nil {
			retrieverErr = err
			return
		}
		retriever = knowledge.NewRetriever(embedder, store)
	})
	return retriever, retrieverErr
}

// Search 直接检索接口，不经过LLM
func Search(ctx context.Context, req *v1.DishSearchReq) (*v1.DishSearchRes, error) {
	r, err := getRetriever()
	if err != nil {
		return nil, err
	}

	filter := &knowledge.SearchFilter{
		CuisineType: req.CuisineType,
		Category:    req.Category,
		Halal:       req.Halal,
		Vegetarian:  req.Vegetarian,
	}

	results, err := r.Search(ctx, req.Query, req.Limit, filter)
	if err != nil {
		return nil, err
	}

	res := &v1.DishSearchRes{
		Dishes: make([]*v1.DishResult, len(results)),
		Total:  len(results),
	}
	for i, sd := range results {
		res.Dishes[i] = toDishResult(sd.Dish, sd.Score)
	}
	return res, nil
}

// Browse 按菜系浏览，exhaustive=true 时绕过语义排序走穷举列表
func Browse(ctx context.Context, req *v1.CuisineBrowseReq) (*v1.CuisineBrowseRes, error) {
	res := &v1.CuisineBrowseRes{Dishes: make([]*v1.DishResult, 0)}

	if req.Exhaustive {
		store, err := vector_store.GetDishStore()
		if err != nil {
			return nil, err
		}
		limit := req.Limit
		if limit <= 0 {
			limit = knowledge.DefaultBrowseLimit
		}
		dishes, err := store.ListByCuisine(ctx, req.Cuisine, limit)
		if err != nil {
			return nil, err
		}
		for _, dish := range dishes {
			res.Dishes = append(res.Dishes, toDishResult(dish, 0))
		}
		res.Total = len(res.Dishes)
		return res, nil
	}

	r, err := getRetriever()
	if err != nil {
		return nil, err
	}

	results, err := r.BrowseByCuisine(ctx, req.Cuisine, req.Limit)
	if err != nil {
		return nil, err
	}
	for _, sd := range results {
		res.Dishes = append(res.Dishes, toDishResult(sd.Dish, sd.Score))
	}
	res.Total = len(res.Dishes)
	return res, nil
}

func toDishResult(d *knowledge.Dish, score float32) *v1.DishResult {
	result := &v1.DishResult{
		ID:              d.ID,
		Name:            d.Name,
		CuisineType:     d.CuisineType,
		Category:        d.Category,
		Description:     d.Description,
		Ingredients:     d.Ingredients,
		TasteProfile:    d.TasteProfile,
		DietaryInfo:     d.DietaryInfo,
		TypicalMealTime: d.TypicalMealTime,
		CommonPairings:  d.CommonPairings,
		Score:           score,
	}
	if d.CookingMethod != nil {
		result.CookingMethod = *d.CookingMethod
	}
	if d.CulturalSignificance != nil {
		result.CulturalSignificance = *d.CulturalSignificance
	}
	if d.RegionalOrigin != nil {
		result.RegionalOrigin = *d.RegionalOrigin
	}
	return result
}
