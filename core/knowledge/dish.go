package knowledge

// EmbeddingDim 向量维度，必须与向量库集合的索引维度一致。
// 维度不匹配属于致命配置错误，在启动阶段校验，而不是逐条记录处理。
const EmbeddingDim = 1024

// 饮食标志的固定键集合。调用方必须把缺失的键当作"未知"，而不是false。
const (
	DietaryHalal      = "halal"
	DietaryVegetarian = "vegetarian"
	DietaryVegan      = "vegan"
	DietaryGlutenFree = "gluten_free"
)

// Dish 一条菜品知识记录。入库后不可变，重新入库（整条替换）时必须重新生成向量。
type Dish struct {
	// ID 记录唯一标识，入库时生成
	ID string `json:"id,omitempty"`
	// Name 菜名，在语料内按唯一处理（存储层不强制唯一，重名属于入库管线的数据质量问题）
	Name string `json:"name"`
	// CuisineType 菜系（Malay / Chinese Malaysian / Indian Malaysian / Nyonya / Mamak），开放字符串集合
	CuisineType string `json:"cuisine_type"`
	// Category 分类（Main course / Dessert / Beverage / Snack / Condiment）
	Category string `json:"category"`
	// Description 人类可读的描述
	Description string `json:"description"`
	// Ingredients 配料，顺序仅用于展示
	Ingredients []string `json:"ingredients"`
	// CookingMethod 烹饪方式，nil表示"未记录"，与空串含义不同
	CookingMethod *string `json:"cooking_method,omitempty"`
	// TasteProfile 口味标签（Sweet / Spicy / Savory / Sour / Umami）
	TasteProfile []string `json:"taste_profile"`
	// DietaryInfo 饮食标志，完整记录应包含 halal/vegetarian/vegan/gluten_free 四个键
	DietaryInfo map[string]bool `json:"dietary_info"`
	// CulturalSignificance 文化背景，可缺失
	CulturalSignificance *string `json:"cultural_significance,omitempty"`
	// TypicalMealTime 用餐时段（Breakfast / Lunch / Dinner / Snack / Anytime）
	TypicalMealTime []string `json:"typical_meal_time"`
	// RegionalOrigin 地域来源，可缺失
	RegionalOrigin *string `json:"regional_origin,omitempty"`
	// CommonPairings 常见搭配，仅用于展示
	CommonPairings []string `json:"common_pairings"`
	// Embedding 入库时由文本投影+Embedding服务生成，调用方不得自行提供
	Embedding []float32 `json:"-"`
}

// ScoredDish 检索结果：菜品记录加相关性得分。
// 得分区间取决于相似度度量（COSINE时为[-1,1]），排序以存储层返回顺序为准。
type ScoredDish struct {
	Dish  *Dish   `json:"dish"`
	Score float32 `json:"score"`
}

// Dietary 读取某个饮食标志。第二个返回值为false表示该键缺失（未知），而非标志为false。
func (d *Dish) Dietary(key string) (value bool, known bool) {
	if d.DietaryInfo == nil {
		return false, false
	}
	value, known = d.DietaryInfo[key]
	return value, known
}
