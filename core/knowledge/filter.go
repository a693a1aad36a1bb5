package knowledge

// SearchFilter 结构化检索过滤条件。
// 每个字段为nil时不产生任何过滤子句；所有出现的条件按 AND 组合。
// 有意使用封闭结构体而非 map：未知的过滤键在解码边界直接拒绝，不做静默忽略。
type SearchFilter struct {
	CuisineType *string `json:"cuisine_type,omitempty"` // 精确匹配菜系
	Category    *string `json:"category,omitempty"`     // 精确匹配分类
	Halal       *bool   `json:"halal,omitempty"`        // 清真
	Vegetarian  *bool   `json:"vegetarian,omitempty"`   // 素食
}

// IsEmpty 是否没有任何过滤条件
func (f *SearchFilter) IsEmpty() bool {
	if f == nil {
		return true
	}
	return f.CuisineType == nil && f.Category == nil && f.Halal == nil && f.Vegetarian == nil
}

// Clone 返回过滤条件的浅拷贝（字段都是值语义，浅拷贝已足够）
func (f *SearchFilter) Clone() *SearchFilter {
	if f == nil {
		return nil
	}
	clone := *f
	return &clone
}

// FilterCuisine 便捷构造：仅按菜系过滤
func FilterCuisine(cuisine string) *SearchFilter {
	return &SearchFilter{CuisineType: &cuisine}
}

// Matches 判断一条记录是否满足过滤条件。
// 存储层在服务端过滤，这里的实现用于内存实现和测试断言。
// 饮食标志缺失按"未知"处理：未知不满足任何布尔过滤条件。
func (f *SearchFilter) Matches(d *Dish) bool {
	if f == nil {
		return true
	}
	if f.CuisineType != nil && d.CuisineType != *f.CuisineType {
		return false
	}
	if f.Category != nil && d.Category != *f.Category {
		return false
	}
	if f.Halal != nil {
		v, known := d.Dietary(DietaryHalal)
		if !known || v != *f.Halal {
			return false
		}
	}
	if f.Vegetarian != nil {
		v, known := d.Dietary(DietaryVegetarian)
		if !known || v != *f.Vegetarian {
			return false
		}
	}
	return true
}
