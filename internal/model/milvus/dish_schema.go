package milvus

import (
	"github.com/milvus-io/milvus/client/v2/entity"
)

// 饮食标志列的三态编码：布尔列无法表达"未知"，
// 未知的标志不应命中 true/false 任一过滤条件
const (
	DietaryUnknown int8 = -1
	DietaryFalse   int8 = 0
	DietaryTrue    int8 = 1
)

// DishCollectionSchema 菜品集合的字段布局。
// 过滤字段（cuisine_type/category/halal/vegetarian）独立成列，
// 完整记录以JSON文档列存储，向量列只参与相似度搜索。
type DishCollectionSchema struct {
	Id          string    `milvus:"id,varchar,64,primary_key"`
	Name        string    `milvus:"name,varchar,256"`
	NameNorm    string    `milvus:"name_norm,varchar,256"`
	CuisineType string    `milvus:"cuisine_type,varchar,128"`
	Category    string    `milvus:"category,varchar,128"`
	Halal       int8      `milvus:"halal,int8"`
	Vegetarian  int8      `milvus:"vegetarian,int8"`
	Document    string    `milvus:"document,json"`
	Vector      []float32 `milvus:"vector,float_vector"`
}

// GetFields 返回菜品集合的Milvus字段定义，dim为向量维度
func (DishCollectionSchema) GetFields(dim string) []*entity.Field {
	return []*entity.Field{
		{
			Name:        "id",
			DataType:    entity.FieldTypeVarChar,
			TypeParams:  map[string]string{"max_length": "64"},
			PrimaryKey:  true,
			AutoID:      false,
			Description: "Dish record unique ID (primary key)",
		},
		{
			Name:        "name",
			DataType:    entity.FieldTypeVarChar,
			TypeParams:  map[string]string{"max_length": "256"},
			Description: "Dish name",
		},
		{
			Name:        "name_norm",
			DataType:    entity.FieldTypeVarChar,
			TypeParams:  map[string]string{"max_length": "256"},
			Description: "Normalized dish name for exact lookup",
		},
		{
			Name:        "cuisine_type",
			DataType:    entity.FieldTypeVarChar,
			TypeParams:  map[string]string{"max_length": "128"},
			Description: "Cuisine type (filter field)",
		},
		{
			Name:        "category",
			DataType:    entity.FieldTypeVarChar,
			TypeParams:  map[string]string{"max_length": "128"},
			Description: "Dish category (filter field)",
		},
		{
			Name:        "halal",
			DataType:    entity.FieldTypeInt8,
			Description: "Halal flag: 1 true, 0 false, -1 unknown",
		},
		{
			Name:        "vegetarian",
			DataType:    entity.FieldTypeInt8,
			Description: "Vegetarian flag: 1 true, 0 false, -1 unknown",
		},
		{
			Name:        "document",
			DataType:    entity.FieldTypeJSON,
			Description: "Full dish record (JSON)",
		},
		{
			Name:        "vector",
			DataType:    entity.FieldTypeFloatVector,
			TypeParams:  map[string]string{"dim": dim},
			Description: "Projection text embedding",
		},
	}
}

// GetDishCollectionFields helper
func GetDishCollectionFields(dim string) []*entity.Field {
	return DishCollectionSchema{}.GetFields(dim)
}

// DietaryFlag 将可缺失的布尔标志编码为三态列值
func DietaryFlag(value bool, known bool) int8 {
	if !known {
		return DietaryUnknown
	}
	if value {
		return DietaryTrue
	}
	return DietaryFalse
}
