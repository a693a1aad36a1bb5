package v1

import (
	"github.com/gogf/gf/v2/frame/g"
)

type KnowledgeSeedReq struct {
	g.Meta `path:"/v1/knowledge/seed" method:"post" tags:"knowledge"`
	Force  bool `json:"force"` // 集合已存在时是否强制重建
}

type KnowledgeSeedRes struct {
	g.Meta    `mime:"application/json"`
	DishCount int  `json:"dish_count"`
	Skipped   bool `json:"skipped"`
}

type KnowledgeReseedReq struct {
	g.Meta `path:"/v1/knowledge/reseed" method:"post" tags:"knowledge"`
}

type KnowledgeReseedRes struct {
	g.Meta    `mime:"application/json"`
	DishCount int `json:"dish_count"`
}
