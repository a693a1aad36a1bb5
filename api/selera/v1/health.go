package v1

import (
	"github.com/gogf/gf/v2/frame/g"
)

type HealthReq struct {
	g.Meta `path:"/v1/health" method:"get" tags:"health"`
}

type HealthRes struct {
	g.Meta      `mime:"application/json"`
	Status      string `json:"status"` // ok / degraded
	VectorStore string `json:"vector_store"`
	Corpus      bool   `json:"corpus_ready"`
}
