package v1

import (
	"github.com/gogf/gf/v2/frame/g"
)

type ChatReq struct {
	g.Meta   `path:"/v1/chat" method:"post" tags:"chat"`
	Question string `json:"question" v:"required"`
}

type ChatRes struct {
	g.Meta    `mime:"application/json"`
	Answer    string   `json:"answer"`
	ToolsUsed []string `json:"tools_used,omitempty"`
	Rounds    int      `json:"rounds"`
}
