package selera

// ControllerV1 美食智能体 v1 接口控制器
type ControllerV1 struct{}

// NewV1 创建 v1 控制器
func NewV1() *ControllerV1 {
	return &ControllerV1{}
}
