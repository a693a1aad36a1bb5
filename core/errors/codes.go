package errors

// ErrCode 业务错误码类型
type ErrCode int

const (
	// 通用错误 1000-1999
	ErrInvalidParameter ErrCode = 1001 // 参数错误
	ErrNotFound         ErrCode = 1002 // 资源未找到
	ErrInternalError    ErrCode = 1003 // 内部错误
	ErrOperationFailed  ErrCode = 1004 // 操作失败

	// 模型相关 2000-2999
	ErrEmbeddingFailed    ErrCode = 2001 // Embedding失败
	ErrLLMCallFailed      ErrCode = 2002 // LLM调用失败
	ErrModelNotConfigured ErrCode = 2003 // 模型未配置

	// 检索相关 3000-3999
	ErrRetrievalUnavailable ErrCode = 3001 // 检索基础设施不可用
	ErrIndexNotReady        ErrCode = 3002 // 向量索引未就绪

	// 向量数据库 4000-4999
	ErrVectorStoreInit ErrCode = 4001 // 向量库初始化失败
	ErrVectorSearch    ErrCode = 4002 // 向量搜索失败
	ErrVectorInsert    ErrCode = 4003 // 向量插入失败
	ErrVectorDelete    ErrCode = 4004 // 向量删除失败

	// 语料相关 5000-5999
	ErrCorpusLoad   ErrCode = 5001 // 语料加载失败
	ErrIngestFailed ErrCode = 5002 // 语料入库失败

	// Agent工具相关 6000-6999
	ErrToolExecution   ErrCode = 6001 // 工具执行失败
	ErrWebSearchFailed ErrCode = 6002 // 网络搜索失败
)

// HTTPStatusCode 返回错误码对应的HTTP状态码
func (e ErrCode) HTTPStatusCode() int {
	switch e {
	case ErrInvalidParameter:
		return 400
	case ErrNotFound:
		return 404
	case ErrRetrievalUnavailable, ErrIndexNotReady:
		// 瞬时基础设施故障，调用方可稍后重试
		return 503
	default:
		return 500
	}
}

// Retryable 该错误是否适合调用方重试
func (e ErrCode) Retryable() bool {
	return e == ErrRetrievalUnavailable || e == ErrIndexNotReady
}
