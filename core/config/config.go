package config

import (
	"context"
	"fmt"
	"strings"

	"github.com/gogf/gf/v2/frame/g"
)

// ValidateConfiguration validates all required configuration items
func ValidateConfiguration(ctx context.Context) error {
	var missingConfigs []string
	var warnings []string

	// 验证向量库配置
	storeType := g.Cfg().MustGet(ctx, "vectorStore.type", "milvus").String()
	switch storeType {
	case "milvus":
		milvusAddress := g.Cfg().MustGet(ctx, "milvus.address", "").String()
		if milvusAddress == "" {
			missingConfigs = append(missingConfigs, "milvus.address")
		}
	case "pgvector":
		if g.Cfg().MustGet(ctx, "postgres.host", "").String() == "" {
			missingConfigs = append(missingConfigs, "postgres.host")
		}
		if g.Cfg().MustGet(ctx, "postgres.user", "").String() == "" {
			missingConfigs = append(missingConfigs, "postgres.user")
		}
		if g.Cfg().MustGet(ctx, "postgres.database", "").String() == "" {
			missingConfigs = append(missingConfigs, "postgres.database")
		}
	default:
		missingConfigs = append(missingConfigs, fmt.Sprintf("vectorStore.type (unsupported value: %s)", storeType))
	}

	// 验证 Embedding 配置
	embeddingAPIKey := g.Cfg().MustGet(ctx, "embedding.apiKey", "").String()
	embeddingBaseURL := g.Cfg().MustGet(ctx, "embedding.baseURL", "").String()
	embeddingModel := g.Cfg().MustGet(ctx, "embedding.model", "").String()

	if embeddingAPIKey == "" {
		missingConfigs = append(missingConfigs, "embedding.apiKey")
	}
	if embeddingBaseURL == "" {
		missingConfigs = append(missingConfigs, "embedding.baseURL")
	}
	if embeddingModel == "" {
		missingConfigs = append(missingConfigs, "embedding.model")
	}

	// 验证 Chat 配置（问答Agent需要，纯检索接口可以没有）
	if g.Cfg().MustGet(ctx, "chat.apiKey", "").String() == "" {
		warnings = append(warnings, "chat.apiKey is not set, /v1/chat will be unavailable")
	}
	if g.Cfg().MustGet(ctx, "chat.model", "").String() == "" {
		warnings = append(warnings, "chat.model is not set, /v1/chat will be unavailable")
	}

	// Tavily 是可选增强
	if g.Cfg().MustGet(ctx, "tavily.apiKey", "").String() == "" {
		warnings = append(warnings, "tavily.apiKey is not set, restaurant search will be disabled")
	}

	// 验证语料来源配置
	corpusSource := g.Cfg().MustGet(ctx, "corpus.source", "builtin").String()
	switch corpusSource {
	case "builtin":
	case "file":
		if g.Cfg().MustGet(ctx, "corpus.path", "").String() == "" {
			missingConfigs = append(missingConfigs, "corpus.path")
		}
	case "s3":
		if g.Cfg().MustGet(ctx, "corpus.s3.endpoint", "").String() == "" {
			missingConfigs = append(missingConfigs, "corpus.s3.endpoint")
		}
		if g.Cfg().MustGet(ctx, "corpus.s3.bucket", "").String() == "" {
			missingConfigs = append(missingConfigs, "corpus.s3.bucket")
		}
	default:
		missingConfigs = append(missingConfigs, fmt.Sprintf("corpus.source (unsupported value: %s)", corpusSource))
	}

	// 输出警告信息
	if len(warnings) > 0 {
		g.Log().Warningf(ctx, "Configuration warnings:\n- %s", strings.Join(warnings, "\n- "))
	}

	// 检查是否有缺失的必需配置
	if len(missingConfigs) > 0 {
		return fmt.Errorf("missing required configuration items:\n- %s\n\nPlease check your config.yaml file and ensure all required settings are properly configured", strings.Join(missingConfigs, "\n- "))
	}

	g.Log().Info(ctx, "✓ All required configuration items are present")

	return nil
}
