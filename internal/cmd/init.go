package cmd

import (
	"context"

	"github.com/Malowking/selera/core/common"
	"github.com/Malowking/selera/core/config"
	"github.com/Malowking/selera/core/corpus"
	"github.com/Malowking/selera/core/embedding"
	"github.com/Malowking/selera/core/vector_store"
	"github.com/gogf/gf/v2/frame/g"
)

// init initializes all components of the application
func init() {
	ctx := context.Background()

	// Validate configuration before initializing components
	g.Log().Info(ctx, "Validating application configuration...")
	err := config.ValidateConfiguration(ctx)
	if err != nil {
		g.Log().Fatalf(ctx, "Configuration validation failed:\n%v", err)
	}

	// Initialize vector database
	store, err := vector_store.GetDishStore()
	if err != nil {
		g.Log().Fatalf(ctx, "Vector store initialization failed: %v", err)
	}

	// 按配置自动播种，空库首启时免去手动调用 /knowledge/seed。
	// Seed 对已存在的集合是幂等跳过，重启不会重复写入。
	// 播种异步执行，embedding服务慢时不阻塞HTTP服务启动，
	// 就绪前的检索请求由 index_not_ready 错误兜底。
	if g.Cfg().MustGet(ctx, "corpus.autoSeed", true).Bool() {
		embedder, err := embedding.GetEmbedder(ctx)
		if err != nil {
			g.Log().Fatalf(ctx, "Embedding client initialization failed: %v", err)
		}

		common.SafeGo(ctx, "corpus-auto-seed", func() {
			result, err := corpus.Seed(ctx, store, embedder, false)
			if err != nil {
				g.Log().Errorf(ctx, "Corpus seeding failed: %v", err)
				return
			}
			if !result.Skipped {
				g.Log().Infof(ctx, "Seeded knowledge base with %d dishes", result.DishCount)
			}
		})
	} else if err := store.EnsureCollection(ctx); err != nil {
		g.Log().Fatalf(ctx, "Dish collection initialization failed: %v", err)
	}

	g.Log().Info(ctx, "✓ All components initialized successfully")
}
