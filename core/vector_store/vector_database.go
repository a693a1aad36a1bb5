package vector_store

import (
	"context"
	"sync"

	"github.com/gogf/gf/v2/os/gctx"

	"github.com/Malowking/selera/core/errors"
	"github.com/gogf/gf/v2/frame/g"
)

var (
	once        sync.Once
	dishStore   DishStore
	initError   error
)

// GetDishStore returns the singleton dish vector store
func GetDishStore() (DishStore, error) {
	once.Do(func() {
		ctx := gctx.New()
		dishStore, initError = initializeDishStore(ctx)
	})
	return dishStore, initError
}

// initializeDishStore determines which store to use based on configuration
func initializeDishStore(ctx context.Context) (DishStore, error) {
	// Read the vector database type from configuration
	dbType := g.Cfg().MustGet(ctx, "vectorStore.type", "milvus").String()

	g.Log().Infof(ctx, "Initializing vector store with type: %s", dbType)

	switch dbType {
	case "milvus":
		store, err := InitializeMilvusStore(ctx)
		if err != nil {
			return nil, errors.Newf(errors.ErrVectorStoreInit, "failed to initialize Milvus vector store: %v", err)
		}
		g.Log().Info(ctx, "Milvus vector store initialized successfully")
		return store, nil
	case "pgvector":
		store, err := InitializePostgresStore(ctx)
		if err != nil {
			return nil, errors.Newf(errors.ErrVectorStoreInit, "failed to initialize PostgreSQL vector store: %v", err)
		}
		g.Log().Info(ctx, "PostgreSQL vector store initialized successfully")
		return store, nil
	default:
		return nil, errors.Newf(errors.ErrInvalidParameter, "unsupported vector database type: %s. Supported types: milvus, pgvector", dbType)
	}
}
