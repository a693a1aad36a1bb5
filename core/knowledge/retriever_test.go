package knowledge

import (
	"context"
	"fmt"
	"testing"

	"github.com/Malowking/selera/core/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeEmbedder 记录调用情况的Embedding替身
type fakeEmbedder struct {
	calls    int
	lastText string
	err      error
}

func (f *fakeEmbedder) EmbedStrings(ctx context.Context, texts []string, dim int) ([][]float32, error) {
	f.calls++
	if len(texts) > 0 {
		f.lastText = texts[0]
	}
	if f.err != nil {
		return nil, f.err
	}
	vectors := make([][]float32, len(texts))
	for i := range texts {
		vectors[i] = make([]float32, dim)
	}
	return vectors, nil
}

// fakeStore 记录调用参数的存储替身
type fakeStore struct {
	calls             int
	lastCandidatePool int
	lastLimit         int
	lastFilter        *SearchFilter
	results           []ScoredDish
	err               error
}

func (f *fakeStore) Search(ctx context.Context, vector []float32, candidatePool int, limit int, filter *SearchFilter) ([]ScoredDish, error) {
	f.calls++
	f.lastCandidatePool = candidatePool
	f.lastLimit = limit
	f.lastFilter = filter
	if f.err != nil {
		return nil, f.err
	}
	if len(f.results) > limit {
		return f.results[:limit], nil
	}
	return f.results, nil
}

func scoredDishes(n int) []ScoredDish {
	out := make([]ScoredDish, n)
	for i := range out {
		out[i] = ScoredDish{
			Dish:  &Dish{Name: fmt.Sprintf("Dish %d", i), CuisineType: "Malay"},
			Score: 1.0 - float32(i)*0.1,
		}
	}
	return out
}

func TestRetrieverSearch(t *testing.T) {
	ctx := context.Background()

	t.Run("空查询在向量化之前拒绝", func(t *testing.T) {
		embedder := &fakeEmbedder{}
		store := &fakeStore{}
		r := NewRetriever(embedder, store)

		for _, query := range []string{"", "   ", "\t\n"} {
			_, err := r.Search(ctx, query, 5, nil)
			require.Error(t, err)
			assert.True(t, errors.IsCode(err, errors.ErrInvalidParameter))
		}
		// 不能有任何一次Embedding调用
		assert.Equal(t, 0, embedder.calls)
		assert.Equal(t, 0, store.calls)
	})

	t.Run("limit缺省与上限收敛", func(t *testing.T) {
		tests := []struct {
			name      string
			limit     int
			wantLimit int
		}{
			{"零取默认值", 0, DefaultSearchLimit},
			{"负数取默认值", -3, DefaultSearchLimit},
			{"正常值透传", 7, 7},
			{"超上限收敛", 500, MaxSearchLimit},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				store := &fakeStore{results: scoredDishes(3)}
				r := NewRetriever(&fakeEmbedder{}, store)

				_, err := r.Search(ctx, "laksa", tt.limit, nil)
				require.NoError(t, err)
				assert.Equal(t, tt.wantLimit, store.lastLimit)
				// 候选池是limit的固定倍数过采样
				assert.Equal(t, tt.wantLimit*candidateMultiplier, store.lastCandidatePool)
			})
		}
	})

	t.Run("保持存储层排序不重排", func(t *testing.T) {
		store := &fakeStore{results: scoredDishes(5)}
		r := NewRetriever(&fakeEmbedder{}, store)

		results, err := r.Search(ctx, "noodles", 5, nil)
		require.NoError(t, err)
		require.Len(t, results, 5)
		for i, sd := range results {
			assert.Equal(t, fmt.Sprintf("Dish %d", i), sd.Dish.Name)
		}
	})

	t.Run("空结果是合法状态不是错误", func(t *testing.T) {
		store := &fakeStore{results: nil}
		r := NewRetriever(&fakeEmbedder{}, store)

		results, err := r.Search(ctx, "pizza", 5, nil)
		require.NoError(t, err)
		assert.Empty(t, results)
	})

	t.Run("Embedding故障映射为检索不可用", func(t *testing.T) {
		embedder := &fakeEmbedder{err: fmt.Errorf("connection refused")}
		store := &fakeStore{}
		r := NewRetriever(embedder, store)

		_, err := r.Search(ctx, "satay", 5, nil)
		require.Error(t, err)
		assert.True(t, errors.IsCode(err, errors.ErrRetrievalUnavailable))
		assert.Equal(t, 0, store.calls)
	})

	t.Run("存储故障不吞成空结果", func(t *testing.T) {
		store := &fakeStore{err: fmt.Errorf("connection reset")}
		r := NewRetriever(&fakeEmbedder{}, store)

		results, err := r.Search(ctx, "satay", 5, nil)
		require.Error(t, err)
		assert.Nil(t, results)
		assert.True(t, errors.IsCode(err, errors.ErrRetrievalUnavailable))
	})

	t.Run("索引未就绪单独透传", func(t *testing.T) {
		store := &fakeStore{err: errors.New(errors.ErrIndexNotReady, "index is building")}
		r := NewRetriever(&fakeEmbedder{}, store)

		_, err := r.Search(ctx, "satay", 5, nil)
		require.Error(t, err)
		assert.True(t, errors.IsCode(err, errors.ErrIndexNotReady))
		assert.False(t, errors.IsCode(err, errors.ErrRetrievalUnavailable))
	})

	t.Run("过滤条件原样传递给存储层", func(t *testing.T) {
		store := &fakeStore{results: scoredDishes(1)}
		r := NewRetriever(&fakeEmbedder{}, store)

		filter := &SearchFilter{CuisineType: strptr("Nyonya"), Halal: boolptr(true)}
		_, err := r.Search(ctx, "laksa", 5, filter)
		require.NoError(t, err)
		require.NotNil(t, store.lastFilter)
		assert.Equal(t, "Nyonya", *store.lastFilter.CuisineType)
		assert.Equal(t, true, *store.lastFilter.Halal)
	})
}

func TestRetrieverLookupByName(t *testing.T) {
	ctx := context.Background()

	t.Run("取最佳匹配一条", func(t *testing.T) {
		embedder := &fakeEmbedder{}
		store := &fakeStore{results: scoredDishes(3)}
		r := NewRetriever(embedder, store)

		match, err := r.LookupByName(ctx, "Nasi Lemak")
		require.NoError(t, err)
		require.NotNil(t, match)
		assert.Equal(t, "Dish 0", match.Dish.Name)
		assert.Equal(t, 1, store.lastLimit)
		assert.Equal(t, "Nasi Lemak", embedder.lastText)
	})

	t.Run("未命中返回nil而非错误", func(t *testing.T) {
		store := &fakeStore{results: nil}
		r := NewRetriever(&fakeEmbedder{}, store)

		match, err := r.LookupByName(ctx, "Unknown Dish")
		require.NoError(t, err)
		assert.Nil(t, match)
	})

	t.Run("空名称拒绝", func(t *testing.T) {
		r := NewRetriever(&fakeEmbedder{}, &fakeStore{})
		_, err := r.LookupByName(ctx, "  ")
		require.Error(t, err)
		assert.True(t, errors.IsCode(err, errors.ErrInvalidParameter))
	})
}

func TestRetrieverBrowseByCuisine(t *testing.T) {
	ctx := context.Background()

	t.Run("菜系名作为语义查询并叠加精确过滤", func(t *testing.T) {
		embedder := &fakeEmbedder{}
		store := &fakeStore{results: scoredDishes(4)}
		r := NewRetriever(embedder, store)

		results, err := r.BrowseByCuisine(ctx, "Nyonya", 0)
		require.NoError(t, err)
		assert.Len(t, results, 4)
		assert.Equal(t, "Nyonya", embedder.lastText)
		assert.Equal(t, DefaultBrowseLimit, store.lastLimit)
		require.NotNil(t, store.lastFilter)
		assert.Equal(t, "Nyonya", *store.lastFilter.CuisineType)
	})

	t.Run("空菜系拒绝", func(t *testing.T) {
		r := NewRetriever(&fakeEmbedder{}, &fakeStore{})
		_, err := r.BrowseByCuisine(ctx, "", 10)
		require.Error(t, err)
		assert.True(t, errors.IsCode(err, errors.ErrInvalidParameter))
	})
}
