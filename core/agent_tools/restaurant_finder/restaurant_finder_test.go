package restaurant_finder

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Malowking/selera/core/errors"
	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, handler http.HandlerFunc) (*httptest.Server, *Client) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return server, NewClient("tvly-test", server.URL)
}

func TestClientSearch(t *testing.T) {
	ctx := context.Background()

	t.Run("请求体携带查询与条数", func(t *testing.T) {
		var gotReq searchRequest
		_, cli := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/search", r.URL.Path)
			require.NoError(t, sonic.ConfigDefault.NewDecoder(r.Body).Decode(&gotReq))
			fmt.Fprint(w, `{"results":[{"title":"Village Park Restaurant","url":"https://example.com","content":"Famous nasi lemak.","score":0.97}]}`)
		})

		results, err := cli.Search(ctx, "best nasi lemak in KL", 3)
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, "Village Park Restaurant", results[0].Title)

		assert.Equal(t, "tvly-test", gotReq.APIKey)
		assert.Equal(t, "best nasi lemak in KL", gotReq.Query)
		assert.Equal(t, 3, gotReq.MaxResults)
		assert.Equal(t, "basic", gotReq.SearchDepth)
	})

	t.Run("非200状态报搜索失败", func(t *testing.T) {
		_, cli := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
			fmt.Fprint(w, `{"detail":"rate limited"}`)
		})

		_, err := cli.Search(ctx, "laksa", 5)
		require.Error(t, err)
		assert.True(t, errors.IsCode(err, errors.ErrWebSearchFailed))
	})
}

func TestFindRestaurantsTool(t *testing.T) {
	ctx := context.Background()

	t.Run("拼接菜品与地点作为查询", func(t *testing.T) {
		var gotReq searchRequest
		_, cli := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, sonic.ConfigDefault.NewDecoder(r.Body).Decode(&gotReq))
			fmt.Fprint(w, `{"results":[{"title":"Penang Café","url":"https://example.com","content":"Char koay teow specialist.","score":0.9}]}`)
		})
		tool := NewTool(cli)

		out, err := tool.Execute(ctx, `{"dish_or_cuisine":"Char Koay Teow","location":"Penang"}`)
		require.NoError(t, err)
		assert.Equal(t, "best restaurants serving Char Koay Teow in Penang", gotReq.Query)
		assert.Contains(t, out, `"status":"success"`)
		assert.Contains(t, out, "Penang Café")
	})

	t.Run("未给地点时默认马来西亚", func(t *testing.T) {
		var gotReq searchRequest
		_, cli := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, sonic.ConfigDefault.NewDecoder(r.Body).Decode(&gotReq))
			fmt.Fprint(w, `{"results":[]}`)
		})
		tool := NewTool(cli)

		out, err := tool.Execute(ctx, `{"dish_or_cuisine":"Laksa"}`)
		require.NoError(t, err)
		assert.Equal(t, "best restaurants serving Laksa in Malaysia", gotReq.Query)
		assert.Contains(t, out, `"status":"not_found"`)
	})

	t.Run("空菜品参数拒绝", func(t *testing.T) {
		tool := NewTool(NewClient("tvly-test", ""))
		_, err := tool.Execute(ctx, `{"dish_or_cuisine":"  "}`)
		require.Error(t, err)
		assert.True(t, errors.IsCode(err, errors.ErrInvalidParameter))
	})

	t.Run("未知参数字段拒绝", func(t *testing.T) {
		tool := NewTool(NewClient("tvly-test", ""))
		_, err := tool.Execute(ctx, `{"dish_or_cuisine":"Laksa","price":"cheap"}`)
		require.Error(t, err)
		assert.True(t, errors.IsCode(err, errors.ErrInvalidParameter))
	})
}

func TestFindHalalRestaurantsTool(t *testing.T) {
	ctx := context.Background()

	t.Run("带地点的清真查询", func(t *testing.T) {
		var gotReq searchRequest
		_, cli := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, sonic.ConfigDefault.NewDecoder(r.Body).Decode(&gotReq))
			fmt.Fprint(w, `{"results":[{"title":"Restoran Rebung","url":"https://example.com","content":"Halal Malay buffet.","score":0.95}]}`)
		})
		tool := NewHalalTool(cli)

		out, err := tool.Execute(ctx, `{"location":"Kuala Lumpur"}`)
		require.NoError(t, err)
		assert.Equal(t, "best halal certified restaurants in Kuala Lumpur", gotReq.Query)
		assert.Contains(t, out, `"status":"success"`)
	})

	t.Run("无地点时默认马来西亚", func(t *testing.T) {
		var gotReq searchRequest
		_, cli := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, sonic.ConfigDefault.NewDecoder(r.Body).Decode(&gotReq))
			fmt.Fprint(w, `{"results":[]}`)
		})
		tool := NewHalalTool(cli)

		out, err := tool.Execute(ctx, `{}`)
		require.NoError(t, err)
		assert.Equal(t, "best halal certified restaurants in Malaysia", gotReq.Query)
		assert.Contains(t, out, `"status":"not_found"`)
	})
}

func TestTools(t *testing.T) {
	tools := Tools(NewClient("tvly-test", ""))
	require.Len(t, tools, 2)
	assert.Equal(t, "find_restaurants", tools[0].Info().Name)
	assert.Equal(t, "find_halal_restaurants", tools[1].Info().Name)
}
