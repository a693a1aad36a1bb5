package embedding

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Malowking/selera/core/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	tests := []struct {
		name    string
		apiKey  string
		baseURL string
		model   string
		wantErr bool
	}{
		{"配置齐全", "sk-test", "https://api.example.com/v1", "text-embedding-v3", false},
		{"缺少apiKey", "", "https://api.example.com/v1", "text-embedding-v3", true},
		{"缺少baseURL", "sk-test", "", "text-embedding-v3", true},
		{"缺少model", "sk-test", "https://api.example.com/v1", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cli, err := NewClient(tt.apiKey, tt.baseURL, tt.model)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsCode(err, errors.ErrInvalidParameter))
				assert.Nil(t, cli)
			} else {
				require.NoError(t, err)
				assert.NotNil(t, cli)
			}
		})
	}
}

func TestEmbedStrings(t *testing.T) {
	ctx := context.Background()

	t.Run("请求携带dimensions并按index归位", func(t *testing.T) {
		var gotReq embeddingRequest
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/embeddings", r.URL.Path)
			assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))

			// 乱序返回，index字段负责归位
			fmt.Fprint(w, `{"data":[
				{"embedding":[0.5,0.6],"index":1,"object":"embedding"},
				{"embedding":[0.1,0.2],"index":0,"object":"embedding"}
			],"model":"text-embedding-v3","object":"list"}`)
		}))
		defer server.Close()

		cli, err := NewClient("sk-test", server.URL, "text-embedding-v3")
		require.NoError(t, err)

		vectors, err := cli.EmbedStrings(ctx, []string{"nasi lemak", "laksa"}, 2)
		require.NoError(t, err)
		require.Len(t, vectors, 2)
		assert.Equal(t, []float32{0.1, 0.2}, vectors[0])
		assert.Equal(t, []float32{0.5, 0.6}, vectors[1])

		require.NotNil(t, gotReq.Dimensions)
		assert.Equal(t, 2, *gotReq.Dimensions)
		assert.Equal(t, "text-embedding-v3", gotReq.Model)
		assert.Equal(t, []string{"nasi lemak", "laksa"}, gotReq.Input)
	})

	t.Run("空输入不发请求", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Error("unexpected request for empty input")
		}))
		defer server.Close()

		cli, err := NewClient("sk-test", server.URL, "text-embedding-v3")
		require.NoError(t, err)

		vectors, err := cli.EmbedStrings(ctx, nil, 1024)
		require.NoError(t, err)
		assert.Empty(t, vectors)
	})

	t.Run("API错误响应带上错误信息", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			fmt.Fprint(w, `{"error":{"message":"invalid api key","type":"invalid_request_error"}}`)
		}))
		defer server.Close()

		cli, err := NewClient("sk-test", server.URL, "text-embedding-v3")
		require.NoError(t, err)

		_, err = cli.EmbedStrings(ctx, []string{"laksa"}, 1024)
		require.Error(t, err)
		assert.True(t, errors.IsCode(err, errors.ErrEmbeddingFailed))
		assert.Contains(t, err.Error(), "invalid api key")
	})

	t.Run("返回数量与输入不一致时报错", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"data":[{"embedding":[0.1],"index":0,"object":"embedding"}],"model":"m","object":"list"}`)
		}))
		defer server.Close()

		cli, err := NewClient("sk-test", server.URL, "text-embedding-v3")
		require.NoError(t, err)

		_, err = cli.EmbedStrings(ctx, []string{"a", "b"}, 1)
		require.Error(t, err)
		assert.True(t, errors.IsCode(err, errors.ErrEmbeddingFailed))
	})

	t.Run("服务不可达时报错", func(t *testing.T) {
		cli, err := NewClient("sk-test", "http://127.0.0.1:1", "text-embedding-v3")
		require.NoError(t, err)

		_, err = cli.EmbedStrings(ctx, []string{"laksa"}, 1024)
		require.Error(t, err)
		assert.True(t, errors.IsCode(err, errors.ErrEmbeddingFailed))
	})
}
