// Package restaurant_finder 通过 Tavily 网络搜索查找马来西亚餐厅。
// 知识库只覆盖菜品本身，餐厅位置等实时信息走外部搜索。
package restaurant_finder

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/Malowking/selera/core/agent_tools"
	"github.com/Malowking/selera/core/errors"
	"github.com/bytedance/sonic"
	"github.com/bytedance/sonic/decoder"
	"github.com/cloudwego/eino/schema"
	"github.com/gogf/gf/v2/frame/g"
)

const defaultTavilyBaseURL = "https://api.tavily.com"

// Client Tavily搜索客户端
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewClient 创建Tavily客户端
func NewClient(apiKey, baseURL string) *Client {
	if baseURL == "" {
		baseURL = defaultTavilyBaseURL
	}
	return &Client{
		apiKey:  apiKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// NewClientFromConfig 从配置创建Tavily客户端，未配置apiKey时返回nil
func NewClientFromConfig(ctx context.Context) *Client {
	apiKey := g.Cfg().MustGet(ctx, "tavily.apiKey", "").String()
	if apiKey == "" {
		g.Log().Warning(ctx, "tavily.apiKey not configured, restaurant finder tool disabled")
		return nil
	}
	baseURL := g.Cfg().MustGet(ctx, "tavily.baseURL", defaultTavilyBaseURL).String()
	return NewClient(apiKey, baseURL)
}

type searchRequest struct {
	APIKey      string `json:"api_key"`
	Query       string `json:"query"`
	SearchDepth string `json:"search_depth"`
	MaxResults  int    `json:"max_results"`
}

type searchResponse struct {
	Results []searchResult `json:"results"`
}

type searchResult struct {
	Title   string  `json:"title"`
	URL     string  `json:"url"`
	Content string  `json:"content"`
	Score   float64 `json:"score"`
}

// Search 执行一次Tavily搜索
func (c *Client) Search(ctx context.Context, query string, maxResults int) ([]searchResult, error) {
	if maxResults <= 0 {
		maxResults = 5
	}

	reqBody, err := sonic.Marshal(&searchRequest{
		APIKey:      c.apiKey,
		Query:       query,
		SearchDepth: "basic",
		MaxResults:  maxResults,
	})
	if err != nil {
		return nil, errors.Wrap(errors.ErrWebSearchFailed, err, "failed to encode search request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/search", bytes.NewReader(reqBody))
	if err != nil {
		return nil, errors.Wrap(errors.ErrWebSearchFailed, err, "failed to build search request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(errors.ErrWebSearchFailed, err, "tavily request failed")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(errors.ErrWebSearchFailed, err, "failed to read tavily response")
	}

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Newf(errors.ErrWebSearchFailed, "tavily returned status %d: %s", resp.StatusCode, string(body))
	}

	var parsed searchResponse
	if err := sonic.Unmarshal(body, &parsed); err != nil {
		return nil, errors.Wrap(errors.ErrWebSearchFailed, err, "failed to decode tavily response")
	}
	return parsed.Results, nil
}

// Tools 返回基于同一Tavily客户端的全部餐厅查找工具
func Tools(client *Client) []agent_tools.Tool {
	return []agent_tools.Tool{
		NewTool(client),
		NewHalalTool(client),
	}
}

// Tool 餐厅查找工具
type Tool struct {
	client *Client
}

// NewTool 创建餐厅查找工具
func NewTool(client *Client) *Tool {
	return &Tool{client: client}
}

var _ agent_tools.Tool = (*Tool)(nil)

type findRestaurantsArgs struct {
	DishOrCuisine string  `json:"dish_or_cuisine"`
	Location      *string `json:"location"`
	MaxResults    *int    `json:"max_results"`
}

type restaurantHit struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Summary string `json:"summary"`
}

func (t *Tool) Info() *schema.ToolInfo {
	return &schema.ToolInfo{
		Name: "find_restaurants",
		Desc: "Search the web for restaurants serving a Malaysian dish or cuisine, optionally near a location. Use when the user asks where to eat something.",
		ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
			"dish_or_cuisine": {
				Type:     schema.String,
				Desc:     "The dish or cuisine to find restaurants for, e.g. 'Nasi Lemak' or 'Nyonya food'",
				Required: true,
			},
			"location": {
				Type: schema.String,
				Desc: "City or area to search in, e.g. 'Kuala Lumpur'",
			},
			"max_results": {
				Type: schema.Integer,
				Desc: "Maximum number of results, default 5",
			},
		}),
	}
}

func (t *Tool) Execute(ctx context.Context, argsJSON string) (string, error) {
	var args findRestaurantsArgs
	dec := decoder.NewDecoder(argsJSON)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&args); err != nil {
		return "", errors.Wrap(errors.ErrInvalidParameter, err, "malformed tool arguments")
	}
	if strings.TrimSpace(args.DishOrCuisine) == "" {
		return "", errors.New(errors.ErrInvalidParameter, "dish_or_cuisine must not be empty")
	}

	query := fmt.Sprintf("best restaurants serving %s", args.DishOrCuisine)
	if args.Location != nil && *args.Location != "" {
		query += " in " + *args.Location
	} else {
		query += " in Malaysia"
	}

	maxResults := 5
	if args.MaxResults != nil {
		maxResults = *args.MaxResults
	}

	g.Log().Infof(ctx, "[restaurant finder] query: %s", query)

	results, err := t.client.Search(ctx, query, maxResults)
	if err != nil {
		return "", err
	}
	if len(results) == 0 {
		return sonic.MarshalString(map[string]interface{}{
			"status": "not_found",
			"error":  map[string]string{"kind": "not_found", "message": "no restaurants found for that query"},
		})
	}

	hits := make([]restaurantHit, len(results))
	for i, r := range results {
		hits[i] = restaurantHit{Title: r.Title, URL: r.URL, Summary: r.Content}
	}
	return sonic.MarshalString(map[string]interface{}{
		"status": "success",
		"data":   hits,
	})
}

// HalalTool 清真餐厅查找工具。
// 与通用查找分开暴露，让模型在涉及清真饮食要求时直接选中它。
type HalalTool struct {
	client *Client
}

// NewHalalTool 创建清真餐厅查找工具
func NewHalalTool(client *Client) *HalalTool {
	return &HalalTool{client: client}
}

var _ agent_tools.Tool = (*HalalTool)(nil)

type findHalalArgs struct {
	Location   *string `json:"location"`
	MaxResults *int    `json:"max_results"`
}

func (t *HalalTool) Info() *schema.ToolInfo {
	return &schema.ToolInfo{
		Name: "find_halal_restaurants",
		Desc: "Search the web for halal-certified restaurants, optionally near a location. Use when the user needs halal dining options.",
		ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
			"location": {
				Type: schema.String,
				Desc: "City or area to search in, e.g. 'Penang'",
			},
			"max_results": {
				Type: schema.Integer,
				Desc: "Maximum number of results, default 5",
			},
		}),
	}
}

func (t *HalalTool) Execute(ctx context.Context, argsJSON string) (string, error) {
	var args findHalalArgs
	dec := decoder.NewDecoder(argsJSON)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&args); err != nil {
		return "", errors.Wrap(errors.ErrInvalidParameter, err, "malformed tool arguments")
	}

	query := "best halal certified restaurants"
	if args.Location != nil && *args.Location != "" {
		query += " in " + *args.Location
	} else {
		query += " in Malaysia"
	}

	maxResults := 5
	if args.MaxResults != nil {
		maxResults = *args.MaxResults
	}

	g.Log().Infof(ctx, "[restaurant finder] halal query: %s", query)

	results, err := t.client.Search(ctx, query, maxResults)
	if err != nil {
		return "", err
	}
	if len(results) == 0 {
		return sonic.MarshalString(map[string]interface{}{
			"status": "not_found",
			"error":  map[string]string{"kind": "not_found", "message": "no halal restaurants found for that location"},
		})
	}

	hits := make([]restaurantHit, len(results))
	for i, r := range results {
		hits[i] = restaurantHit{Title: r.Title, URL: r.URL, Summary: r.Content}
	}
	return sonic.MarshalString(map[string]interface{}{
		"status": "success",
		"data":   hits,
	})
}
