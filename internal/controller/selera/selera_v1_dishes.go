package selera

import (
	"context"

	v1 "github.com/Malowking/selera/api/selera/v1"
	"github.com/Malowking/selera/internal/logic/dishes"
	"github.com/gogf/gf/v2/frame/g"
)

func (c *ControllerV1) DishSearch(ctx context.Context, req *v1.DishSearchReq) (res *v1.DishSearchRes, err error) {
	g.Log().Infof(ctx, "DishSearch request received - Query: %s, Limit: %d", req.Query, req.Limit)
	return dishes.Search(ctx, req)
}

func (c *ControllerV1) CuisineBrowse(ctx context.Context, req *v1.CuisineBrowseReq) (res *v1.CuisineBrowseRes, err error) {
	g.Log().Infof(ctx, "CuisineBrowse request received - Cuisine: %s, Limit: %d, Exhaustive: %v", req.Cuisine, req.Limit, req.Exhaustive)
	return dishes.Browse(ctx, req)
}
