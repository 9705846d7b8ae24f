package web

import (
	"net/http"

	"github.com/kataras/iris/v12"
)

type healthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}

func addRouteHealth(r *Router) []*Route {
	return []*Route{{
		Name: "Health",
		Path: "/health",
		Func: func(ctx iris.Context) error {
			out := healthResponse{Status: "ok", Database: "unknown"}
			if r.DB != nil {
				if err := r.DB.Ping(ctx.Request().Context()); err != nil {
					out.Database = "down"
				} else {
					out.Database = "up"
				}
			}
			return ctx.StopWithJSON(http.StatusOK, out)
		},
		Type: RouteType_GET,
	}}
}
