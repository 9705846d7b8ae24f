package web

import (
	"net/http"

	"github.com/kataras/iris/v12"
	"medcost-api/internal/predict"
)

func addRoutePredict(r *Router) []*Route {
	var tempRoutes []*Route

	tempRoutes = append(tempRoutes, &Route{
		Name: "Predict",
		Path: "/predict",
		Func: func(ctx iris.Context) error {
			var req predict.Request
			if err := ctx.ReadJSON(&req); err != nil {
				return writeMessage(ctx, http.StatusBadRequest, msgInvalidBody)
			}

			resp, err := r.Predictor.Predict(ctx.Request().Context(), req)
			if err != nil {
				return writeError(ctx, "web.Predict", err, msgPredictFailed)
			}

			ctx.ContentType(resp.ContentType)
			ctx.StatusCode(http.StatusOK)
			_, err = ctx.Write(resp.Body)
			return err
		},
		Type: RouteType_POST,
	})

	return tempRoutes
}
