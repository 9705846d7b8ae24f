package web

import (
	"net/http"

	"github.com/kataras/iris/v12"
	"medcost-api/internal/auth"
)

func addRouteAuth(r *Router) []*Route {
	var tempRoutes []*Route

	tempRoutes = append(tempRoutes, &Route{
		Name: "Signup",
		Path: "/api/signup",
		Func: func(ctx iris.Context) error {
			var reg auth.Register
			if err := ctx.ReadJSON(&reg); err != nil {
				return writeMessage(ctx, http.StatusBadRequest, msgInvalidBody)
			}

			if err := r.Accounts.Register(ctx.Request().Context(), reg); err != nil {
				return writeError(ctx, "web.Signup", err, msgRegisterFailed)
			}

			return writeMessage(ctx, http.StatusCreated, msgUserRegistered)
		},
		Type: RouteType_POST,
	})

	tempRoutes = append(tempRoutes, &Route{
		Name: "Login",
		Path: "/api/login",
		Func: func(ctx iris.Context) error {
			var l auth.Login
			if err := ctx.ReadJSON(&l); err != nil {
				return writeMessage(ctx, http.StatusBadRequest, msgInvalidBody)
			}

			user, err := r.Accounts.Authenticate(ctx.Request().Context(), l)
			if err != nil {
				return writeError(ctx, "web.Login", err, msgLoginFailed)
			}

			return ctx.StopWithJSON(http.StatusOK, loginResponse{
				Message: msgLoginSuccessful,
				Name:    user.FirstName,
			})
		},
		Type: RouteType_POST,
	})

	return tempRoutes
}
