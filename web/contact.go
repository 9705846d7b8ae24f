package web

import (
	"net/http"

	"github.com/kataras/iris/v12"
	"medcost-api/internal/contacts"
)

func addRouteContact(r *Router) []*Route {
	var tempRoutes []*Route

	tempRoutes = append(tempRoutes, &Route{
		Name: "Submit Contact",
		Path: "/api/contact",
		Func: func(ctx iris.Context) error {
			var sub contacts.Submission
			if err := ctx.ReadJSON(&sub); err != nil {
				return writeMessage(ctx, http.StatusBadRequest, msgInvalidBody)
			}

			if _, err := r.Contacts.Submit(ctx.Request().Context(), sub); err != nil {
				return writeError(ctx, "web.SubmitContact", err, msgContactSaveFailed)
			}

			return writeMessage(ctx, http.StatusCreated, msgContactSaved)
		},
		Type: RouteType_POST,
	})

	tempRoutes = append(tempRoutes, &Route{
		Name: "List Contacts",
		Path: "/api/contact",
		Func: func(ctx iris.Context) error {
			all, err := r.Contacts.List(ctx.Request().Context())
			if err != nil {
				return writeError(ctx, "web.ListContacts", err, msgContactListFailed)
			}

			return ctx.StopWithJSON(http.StatusOK, all)
		},
		Type: RouteType_GET,
	})

	return tempRoutes
}
