package web

import (
	"context"

	"github.com/iris-contrib/middleware/cors"
	"github.com/kataras/iris/v12"
	"github.com/kataras/iris/v12/middleware/recover"
	log "github.com/sirupsen/logrus"
	"medcost-api/internal/auth"
	"medcost-api/internal/contacts"
	"medcost-api/internal/predict"
)

// Pinger reports datastore reachability for the health route.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Router struct {
	App         *iris.Application
	Accounts    *auth.Service
	Contacts    *contacts.Service
	Predictor   *predict.Client
	DB          Pinger
	CORSOrigins []string
	Routes      []*Route
}

func NewRouter(accounts *auth.Service, contactSvc *contacts.Service, predictor *predict.Client) *Router {
	router := &Router{
		App:       iris.New(),
		Accounts:  accounts,
		Contacts:  contactSvc,
		Predictor: predictor,
	}
	// handlers always write their own JSON error body
	router.App.Configure(iris.WithoutAutoFireStatusCode)
	router.App.Logger().SetLevel("disable")
	return router
}

func (r *Router) Init() {
	if len(r.CORSOrigins) > 0 {
		log.Infof("Cross Origin requests allowed for %v", r.CORSOrigins)
		r.App.UseRouter(cors.New(cors.Options{
			AllowedOrigins: r.CORSOrigins,
			AllowedMethods: []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders: []string{"Content-Type", "Accept", RequestIDHeader},
		}))
	}

	r.App.UseRouter(recover.New())
	r.App.Use(RequestIDMiddleware)
	r.App.Use(ProxyIPMiddleware)
	r.App.Use(RequestLogger)

	r.Routes = append(r.Routes, addRouteAuth(r)...)
	r.Routes = append(r.Routes, addRouteContact(r)...)
	r.Routes = append(r.Routes, addRoutePredict(r)...)
	r.Routes = append(r.Routes, addRouteHealth(r)...)

	log.Infof("Found %d route(s).", len(r.Routes))
	r.LoadRoutes()
}

func (r *Router) LoadRoutes() {
	for n := range r.Routes {
		v := r.Routes[n]

		handler := func(ctx iris.Context) {
			if err := v.Func(ctx); err != nil {
				log.WithField("request_id", RequestID(ctx)).Errorf("%s: %v", v.Name, err)
			}
		}

		switch v.Type {
		case RouteType_GET:
			r.App.Get(v.Path, handler)
		case RouteType_POST:
			r.App.Post(v.Path, handler)
		default:
			log.Warnf("unsupported route type %s for %s - %s", v.Type, v.Name, v.Path)
			continue
		}
		log.Debugf("Loaded route: %s (%s) - %s", v.Name, v.Type, v.Path)
	}
}

func (r *Router) Listen(host string) error {
	return r.App.Listen(host, iris.WithoutServerError(iris.ErrServerClosed), iris.WithoutStartupLog, iris.WithoutInterruptHandler)
}

func (r *Router) Shutdown(ctx context.Context) error {
	return r.App.Shutdown(ctx)
}
