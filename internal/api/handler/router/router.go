package router

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

// Middleware envolve o handler de uma rota.
type Middleware = func(http.Handler) http.Handler

type Route struct {
	Path        string
	Method      string
	Handler     http.Handler
	Middlewares []Middleware
}

type Router struct {
	router *httprouter.Router
}

type ConfigRouter func(router *Router)

func WithRoutes(routes ...Route) ConfigRouter {
	return func(router *Router) {
		router.AddRoutes(routes...)
	}
}

// Group aplica os middlewares padrão do grupo às rotas que não definem
// os seus próprios. Uma rota com middlewares explícitos substitui o
// padrão por inteiro.
func Group(routes []Route, defaults ...Middleware) []Route {
	for i := range routes {
		if len(routes[i].Middlewares) == 0 {
			routes[i].Middlewares = defaults
		}
	}
	return routes
}

func New(configs ...ConfigRouter) Router {
	router := &Router{
		router: httprouter.New(),
	}

	for _, config := range configs {
		config(router)
	}

	return *router
}

func (r Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.router.ServeHTTP(w, req)
}

// AddRoutes registra as rotas com seus middlewares, aplicados do último
// para o primeiro.
func (r Router) AddRoutes(routes ...Route) {
	for _, route := range routes {
		var handler http.Handler = route.Handler

		for i := len(route.Middlewares) - 1; i >= 0; i-- {
			middleware := route.Middlewares[i]
			handler = middleware(handler)
		}

		r.router.Handler(route.Method, route.Path, handler)
	}
}
