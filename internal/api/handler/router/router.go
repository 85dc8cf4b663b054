package router

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/memotag-sales-api/pkg/apiErrors"
)

var (
	WithRoutes = func(routes ...Route) ConfigRouter {
		return func(router *Router) {
			router.AddRoutes(routes...)
		}
	}
)

type Route struct {
	Path        string
	Method      string
	Handler     http.Handler
	Middlewares []func(http.Handler) http.Handler // Lista de middlewares específicos para esta rota
}

type Router struct {
	router *httprouter.Router
	paths  *[]string
}

type ConfigRouter func(router *Router)

func New(configs ...ConfigRouter) Router {
	router := &Router{
		router: httprouter.New(),
		paths:  &[]string{},
	}

	// Respostas de rota inexistente e método não permitido seguem o formato de erro da API
	router.router.NotFound = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiErrors.WriteError(w, apiErrors.ErrNotFound, "Endpoint não encontrado: "+r.URL.Path, nil)
	})
	router.router.MethodNotAllowed = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiErrors.WriteError(w, apiErrors.ErrMethodNotAllowed, "Método "+r.Method+" não permitido em "+r.URL.Path, nil)
	})

	for _, config := range configs {
		config(router)
	}

	return *router
}

func (r Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.router.ServeHTTP(w, req)
}

// AddRoutes adiciona rotas ao router com seus middlewares específicos
func (r Router) AddRoutes(routes ...Route) {
	for _, route := range routes {
		var handler http.Handler = route.Handler

		// Aplicar middlewares específicos da rota, do último para o primeiro
		for i := len(route.Middlewares) - 1; i >= 0; i-- {
			middleware := route.Middlewares[i]
			handler = middleware(handler)
		}

		r.router.Handler(route.Method, route.Path, handler)
		*r.paths = append(*r.paths, route.Path)
	}
}

// Paths retorna os caminhos registrados, na ordem de registro
func (r Router) Paths() []string {
	paths := make([]string, len(*r.paths))
	copy(paths, *r.paths)
	return paths
}
