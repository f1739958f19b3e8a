// Package router registra as rotas da API no httprouter, cada uma com a
// própria cadeia de middlewares.
package router

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/justinas/alice"
	"github.com/vfg2006/restaurant-manager-api/pkg/apiErrors"
)

type Route struct {
	Path    string
	Method  string
	Handler http.Handler
	// executados na ordem da lista, antes do handler
	Middlewares []func(http.Handler) http.Handler
}

type Router struct {
	mux *httprouter.Router
}

type Option func(r *Router)

// WithRoutes registra um grupo de rotas
func WithRoutes(routes ...Route) Option {
	return func(r *Router) {
		r.AddRoutes(routes...)
	}
}

// New cria o roteador. Caminhos sem rota e métodos não suportados respondem
// no mesmo formato de erro dos handlers.
func New(options ...Option) *Router {
	mux := httprouter.New()
	mux.HandleMethodNotAllowed = true
	mux.NotFound = http.HandlerFunc(notFound)
	mux.MethodNotAllowed = http.HandlerFunc(methodNotAllowed)

	r := &Router{mux: mux}
	for _, option := range options {
		option(r)
	}
	return r
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.mux.ServeHTTP(w, req)
}

// AddRoutes monta a cadeia de cada rota. O httprouter entra em pânico com
// caminho repetido no mesmo método, o que aparece já na inicialização.
func (r *Router) AddRoutes(routes ...Route) {
	for _, route := range routes {
		chain := alice.New()
		for _, m := range route.Middlewares {
			chain = chain.Append(m)
		}
		r.mux.Handler(route.Method, route.Path, chain.Then(route.Handler))
	}
}

func notFound(w http.ResponseWriter, _ *http.Request) {
	apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "rota não encontrada", nil)
}

// o httprouter já preencheu o cabeçalho Allow
func methodNotAllowed(w http.ResponseWriter, _ *http.Request) {
	apiErrors.WriteError(w, apiErrors.ErrMethodNotAllowed, "método não suportado", nil)
}
