package router

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

// Dispatch resolve segmentos fixos que ocupam a mesma posição de um parâmetro.
// O httprouter não aceita "/itens/resumo" e "/itens/:id" no mesmo método, então
// a rota é registrada só com o parâmetro e o valor decide o handler.
// Sem fallback, valores fora de static respondem como rota inexistente.
func Dispatch(param string, static map[string]http.Handler, fallback http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		value := httprouter.ParamsFromContext(r.Context()).ByName(param)
		if handler, ok := static[value]; ok {
			handler.ServeHTTP(w, r)
			return
		}
		if fallback == nil {
			notFound(w, r)
			return
		}
		fallback.ServeHTTP(w, r)
	})
}
