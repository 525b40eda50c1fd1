package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func tagMiddleware(header, value string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Add(header, value)
			next.ServeHTTP(w, r)
		})
	}
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestGroup(t *testing.T) {
	t.Run("Rota sem middlewares herda o padrão do grupo", func(t *testing.T) {
		routes := Group([]Route{
			{Path: "/a", Method: http.MethodGet, Handler: okHandler()},
		}, tagMiddleware("X-Chain", "padrao"))

		r := New(WithRoutes(routes...))

		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/a", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "padrao", rec.Header().Get("X-Chain"))
	})

	t.Run("Rota com middlewares próprios substitui o padrão por inteiro", func(t *testing.T) {
		routes := Group([]Route{
			{
				Path:        "/b",
				Method:      http.MethodGet,
				Handler:     okHandler(),
				Middlewares: []Middleware{tagMiddleware("X-Chain", "proprio")},
			},
		}, tagMiddleware("X-Chain", "padrao"))

		r := New(WithRoutes(routes...))

		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/b", nil))

		assert.Equal(t, []string{"proprio"}, rec.Header().Values("X-Chain"))
	})
}

func TestAddRoutes(t *testing.T) {
	t.Run("Middlewares são aplicados na ordem declarada", func(t *testing.T) {
		r := New(WithRoutes(Route{
			Path:    "/c",
			Method:  http.MethodGet,
			Handler: okHandler(),
			Middlewares: []Middleware{
				tagMiddleware("X-Chain", "primeiro"),
				tagMiddleware("X-Chain", "segundo"),
			},
		}))

		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/c", nil))

		assert.Equal(t, []string{"primeiro", "segundo"}, rec.Header().Values("X-Chain"))
	})
}
