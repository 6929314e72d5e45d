package catalog

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"romix/pkg/kit"
)

type Server struct {
	Store *Store
	Log   *zap.Logger
}

// Register mounts the catalog routes on r.
func (s *Server) Register(r chi.Router) {
	r.Get("/products", s.list)
	r.Get("/products/{slug}", s.get)
	r.Get("/search", s.search)
}

func (s *Server) list(w http.ResponseWriter, r *http.Request) {
	var (
		products []Product
		err      error
	)
	if section := r.URL.Query().Get("section"); section != "" {
		products, err = s.Store.Section(section)
	} else {
		products, err = s.Store.All()
	}
	if err != nil {
		if s.Log != nil {
			s.Log.Error("list products failed", zap.Error(err))
		}
		kit.WriteError(w, r, http.StatusInternalServerError, "server error", nil)
		return
	}
	if products == nil {
		products = []Product{}
	}
	kit.WriteJSON(w, http.StatusOK, products)
}

func (s *Server) get(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	p, ok, err := s.Store.BySlug(slug)
	if err != nil {
		if s.Log != nil {
			s.Log.Error("get product failed", zap.Error(err), zap.String("slug", slug))
		}
		kit.WriteError(w, r, http.StatusInternalServerError, "server error", nil)
		return
	}
	if !ok {
		kit.WriteError(w, r, http.StatusNotFound, "product not found", map[string]any{"slug": slug})
		return
	}
	kit.WriteJSON(w, http.StatusOK, p)
}

func (s *Server) search(w http.ResponseWriter, r *http.Request) {
	results, err := s.Store.Search(r.URL.Query().Get("q"))
	if err != nil {
		if s.Log != nil {
			s.Log.Error("search failed", zap.Error(err))
		}
		kit.WriteError(w, r, http.StatusInternalServerError, "server error", nil)
		return
	}
	kit.WriteJSON(w, http.StatusOK, results)
}
