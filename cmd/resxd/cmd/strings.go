package cmd

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/resxkit/pkg/catalog"
	"github.com/dmitrymomot/resxkit/pkg/editor"
	"github.com/dmitrymomot/resxkit/pkg/localizer"
	"github.com/dmitrymomot/resxkit/pkg/logger"
)

type stringValue struct {
	Name  string `json:"name"`
	Value string `json:"value"`
	Found bool   `json:"found"`
}

// stringsHandler resolves names of the resource in the URL for the request culture.
// Only paths present in the catalog are resolved, so arbitrary request paths never
// reach the shared cache or the file watchers.
func stringsHandler(f *localizer.Factory, cat *catalog.Catalog, log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		path := chi.URLParam(r, "path")
		if !cat.Has(path) {
			writeResponse(w, http.StatusNotFound, editor.JSONResponse{Error: &editor.ErrorDetail{Code: "not_found", Message: localizer.ErrMissingManifest.Error()}})
			return
		}

		res, err := f.Create(path)
		if err != nil {
			writeResponse(w, http.StatusBadRequest, editor.JSONResponse{Error: &editor.ErrorDetail{Code: "bad_request", Message: err.Error()}})
			return
		}

		if name := r.URL.Query().Get("name"); name != "" {
			s := res.Get(r.Context(), name)
			writeResponse(w, http.StatusOK, editor.JSONResponse{Data: stringValue{Name: s.Name, Value: s.Value, Found: s.Found}})
			return
		}

		all, err := res.GetAll(r.Context(), r.URL.Query().Has("parents"))
		switch {
		case errors.Is(err, localizer.ErrMissingManifest):
			writeResponse(w, http.StatusNotFound, editor.JSONResponse{Error: &editor.ErrorDetail{Code: "not_found", Message: err.Error()}})
			return
		case err != nil:
			log.ErrorContext(r.Context(), "listing strings failed", logger.Resource(res.Path()), logger.Error(err))
			writeResponse(w, http.StatusInternalServerError, editor.JSONResponse{Error: &editor.ErrorDetail{Code: "internal_error", Message: http.StatusText(http.StatusInternalServerError)}})
			return
		}

		values := make(map[string]string)
		for s := range all {
			values[s.Name] = s.Value
		}
		writeResponse(w, http.StatusOK, editor.JSONResponse{Data: values})
	}
}

func writeResponse(w http.ResponseWriter, status int, body editor.JSONResponse) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
