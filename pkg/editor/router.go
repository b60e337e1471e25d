package editor

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/resxkit/pkg/logger"
)

// maxBodySize bounds a submitted edit set.
const maxBodySize = 4 << 20

// Router exposes the editor over HTTP:
//
//	GET  /      ids of every base resource
//	GET  /{id}  editable entries of id for the request culture
//	POST /{id}  merge a JSON array of entries into the override of the request culture
//
// The request culture comes from the context, normally set by i18n.Middleware.
func (e *Editor) Router() chi.Router {
	r := chi.NewRouter()
	r.Get("/", e.handleList)
	r.Get("/{id}", e.handleLoad)
	r.Post("/{id}", e.handleSave)
	return r
}

func (e *Editor) handleList(w http.ResponseWriter, r *http.Request) {
	ids, err := e.List(r.Context())
	if err != nil {
		e.fail(w, r, err)
		return
	}
	if ids == nil {
		ids = []string{}
	}
	writeData(w, ids)
}

func (e *Editor) handleLoad(w http.ResponseWriter, r *http.Request) {
	entries, err := e.Load(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		e.fail(w, r, err)
		return
	}
	if entries == nil {
		entries = []Entry{}
	}
	writeData(w, entries)
}

func (e *Editor) handleSave(w http.ResponseWriter, r *http.Request) {
	var edits []Entry
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodySize))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&edits); err != nil {
		e.fail(w, r, errors.Join(errBadRequest, err))
		return
	}

	saved, err := e.Save(r.Context(), chi.URLParam(r, "id"), edits)
	if err != nil {
		e.fail(w, r, err)
		return
	}
	writeData(w, saved)
}

func (e *Editor) fail(w http.ResponseWriter, r *http.Request, err error) {
	if toHTTPError(err) == errInternal {
		e.logger.ErrorContext(r.Context(), "editor request failed", logger.Error(err))
	}
	writeError(w, err)
}
