package site

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/ziadkadry99/docbrowser/internal/anchor"
	"github.com/ziadkadry99/docbrowser/internal/catalog"
	"github.com/ziadkadry99/docbrowser/internal/fetcher"
	"github.com/ziadkadry99/docbrowser/internal/prefs"
	"github.com/ziadkadry99/docbrowser/internal/render"
)

// shellData feeds pageTemplate.
type shellData struct {
	Title      string
	Subtitle   string
	Theme      prefs.Theme
	Categories []catalog.Category
}

// errorResponse is the JSON body of a failed API call. Kind tells the shell
// which panel to show.
type errorResponse struct {
	Error     string `json:"error"`
	Kind      string `json:"kind"`
	Module    string `json:"module,omitempty"`
	Requested string `json:"requested,omitempty"`
	Attempts  int    `json:"attempts,omitempty"`
}

// anchorResponse is the JSON response for the anchor endpoint.
type anchorResponse struct {
	Matched bool           `json:"matched"`
	Hash    string         `json:"hash"`
	Changed bool           `json:"changed"`
	Rule    string         `json:"rule,omitempty"`
	Heading anchor.Heading `json:"heading"`
	Index   int            `json:"index"`
}

type themeResponse struct {
	Theme prefs.Theme `json:"theme"`
}

func (s *Server) handleShell(w http.ResponseWriter, r *http.Request) {
	theme, err := s.prefs.Theme(r.Context())
	if err != nil {
		s.logger.Warn("reading theme preference", "err", err)
		theme = prefs.DefaultTheme
	}
	data := shellData{
		Title:      s.cfg.Title,
		Subtitle:   s.cfg.Subtitle,
		Theme:      theme,
		Categories: s.svc.Catalog().Categories(),
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.shell.Execute(w, data); err != nil {
		s.logger.Error("rendering shell", "err", err)
	}
}

func (s *Server) handleModules(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"categories": s.svc.Catalog().Categories(),
		"root":       s.svc.Root().String(),
	})
}

func (s *Server) handleModule(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	file, ok := fileParam(w, r)
	if !ok {
		return
	}

	page, err := s.svc.Load(r.Context(), id, file)
	if err != nil {
		writeJSON(w, statusFor(err), errorBody(id, err))
		return
	}
	writeJSON(w, http.StatusOK, page)
}

func (s *Server) handleAnchor(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	file, ok := fileParam(w, r)
	if !ok {
		return
	}
	hash := r.URL.Query().Get("hash")
	if hash == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "hash is required", Kind: "request"})
		return
	}

	page, err := s.svc.Load(r.Context(), id, file)
	if err != nil {
		writeJSON(w, statusFor(err), errorBody(id, err))
		return
	}
	res, matched := s.svc.Resolve(page, hash)
	writeJSON(w, http.StatusOK, newAnchorResponse(hash, res, matched))
}

func (s *Server) handleTheme(w http.ResponseWriter, r *http.Request) {
	theme, err := s.prefs.Theme(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error(), Kind: "storage"})
		return
	}
	writeJSON(w, http.StatusOK, themeResponse{Theme: theme})
}

func (s *Server) handleThemeToggle(w http.ResponseWriter, r *http.Request) {
	theme, err := s.prefs.ToggleTheme(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error(), Kind: "storage"})
		return
	}
	writeJSON(w, http.StatusOK, themeResponse{Theme: theme})
}

func newAnchorResponse(hash string, res anchor.Resolution, matched bool) anchorResponse {
	if !matched {
		return anchorResponse{Hash: hash, Index: -1}
	}
	out := anchorResponse{
		Matched: true,
		Hash:    hash,
		Changed: res.Changed,
		Rule:    res.Rule.String(),
		Heading: res.Heading,
		Index:   res.Index,
	}
	if res.Changed {
		out.Hash = "#" + res.Heading.ID
	}
	return out
}

// fileParam reads the optional sub-file index. A malformed value is answered
// with 400.
func fileParam(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := r.URL.Query().Get("file")
	if raw == "" {
		return 0, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "file must be a non-negative integer", Kind: "request"})
		return 0, false
	}
	return n, true
}

// statusFor maps a page load failure to an HTTP status.
func statusFor(err error) int {
	var renderErr *render.RenderError
	switch {
	case errors.Is(err, catalog.ErrModuleNotRegistered):
		return http.StatusNotFound
	case errors.Is(err, fetcher.ErrContentNotFound):
		return http.StatusBadGateway
	case errors.As(err, &renderErr):
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// errorBody describes a page load failure for the error panel.
func errorBody(id string, err error) errorResponse {
	body := errorResponse{Error: err.Error(), Kind: "internal", Module: id}
	var nf *fetcher.ContentNotFoundError
	var renderErr *render.RenderError
	switch {
	case errors.Is(err, catalog.ErrModuleNotRegistered):
		body.Kind = "module_not_registered"
	case errors.As(err, &nf):
		body.Kind = "content_not_found"
		body.Requested = nf.Requested
		body.Attempts = nf.Attempts
	case errors.As(err, &renderErr):
		body.Kind = "render_failure"
	}
	return body
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
