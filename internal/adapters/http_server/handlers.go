package httpserver

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"reviewlens/internal/adapters/observability"
	"reviewlens/internal/adapters/tabular"
	"reviewlens/internal/app"
	"reviewlens/internal/domain"
)

// Dashboard abstracts the HTML renderer so handlers stay testable
// without a chart library in the loop.
type Dashboard interface {
	Render(w http.ResponseWriter, rep domain.Report) error
}

type Handlers struct {
	Sessions *app.SessionService
	Board    Dashboard
	// Sem bounds concurrently running analysis passes; uploads and
	// report recomputes both go through it.
	Sem            *semaphore.Weighted
	MaxUploadBytes int64
	UploadRPS      int
}

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })
	s.mux.With(RateLimit(h.UploadRPS)).Post("/v1/uploads", h.upload)
	s.mux.Get("/v1/uploads/{id}/report", h.report)
	s.mux.Get("/v1/uploads/{id}/dashboard", h.dashboard)
	s.mux.Get("/v1/uploads/{id}/columns", h.columns)
}

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Detail: detail}); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

// calcETagAndBody marshals once and hashes once, returning both ETag and body.
func calcETagAndBody(v any) (string, []byte) {
	body, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal object for ETag/body")
		return "", nil
	}
	sum := sha1.Sum(body)
	etag := `W/"` + hex.EncodeToString(sum[:]) + `"`
	return etag, body
}

// paramsFromValues reads the analysis controls shared by the upload
// form and the report query string.
func paramsFromValues(v url.Values) app.Params {
	p := app.Params{
		Mapping: domain.ColumnMapping{
			Rating:  v.Get("rating_col"),
			Content: v.Get("content_col"),
			Date:    v.Get("date_col"),
			Variant: v.Get("variant_col"),
		},
	}
	if n, err := strconv.Atoi(v.Get("top_n")); err == nil && n > 0 {
		p.TopN = n
	}
	if n, err := strconv.Atoi(v.Get("min_count")); err == nil && n > 0 {
		p.MinCount = n
	}
	return p
}

func (h *Handlers) upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.MaxUploadBytes)

	file, header, err := r.FormFile("file")
	if err != nil {
		observability.ObserveUpload("unknown", "rejected")
		writeProblem(w, http.StatusBadRequest, "Invalid Upload", "expected a multipart form with a 'file' field: "+err.Error())
		return
	}
	defer file.Close()

	format := tabular.Format(header.Filename)
	table, err := tabular.Read(header.Filename, file)
	if err != nil {
		// reject the whole upload with one readable message;
		// never a partial dashboard
		observability.ObserveUpload(format, "parse_error")
		writeProblem(w, http.StatusBadRequest, "Unreadable File",
			"the file could not be read as tabular data: "+err.Error())
		return
	}
	observability.ObserveUpload(format, "ok")

	sess, err := h.Sessions.Create(r.Context(), header.Filename, table)
	if err != nil {
		writeProblem(w, http.StatusInternalServerError, "Upload Failed", err.Error())
		return
	}

	rep, err := h.analyze(r, sess.ID, paramsFromValues(r.Form))
	if err != nil {
		writeProblem(w, http.StatusInternalServerError, "Analysis Failed", err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(rep); err != nil {
		log.Error().Err(err).Msg("failed to write upload response")
	}
}

func (h *Handlers) report(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	rep, err := h.analyze(r, id, paramsFromValues(r.URL.Query()))
	if err != nil {
		h.writeAnalysisError(w, err)
		return
	}

	etag, body := calcETagAndBody(rep)
	if inm := r.Header.Get("If-None-Match"); inm != "" && inm == etag {
		w.Header().Set("ETag", etag)
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.Header().Set("ETag", etag)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Msg("failed to write report body")
	}
}

func (h *Handlers) dashboard(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	rep, err := h.analyze(r, id, paramsFromValues(r.URL.Query()))
	if err != nil {
		h.writeAnalysisError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.Board.Render(w, rep); err != nil {
		log.Error().Err(err).Msg("failed to render dashboard")
	}
}

func (h *Handlers) columns(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	mapping, err := h.Sessions.Suggest(r.Context(), id)
	if err != nil {
		h.writeAnalysisError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(mapping); err != nil {
		log.Error().Err(err).Msg("failed to write columns response")
	}
}

// analyze runs one bounded recomputation and records its duration.
func (h *Handlers) analyze(r *http.Request, id string, p app.Params) (domain.Report, error) {
	if err := h.Sem.Acquire(r.Context(), 1); err != nil {
		return domain.Report{}, err
	}
	defer h.Sem.Release(1)

	start := time.Now()
	rep, err := h.Sessions.Report(r.Context(), id, p)
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	observability.ObserveAnalysis(outcome, time.Since(start))
	return rep, err
}

func (h *Handlers) writeAnalysisError(w http.ResponseWriter, err error) {
	if errors.Is(err, domain.ErrSessionNotFound) {
		writeProblem(w, http.StatusNotFound, "Not Found", "unknown or expired upload id")
		return
	}
	writeProblem(w, http.StatusInternalServerError, "Analysis Failed", err.Error())
}
