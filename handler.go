package contactform

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Handler serves the hosting page and the form submission endpoint for one
// widget instance.
type Handler struct {
	ctrl *Controller
	log  *slog.Logger
}

// NewHandler creates a Handler around the given controller.
func NewHandler(ctrl *Controller, log *slog.Logger) *Handler {
	if ctrl == nil {
		panic("contactform: nil controller")
	}
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Handler{ctrl: ctrl, log: log}
}

// Routes mounts the widget:
//
//	GET  /         render the page hosting the form
//	POST /contact  apply posted fields and attempt a submission
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.showForm)
	r.Post("/contact", h.submit)
	return r
}

func (h *Handler) showForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, r)
}

func (h *Handler) submit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form data", http.StatusBadRequest)
		return
	}

	for _, field := range TextFields() {
		// Field names are the closed enumeration, so set cannot fail here.
		_ = h.ctrl.SetField(field, r.PostFormValue(string(field)))
	}
	h.ctrl.SetConsent(r.PostFormValue("consent") != "")

	if err := h.ctrl.Submit(r.Context()); err != nil {
		// The controller already surfaced the user-facing message in its
		// status; this log line is diagnostic only.
		h.log.WarnContext(r.Context(), "contact submission not delivered", slog.Any("error", err))
	}

	h.render(w, r)
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := Page(h.ctrl.Snapshot()).Render(r.Context(), w); err != nil {
		h.log.ErrorContext(r.Context(), "failed to render contact page", slog.Any("error", err))
	}
}
