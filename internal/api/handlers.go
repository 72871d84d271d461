package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/starford/fxda/internal/apperr"
	"github.com/starford/fxda/internal/assemble"
	"github.com/starford/fxda/internal/catalog"
	"github.com/starford/fxda/internal/events"
	"github.com/starford/fxda/internal/store"
)

// Handler holds API route handlers.
type Handler struct {
	gen     *assemble.Generator
	reg     *catalog.Registry
	content store.Provider
	broker  *events.Broker

	// blockDelay spaces out streamed block records. Purely presentational;
	// zero means no delay.
	blockDelay time.Duration
}

// NewHandler creates a new Handler. broker may be nil (no change events).
func NewHandler(gen *assemble.Generator, reg *catalog.Registry, content store.Provider, broker *events.Broker, blockDelay time.Duration) *Handler {
	return &Handler{gen: gen, reg: reg, content: content, broker: broker, blockDelay: blockDelay}
}

// decodeLenient decodes a JSON body into v, treating malformed or missing
// payloads as the zero value. The AI endpoints accept any input and resolve
// it to defaults rather than rejecting it.
func decodeLenient(r *http.Request, v any) {
	_ = json.NewDecoder(r.Body).Decode(v)
}

// Generate handles POST /ai/generate: one-shot template construction with
// the full field set attached.
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	var req GenerateRequest
	decodeLenient(r, &req)

	tpl := h.gen.Generate(req.Prompt)
	writeJSON(w, http.StatusOK, tpl)
}

// SuggestFields handles POST /ai/suggest-fields: analyzes assembled page
// text and returns fields to merge into a template.
func (h *Handler) SuggestFields(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	var req SuggestFieldsRequest
	decodeLenient(r, &req)

	fields := assemble.SuggestFields(req.Content)
	writeJSON(w, http.StatusOK, SuggestFieldsResponse{Fields: fields})
}

// RewriteBlock handles POST /ai/rewrite-block: the mock AI text rewrite.
func (h *Handler) RewriteBlock(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	var req RewriteBlockRequest
	decodeLenient(r, &req)

	writeJSON(w, http.StatusOK, RewriteBlockResponse{Text: assemble.RewriteBlock(req.Text, req.Style)})
}

// ListWorkflows handles GET /workflows.
func (h *Handler) ListWorkflows(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, catalog.Presets())
}

// ListTemplates handles GET /templates.
func (h *Handler) ListTemplates(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, h.reg.List())
}

// GetTemplate handles GET /templates/{id}.
func (h *Handler) GetTemplate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	entry, err := h.reg.Get(id)
	if err != nil {
		writeJSON(w, http.StatusNotFound, errorBody("template not found"))
		return
	}
	writeJSON(w, http.StatusOK, entry)
}

// validPresetRef reports whether the workflow preset reference resolves.
// An empty reference is fine; presets are optional on a template.
func validPresetRef(id string) bool {
	if id == "" {
		return true
	}
	_, ok := catalog.PresetByID(id)
	return ok
}

// CreateTemplate handles POST /templates.
func (h *Handler) CreateTemplate(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 10<<20)
	var req TemplateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid JSON body"))
		return
	}
	if req.Name == "" {
		writeJSON(w, http.StatusBadRequest, errorBody("name is required"))
		return
	}
	if !validPresetRef(req.WorkflowPresetID) {
		writeJSON(w, http.StatusBadRequest, errorBody("unknown workflow preset"))
		return
	}

	entry := h.reg.Create(catalog.Entry{
		Name:             req.Name,
		Description:      req.Description,
		Category:         req.Category,
		Tags:             req.Tags,
		WorkflowPresetID: req.WorkflowPresetID,
		FXDA:             req.FXDA,
	})
	if h.broker != nil {
		h.broker.PublishTemplateEvent("created", entry.ID)
	}
	writeJSON(w, http.StatusCreated, entry)
}

// UpdateTemplate handles PUT /templates/{id}.
func (h *Handler) UpdateTemplate(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 10<<20)
	id := chi.URLParam(r, "id")
	var req TemplateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid JSON body"))
		return
	}
	if !validPresetRef(req.WorkflowPresetID) {
		writeJSON(w, http.StatusBadRequest, errorBody("unknown workflow preset"))
		return
	}

	entry, err := h.reg.Update(id, catalog.Entry{
		Name:             req.Name,
		Description:      req.Description,
		Category:         req.Category,
		Tags:             req.Tags,
		WorkflowPresetID: req.WorkflowPresetID,
		FXDA:             req.FXDA,
		Validated:        req.Validated,
	})
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, errorBody("template not found"))
		} else {
			slog.Error("update template failed", slog.String("id", id), slog.String("error", err.Error()))
			writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		}
		return
	}
	if h.broker != nil {
		h.broker.PublishTemplateEvent("updated", entry.ID)
	}
	writeJSON(w, http.StatusOK, entry)
}

// DeleteTemplate handles DELETE /templates/{id}.
func (h *Handler) DeleteTemplate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.reg.Delete(id); err != nil {
		writeJSON(w, http.StatusNotFound, errorBody("template not found"))
		return
	}
	if h.broker != nil {
		h.broker.PublishTemplateEvent("deleted", id)
	}
	w.WriteHeader(http.StatusNoContent)
}

// GetContent handles GET /content: the full content dictionary.
func (h *Handler) GetContent(w http.ResponseWriter, r *http.Request) {
	dict, err := h.content.GetAll()
	if err != nil {
		slog.Error("read content failed", slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorBody("Failed to read content"))
		return
	}
	writeJSON(w, http.StatusOK, dict)
}

// UpdateContent handles POST /content: merges arbitrary key→string updates
// into the dictionary and rewrites it whole.
func (h *Handler) UpdateContent(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	var updates map[string]string
	if err := json.NewDecoder(r.Body).Decode(&updates); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid JSON body"))
		return
	}

	keys, err := h.content.Merge(updates)
	if err != nil {
		slog.Error("save content failed", slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, ContentUpdateResponse{Success: false, Error: "Failed to save content"})
		return
	}
	if h.broker != nil {
		h.broker.PublishContentEvent(keys)
	}
	writeJSON(w, http.StatusOK, ContentUpdateResponse{Success: true, Updated: keys})
}
