package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/starford/fxda/internal/assemble"
)

// GenerateStream handles POST /ai/generate/stream. It emits the phased
// construction sequence as newline-delimited JSON: one metadata record, one
// labels record, one record per content block, then a terminal done record
// carrying the assembled template with an empty field list.
//
// Record order is the contract; the inter-block delay is presentation only
// and is skipped when the client disconnects.
func (h *Handler) GenerateStream(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	var req StreamGenerateRequest
	decodeLenient(r, &req)

	records := h.gen.GenerateStream(req.Prompt, req.Options.derive())

	w.Header().Set("Content-Type", "application/x-ndjson")
	w.Header().Set("Cache-Control", "no-cache")
	w.WriteHeader(http.StatusOK)

	flusher, _ := w.(http.Flusher)
	enc := json.NewEncoder(w)

	for _, rec := range records {
		if rec.Type == assemble.RecordBlock && h.blockDelay > 0 {
			timer := time.NewTimer(h.blockDelay)
			select {
			case <-r.Context().Done():
				timer.Stop()
				return
			case <-timer.C:
			}
		}
		if err := enc.Encode(rec); err != nil {
			slog.Error("stream encode failed", slog.String("error", err.Error()))
			return
		}
		if flusher != nil {
			flusher.Flush()
		}
	}
}
