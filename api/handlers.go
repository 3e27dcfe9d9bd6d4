package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/samber/lo"
	"github.com/vlctrack/vlctrack/constant"
	"github.com/vlctrack/vlctrack/history"
	"github.com/vlctrack/vlctrack/log"
	"github.com/vlctrack/vlctrack/tracker"
)

const codeDeletionFailed = "DELETION_FAILED"

type Handler struct {
	backend Backend
}

func NewHandler(backend Backend) *Handler {
	return &Handler{backend: backend}
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:  "ok",
		Version: constant.Version,
	})
}

func (h *Handler) Status(w http.ResponseWriter, r *http.Request) {
	state, err := h.backend.State(r.Context())
	if err != nil {
		h.backendError(w, err)
		return
	}

	current, err := h.backend.Current(r.Context())
	if err != nil {
		h.backendError(w, err)
		return
	}

	resp := StatusResponse{State: state.String()}
	if status, ok := current.Get(); ok {
		resp.NowPlaying = toNowPlayingDTO(status)
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) GetHistory(w http.ResponseWriter, r *http.Request) {
	entries, err := h.backend.History(r.Context())
	if err != nil {
		h.backendError(w, err)
		return
	}

	entries = history.Search(entries, r.URL.Query().Get("q"))

	writeJSON(w, http.StatusOK, HistoryResponse{
		Entries: lo.Map(entries, func(e history.Entry, _ int) HistoryEntryDTO { return toHistoryEntryDTO(e) }),
		Total:   len(entries),
	})
}

// DeleteHistory removes the entry given by ?file=, or every entry with ?all=true.
func (h *Handler) DeleteHistory(w http.ResponseWriter, r *http.Request) {
	if all, _ := strconv.ParseBool(r.URL.Query().Get("all")); all {
		h.clearHistory(w, r)
		return
	}

	file := r.URL.Query().Get("file")
	if file == "" {
		writeError(w, http.StatusBadRequest, "BAD_REQUEST", "file is required")
		return
	}

	remove := false
	if raw := r.URL.Query().Get("remove"); raw != "" {
		var err error
		if remove, err = strconv.ParseBool(raw); err != nil {
			writeError(w, http.StatusBadRequest, "BAD_REQUEST", "remove must be a boolean")
			return
		}
	}

	if err := h.backend.Delete(r.Context(), file, remove); err != nil {
		var deletion *history.DeletionError
		if errors.As(err, &deletion) {
			writeJSON(w, http.StatusConflict, ErrorResponse{
				Error: ErrorDetail{
					Code:    codeDeletionFailed,
					Message: deletion.Err.Error(),
					File:    deletion.File,
				},
			})
			return
		}

		h.backendError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) clearHistory(w http.ResponseWriter, r *http.Request) {
	if err := h.backend.Clear(r.Context()); err != nil {
		h.backendError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) backendError(w http.ResponseWriter, err error) {
	if errors.Is(err, tracker.ErrNotRunning) {
		writeError(w, http.StatusServiceUnavailable, "NOT_RUNNING", err.Error())
		return
	}

	log.Errorf("api: %v", err)
	writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, ErrorResponse{
		Error: ErrorDetail{
			Code:    code,
			Message: message,
		},
	})
}
