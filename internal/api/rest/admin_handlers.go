package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"

	"github.com/fortuna/gridiron/internal/jobs"
	"github.com/fortuna/gridiron/internal/store"
)

// AdminHandler serves the admin job endpoints.
type AdminHandler struct {
	jobs *jobs.Service
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(jobsSvc *jobs.Service) *AdminHandler {
	return &AdminHandler{jobs: jobsSvc}
}

type createJobRequest struct {
	Action string `json:"action"`
	Params struct {
		Season *int `json:"season"`
	} `json:"params"`
}

type createJobResponse struct {
	JobID     string `json:"job_id"`
	Status    string `json:"status"`
	Action    string `json:"action"`
	CreatedAt string `json:"created_at"`
}

// CreateJob queues an admin data-load job.
func (h *AdminHandler) CreateJob(w http.ResponseWriter, r *http.Request) {
	var req createJobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if !jobs.ValidAction(req.Action) {
		msg := fmt.Sprintf("Invalid action. Valid actions: %s", strings.Join(jobs.Actions, ", "))
		respondError(w, http.StatusBadRequest, msg, nil)
		return
	}

	job, err := h.jobs.Enqueue(r.Context(), jobs.Request{
		Action: req.Action,
		Season: req.Params.Season,
	})
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to queue job", err)
		return
	}

	respondJSON(w, http.StatusOK, createJobResponse{
		JobID:     job.JobID,
		Status:    job.Status,
		Action:    job.Action,
		CreatedAt: job.CreatedAt.UTC().Format(time.RFC3339),
	})
}

// GetJob returns the persisted record for one job.
func (h *AdminHandler) GetJob(w http.ResponseWriter, r *http.Request) {
	jobID := mux.Vars(r)["jobID"]

	job, err := h.jobs.GetJob(r.Context(), jobID)
	if errors.Is(err, store.ErrNotFound) {
		respondError(w, http.StatusNotFound, "Job not found", nil)
		return
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch job", err)
		return
	}

	respondJSON(w, http.StatusOK, job)
}

// ListJobs returns recent job history.
func (h *AdminHandler) ListJobs(w http.ResponseWriter, r *http.Request) {
	history, err := h.jobs.History(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch job history", err)
		return
	}

	respondJSON(w, http.StatusOK, history)
}
