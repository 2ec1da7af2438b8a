package http

import (
	"encoding/json"
	"net/http"

	"mortgage-agent/service"
)

type FeedbackHandler struct {
	feedback *service.FeedbackService
}

func NewFeedbackHandler(feedback *service.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{feedback: feedback}
}

type feedbackRequest struct {
	SessionID string `json:"session_id"`
	Answer    string `json:"answer"`
}

type feedbackResponse struct {
	Stage   string `json:"stage"`
	Message string `json:"message"`
}

func (h *FeedbackHandler) Record(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req feedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	stage, message, err := h.feedback.Record(r.Context(), req.SessionID, req.Answer)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, feedbackResponse{Stage: stage, Message: message})
}
