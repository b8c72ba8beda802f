package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/escapegenie/api/internal/model"
	"github.com/escapegenie/api/internal/service"
)

// ChatInterpreter defines the interface for free-text query interpretation
type ChatInterpreter interface {
	Interpret(ctx context.Context, req service.ChatRequest) ([]*model.Destination, error)
}

// ChatHandler handles the free-text recommendation endpoint
type ChatHandler struct {
	chat ChatInterpreter
}

// NewChatHandler creates a new chat handler
func NewChatHandler(chat ChatInterpreter) *ChatHandler {
	return &ChatHandler{chat: chat}
}

// chatRequest is the wire format for POST /api/chat
type chatRequest struct {
	Message      string `json:"message"`
	TravelerType string `json:"travelerType"`
	TripScope    string `json:"tripScope"`
	Budget       string `json:"budget"`
}

// Chat handles POST /api/chat - interpret a free-text travel query
func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	destinations, err := h.chat.Interpret(r.Context(), service.ChatRequest{
		Message:      req.Message,
		TravelerType: req.TravelerType,
		TripScope:    req.TripScope,
		Budget:       req.Budget,
	})
	if err != nil {
		if errors.Is(err, service.ErrModelUnavailable) {
			WriteError(w, model.NewServiceUnavailableError("language model unavailable, try again shortly"))
			return
		}
		WriteError(w, model.NewInternalError("failed to search destinations"))
		return
	}

	WriteJSON(w, http.StatusOK, destinations)
}
