package handlers

import (
	"errors"
	nethttp "net/http"

	"github.com/preston-bernstein/football-players-service/internal/chat"
)

type chatRequest struct {
	Message string `json:"message"`
}

type chatResponse struct {
	Messages []chat.Message `json:"messages"`
}

// chatErrorResponse carries the conversation, including the stored apology, next to the error.
type chatErrorResponse struct {
	Error     string         `json:"error"`
	RequestID string         `json:"requestId,omitempty"`
	Messages  []chat.Message `json:"messages"`
}

// ChatHistory returns the stored conversation.
func (h *Handler) ChatHistory(w nethttp.ResponseWriter, r *nethttp.Request) {
	if h.chat == nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "chat is not configured", h.logger)
		return
	}
	history, err := h.chat.History(r.Context())
	if err != nil {
		writeError(w, r, nethttp.StatusInternalServerError, "failed to load chat history", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, chatResponse{Messages: history}, h.logger)
}

// SendChat forwards a message to the chat API and returns the updated conversation.
func (h *Handler) SendChat(w nethttp.ResponseWriter, r *nethttp.Request) {
	if h.chat == nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "chat is not configured", h.logger)
		return
	}
	var req chatRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, nethttp.StatusBadRequest, "invalid chat payload", h.logger)
		return
	}

	history, err := h.chat.Send(r.Context(), req.Message)
	switch {
	case err == nil:
		writeJSON(w, nethttp.StatusOK, chatResponse{Messages: history}, h.logger)
	case errors.Is(err, chat.ErrEmptyMessage):
		writeError(w, r, nethttp.StatusBadRequest, "message is required", h.logger)
	case history == nil:
		writeError(w, r, nethttp.StatusInternalServerError, "failed to load chat history", h.logger)
	case errors.Is(err, chat.ErrMissingAPIKey):
		h.writeChatError(w, r, nethttp.StatusServiceUnavailable, "chat is not configured", history)
	default:
		h.writeChatError(w, r, nethttp.StatusBadGateway, "could not reach the chat service, please try again", history)
	}
}

func (h *Handler) writeChatError(w nethttp.ResponseWriter, r *nethttp.Request, status int, message string, history []chat.Message) {
	writeJSON(w, status, chatErrorResponse{
		Error:     message,
		RequestID: requestID(r),
		Messages:  history,
	}, h.logger)
}

// ClearChat resets the conversation to the welcome message.
func (h *Handler) ClearChat(w nethttp.ResponseWriter, r *nethttp.Request) {
	if h.chat == nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "chat is not configured", h.logger)
		return
	}
	history, err := h.chat.Clear(r.Context())
	if err != nil {
		writeError(w, r, nethttp.StatusInternalServerError, "failed to clear chat history", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, chatResponse{Messages: history}, h.logger)
}
