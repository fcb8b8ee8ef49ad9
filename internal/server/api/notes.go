// HTTP-хендлеры CRUD заметок
package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/IvanChernomyrdin/go-notes-keeper/internal/server/middleware"
	serr "github.com/IvanChernomyrdin/go-notes-keeper/internal/shared/errors"
	sharedmodels "github.com/IvanChernomyrdin/go-notes-keeper/internal/shared/models"
)

// NoteRequest — тело запроса создания и обновления заметки.
//
// Владельца в теле нет и быть не может: при создании им становится caller,
// при обновлении он не меняется.
type NoteRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// writeNoteError маппит ошибки сервиса заметок в HTTP-ответы.
//
// Общая часть для Get/Update/Delete: у них одинаковые правила
// not-found/forbidden.
func (h *Handler) writeNoteError(w http.ResponseWriter, err error, callerID string) {
	switch {
	case errors.Is(err, serr.ErrInvalidInput):
		WriteError(w, http.StatusBadRequest, err)
	case errors.Is(err, serr.ErrUnauthorized):
		WriteError(w, http.StatusUnauthorized, serr.ErrUnauthorized)
	case errors.Is(err, serr.ErrForbidden):
		WriteError(w, http.StatusForbidden, serr.ErrForbidden)
	case errors.Is(err, serr.ErrNotFound):
		WriteError(w, http.StatusNotFound, serr.ErrNotFound)
	default:
		h.Log.Logger.Sugar().Errorw("notes request failed", "error", err, "user_id", callerID)
		WriteError(w, http.StatusInternalServerError, serr.ErrInternal)
	}
}

// ListNotes возвращает все заметки текущего пользователя, новые сверху.
//
// Пользователь определяется по JWT-токену (middleware).
// Чужие и legacy-заметки (без владельца) в выдачу не попадают.
//
// @Summary      List notes
// @Description  Returns all notes owned by the authenticated user, newest first.
// @Tags         notes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} sharedmodels.Note
// @Failure      401 {object} ErrorResponse "Unauthorized"
// @Failure      500 {object} ErrorResponse "Internal server error"
// @Router       /notes [get]
func (h *Handler) ListNotes(w http.ResponseWriter, r *http.Request) {
	callerID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		WriteError(w, http.StatusUnauthorized, serr.ErrUnauthorized)
		return
	}

	notes, err := h.Svc.Notes.List(r.Context(), callerID)
	if err != nil {
		h.writeNoteError(w, err, callerID)
		return
	}

	out := make([]sharedmodels.Note, 0, len(notes))
	for _, n := range notes {
		out = append(out, toNote(n))
	}

	WriteJSON(w, http.StatusOK, out)
}

// GetNote возвращает одну заметку по id.
//
// Ответы:
//   - 200 OK: заметка принадлежит caller;
//   - 400 Bad Request: id не UUID;
//   - 403 Forbidden: заметка чужая или вовсе без владельца;
//   - 404 Not Found: заметки нет;
//   - 500 Internal Server Error: прочие ошибки.
//
// @Summary      Get note
// @Description  Returns a single note if the caller owns it.
// @Tags         notes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Note ID (UUID)"
// @Success      200 {object} sharedmodels.Note
// @Failure      400 {object} ErrorResponse "Bad note id"
// @Failure      401 {object} ErrorResponse "Unauthorized"
// @Failure      403 {object} ErrorResponse "Not the owner"
// @Failure      404 {object} ErrorResponse "Note not found"
// @Failure      500 {object} ErrorResponse "Internal server error"
// @Router       /notes/{id} [get]
func (h *Handler) GetNote(w http.ResponseWriter, r *http.Request) {
	noteID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		WriteError(w, http.StatusBadRequest, serr.ErrInvalidInput)
		return
	}

	callerID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		WriteError(w, http.StatusUnauthorized, serr.ErrUnauthorized)
		return
	}

	n, err := h.Svc.Notes.Get(r.Context(), callerID, noteID)
	if err != nil {
		h.writeNoteError(w, err, callerID)
		return
	}

	WriteJSON(w, http.StatusOK, toNote(n))
}

// CreateNote создаёт новую заметку для аутентифицированного пользователя.
//
// Владелец фиксируется в момент создания и дальше не меняется.
//
// @Summary      Create note
// @Description  Creates a new note owned by the authenticated user.
// @Tags         notes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body NoteRequest true "Note fields"
// @Success      201 {object} sharedmodels.Note
// @Failure      400 {object} ErrorResponse "Invalid input or bad JSON"
// @Failure      401 {object} ErrorResponse "Unauthorized"
// @Failure      500 {object} ErrorResponse "Internal server error"
// @Router       /notes [post]
func (h *Handler) CreateNote(w http.ResponseWriter, r *http.Request) {
	var req NoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, serr.ErrBadJSON)
		return
	}

	callerID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		WriteError(w, http.StatusUnauthorized, serr.ErrUnauthorized)
		return
	}

	n, err := h.Svc.Notes.Create(r.Context(), callerID, req.Title, req.Content)
	if err != nil {
		h.writeNoteError(w, err, callerID)
		return
	}

	WriteJSON(w, http.StatusCreated, toNote(n))
}

// UpdateNote заменяет title и content существующей заметки.
//
// Правила доступа те же, что у GetNote: сначала находим заметку,
// потом проверяем владельца, и только потом пишем.
//
// @Summary      Update note
// @Description  Replaces title and content of a note owned by the caller.
// @Tags         notes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Note ID (UUID)"
// @Param        request body NoteRequest true "New note fields"
// @Success      200 {object} sharedmodels.Note
// @Failure      400 {object} ErrorResponse "Invalid input or bad JSON"
// @Failure      401 {object} ErrorResponse "Unauthorized"
// @Failure      403 {object} ErrorResponse "Not the owner"
// @Failure      404 {object} ErrorResponse "Note not found"
// @Failure      500 {object} ErrorResponse "Internal server error"
// @Router       /notes/{id} [put]
func (h *Handler) UpdateNote(w http.ResponseWriter, r *http.Request) {
	noteID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		WriteError(w, http.StatusBadRequest, serr.ErrInvalidInput)
		return
	}

	var req NoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, serr.ErrBadJSON)
		return
	}

	callerID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		WriteError(w, http.StatusUnauthorized, serr.ErrUnauthorized)
		return
	}

	n, err := h.Svc.Notes.Update(r.Context(), callerID, noteID, req.Title, req.Content)
	if err != nil {
		h.writeNoteError(w, err, callerID)
		return
	}

	WriteJSON(w, http.StatusOK, toNote(n))
}

// DeleteNote удаляет заметку навсегда.
//
// @Summary      Delete note
// @Description  Permanently deletes a note owned by the caller.
// @Tags         notes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Note ID (UUID)"
// @Success      200 {object} sharedmodels.MessageResponse
// @Failure      400 {object} ErrorResponse "Bad note id"
// @Failure      401 {object} ErrorResponse "Unauthorized"
// @Failure      403 {object} ErrorResponse "Not the owner"
// @Failure      404 {object} ErrorResponse "Note not found"
// @Failure      500 {object} ErrorResponse "Internal server error"
// @Router       /notes/{id} [delete]
func (h *Handler) DeleteNote(w http.ResponseWriter, r *http.Request) {
	noteID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		WriteError(w, http.StatusBadRequest, serr.ErrInvalidInput)
		return
	}

	callerID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		WriteError(w, http.StatusUnauthorized, serr.ErrUnauthorized)
		return
	}

	if err := h.Svc.Notes.Delete(r.Context(), callerID, noteID); err != nil {
		h.writeNoteError(w, err, callerID)
		return
	}

	WriteJSON(w, http.StatusOK, sharedmodels.MessageResponse{Message: "note deleted successfully"})
}
