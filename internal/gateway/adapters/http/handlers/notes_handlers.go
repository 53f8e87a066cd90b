package handlers

import (
	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"notemark/internal/gateway/adapters/http/middleware"
	"notemark/internal/gateway/app/dto"
	"notemark/internal/items/ports/api"
	"notemark/pkg/logger"
)

// NotesHandler обслуживает /api/notes. Все маршруты требуют принципала.
type NotesHandler struct {
	notes api.NoteUseCase
}

// NewNotesHandler создает обработчик заметок.
func NewNotesHandler(notes api.NoteUseCase) *NotesHandler {
	return &NotesHandler{notes: notes}
}

// Create - POST /api/notes.
func (h *NotesHandler) Create(c fiber.Ctx) error {
	ownerID, ok := callerID(c)
	if !ok {
		return writeError(c, fiber.StatusUnauthorized, middleware.MsgNoToken)
	}
	ctx := c.Context()

	var req dto.NoteRequest
	if err := bindJSON(c, &req); err != nil {
		logger.Log(ctx).Debug(ctx, MsgInvalidBody, zap.Error(err))
		return writeError(c, fiber.StatusBadRequest, MsgInvalidBody)
	}

	note, err := h.notes.Create(ctx, ownerID, req.ToInput())
	if err != nil {
		return handleError(c, err, MsgNoteNotFound)
	}

	return c.Status(fiber.StatusCreated).JSON(dto.NewNoteResponse(note))
}

// List - GET /api/notes?q=&tags=.
func (h *NotesHandler) List(c fiber.Ctx) error {
	ownerID, ok := callerID(c)
	if !ok {
		return writeError(c, fiber.StatusUnauthorized, middleware.MsgNoToken)
	}

	notes, err := h.notes.List(c.Context(), ownerID, c.Query("q"), c.Query("tags"))
	if err != nil {
		return handleError(c, err, MsgNoteNotFound)
	}

	return c.JSON(dto.NewNoteListResponse(notes))
}

// Get - GET /api/notes/:id.
func (h *NotesHandler) Get(c fiber.Ctx) error {
	ownerID, ok := callerID(c)
	if !ok {
		return writeError(c, fiber.StatusUnauthorized, middleware.MsgNoToken)
	}

	note, err := h.notes.Get(c.Context(), ownerID, c.Params("id"))
	if err != nil {
		return handleError(c, err, MsgNoteNotFound)
	}

	return c.JSON(dto.NewNoteResponse(note))
}

// Update - PUT /api/notes/:id.
func (h *NotesHandler) Update(c fiber.Ctx) error {
	ownerID, ok := callerID(c)
	if !ok {
		return writeError(c, fiber.StatusUnauthorized, middleware.MsgNoToken)
	}
	ctx := c.Context()

	var req dto.NoteRequest
	if err := bindJSON(c, &req); err != nil {
		logger.Log(ctx).Debug(ctx, MsgInvalidBody, zap.Error(err))
		return writeError(c, fiber.StatusBadRequest, MsgInvalidBody)
	}

	note, err := h.notes.Update(ctx, ownerID, c.Params("id"), req.ToPatch())
	if err != nil {
		return handleError(c, err, MsgNoteNotFound)
	}

	return c.JSON(dto.NewNoteResponse(note))
}

// Delete - DELETE /api/notes/:id.
func (h *NotesHandler) Delete(c fiber.Ctx) error {
	ownerID, ok := callerID(c)
	if !ok {
		return writeError(c, fiber.StatusUnauthorized, middleware.MsgNoToken)
	}

	if err := h.notes.Delete(c.Context(), ownerID, c.Params("id")); err != nil {
		return handleError(c, err, MsgNoteNotFound)
	}

	return c.JSON(dto.MessageResponse{Message: MsgNoteDeleted})
}

// ToggleFavorite - PATCH /api/notes/:id/favorite.
func (h *NotesHandler) ToggleFavorite(c fiber.Ctx) error {
	ownerID, ok := callerID(c)
	if !ok {
		return writeError(c, fiber.StatusUnauthorized, middleware.MsgNoToken)
	}

	favorite, err := h.notes.ToggleFavorite(c.Context(), ownerID, c.Params("id"))
	if err != nil {
		return handleError(c, err, MsgNoteNotFound)
	}

	return c.JSON(dto.FavoriteResponse{Message: MsgFavoriteToggled, Favorite: favorite})
}

func callerID(c fiber.Ctx) (string, bool) {
	p, ok := middleware.PrincipalFromCtx(c)
	if !ok {
		return "", false
	}
	return p.ID, true
}
