package handlers

import (
	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"notemark/internal/gateway/adapters/http/middleware"
	"notemark/internal/gateway/app/dto"
	"notemark/internal/items/ports/api"
	"notemark/pkg/logger"
)

// BookmarksHandler обслуживает /api/bookmarks.
type BookmarksHandler struct {
	bookmarks api.BookmarkUseCase
}

// NewBookmarksHandler создает обработчик закладок.
func NewBookmarksHandler(bookmarks api.BookmarkUseCase) *BookmarksHandler {
	return &BookmarksHandler{bookmarks: bookmarks}
}

func (h *BookmarksHandler) Create(c fiber.Ctx) error {
	ownerID, ok := callerID(c)
	if !ok {
		return writeError(c, fiber.StatusUnauthorized, middleware.MsgNoToken)
	}
	ctx := c.Context()

	var req dto.BookmarkRequest
	if err := bindJSON(c, &req); err != nil {
		logger.Log(ctx).Debug(ctx, MsgInvalidBody, zap.Error(err))
		return writeError(c, fiber.StatusBadRequest, MsgInvalidBody)
	}

	bm, err := h.bookmarks.Create(ctx, ownerID, req.ToInput())
	if err != nil {
		return handleError(c, err, MsgBookmarkNotFound)
	}

	return c.Status(fiber.StatusCreated).JSON(dto.NewBookmarkResponse(bm))
}

func (h *BookmarksHandler) List(c fiber.Ctx) error {
	ownerID, ok := callerID(c)
	if !ok {
		return writeError(c, fiber.StatusUnauthorized, middleware.MsgNoToken)
	}

	bookmarks, err := h.bookmarks.List(c.Context(), ownerID, c.Query("q"), c.Query("tags"))
	if err != nil {
		return handleError(c, err, MsgBookmarkNotFound)
	}

	return c.JSON(dto.NewBookmarkListResponse(bookmarks))
}

func (h *BookmarksHandler) Get(c fiber.Ctx) error {
	ownerID, ok := callerID(c)
	if !ok {
		return writeError(c, fiber.StatusUnauthorized, middleware.MsgNoToken)
	}

	bm, err := h.bookmarks.Get(c.Context(), ownerID, c.Params("id"))
	if err != nil {
		return handleError(c, err, MsgBookmarkNotFound)
	}

	return c.JSON(dto.NewBookmarkResponse(bm))
}

func (h *BookmarksHandler) Update(c fiber.Ctx) error {
	ownerID, ok := callerID(c)
	if !ok {
		return writeError(c, fiber.StatusUnauthorized, middleware.MsgNoToken)
	}
	ctx := c.Context()

	var req dto.BookmarkRequest
	if err := bindJSON(c, &req); err != nil {
		logger.Log(ctx).Debug(ctx, MsgInvalidBody, zap.Error(err))
		return writeError(c, fiber.StatusBadRequest, MsgInvalidBody)
	}

	bm, err := h.bookmarks.Update(ctx, ownerID, c.Params("id"), req.ToPatch())
	if err != nil {
		return handleError(c, err, MsgBookmarkNotFound)
	}

	return c.JSON(dto.NewBookmarkResponse(bm))
}

func (h *BookmarksHandler) Delete(c fiber.Ctx) error {
	ownerID, ok := callerID(c)
	if !ok {
		return writeError(c, fiber.StatusUnauthorized, middleware.MsgNoToken)
	}

	if err := h.bookmarks.Delete(c.Context(), ownerID, c.Params("id")); err != nil {
		return handleError(c, err, MsgBookmarkNotFound)
	}

	return c.JSON(dto.MessageResponse{Message: MsgBookmarkDeleted})
}

func (h *BookmarksHandler) ToggleFavorite(c fiber.Ctx) error {
	ownerID, ok := callerID(c)
	if !ok {
		return writeError(c, fiber.StatusUnauthorized, middleware.MsgNoToken)
	}

	favorite, err := h.bookmarks.ToggleFavorite(c.Context(), ownerID, c.Params("id"))
	if err != nil {
		return handleError(c, err, MsgBookmarkNotFound)
	}

	return c.JSON(dto.FavoriteResponse{Message: MsgFavoriteToggled, Favorite: favorite})
}
