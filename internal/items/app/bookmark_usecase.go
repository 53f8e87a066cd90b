package app

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"notemark/internal/items/domain/entities"
	"notemark/internal/items/ports/api"
	"notemark/internal/items/ports/repositories"
	"notemark/internal/items/ports/services"
	"notemark/pkg/logger"
)

const (
	defaultEnrichTimeout = 5 * time.Second

	msgBookmarkCreated    = "bookmark created"
	msgBookmarkUpdated    = "bookmark updated"
	msgBookmarkDeleted    = "bookmark deleted"
	msgBookmarkNotDeleted = "delete acknowledged, nothing removed"
	msgTitleFetchFailed   = "title fetch failed, using placeholder"
	msgSummaryFailed      = "summary generation failed, leaving description empty"

	errCtxCreatingBookmark = "creating bookmark"
	errCtxListingBookmarks = "listing bookmarks"
	errCtxLoadingBookmark  = "loading bookmark"
	errCtxUpdatingBookmark = "updating bookmark"
	errCtxDeletingBookmark = "deleting bookmark"
)

// BookmarkUseCaseImpl реализует api.BookmarkUseCase.
type BookmarkUseCaseImpl struct {
	repo          repositories.BookmarkRepository
	titles        services.TitleFetcher
	summarizer    services.Summarizer
	enrichTimeout time.Duration
}

// NewBookmarkUseCase создает сценарии закладок. summarizer может быть nil.
func NewBookmarkUseCase(
	repo repositories.BookmarkRepository,
	titles services.TitleFetcher,
	summarizer services.Summarizer,
	enrichTimeout time.Duration,
) api.BookmarkUseCase {
	if enrichTimeout <= 0 {
		enrichTimeout = defaultEnrichTimeout
	}
	return &BookmarkUseCaseImpl{
		repo:          repo,
		titles:        titles,
		summarizer:    summarizer,
		enrichTimeout: enrichTimeout,
	}
}

// Create сохраняет закладку вызывающего, заполняя пустой заголовок со страницы.
func (u *BookmarkUseCaseImpl) Create(ctx context.Context, ownerID string, in entities.BookmarkInput) (*entities.Bookmark, error) {
	log := logger.Log(ctx).With(zap.String("method", "BookmarkUseCase.Create"), zap.String("userID", ownerID))

	bm, err := entities.NewBookmark(ownerID, in)
	if err != nil {
		return nil, err
	}

	u.enrich(ctx, log, bm)

	created, err := u.repo.Create(ctx, bm)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxCreatingBookmark, err)
	}

	log.Info(ctx, msgBookmarkCreated, zap.String("bookmarkID", created.ID))
	return created, nil
}

// enrich заполняет пустые заголовок и описание. Оба вызова делят один бюджет enrichTimeout.
func (u *BookmarkUseCaseImpl) enrich(ctx context.Context, log *logger.Logger, bm *entities.Bookmark) {
	ctx, cancel := context.WithTimeout(ctx, u.enrichTimeout)
	defer cancel()

	if bm.Title == "" {
		bm.Title = u.fetchTitle(ctx, log, bm.URL)
	}
	if bm.Description == "" && u.summarizer != nil {
		bm.Description = u.summarize(ctx, log, bm.URL, bm.Title)
	}
}

func (u *BookmarkUseCaseImpl) fetchTitle(ctx context.Context, log *logger.Logger, url string) string {
	if u.titles == nil {
		return entities.UntitledBookmark
	}

	title, err := u.titles.FetchTitle(ctx, url)
	if err != nil || title == "" {
		log.Warn(ctx, msgTitleFetchFailed, zap.String("url", url), zap.Error(err))
		return entities.UntitledBookmark
	}
	return title
}

func (u *BookmarkUseCaseImpl) summarize(ctx context.Context, log *logger.Logger, url, title string) string {
	summary, err := u.summarizer.Summarize(ctx, url, title)
	if err != nil {
		log.Warn(ctx, msgSummaryFailed, zap.String("url", url), zap.Error(err))
		return ""
	}
	return summary
}

// List возвращает закладки вызывающего, отфильтрованные по q и tags.
func (u *BookmarkUseCaseImpl) List(ctx context.Context, ownerID, q, tags string) ([]*entities.Bookmark, error) {
	bookmarks, err := u.repo.List(ctx, entities.NewItemQuery(ownerID, q, tags))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxListingBookmarks, err)
	}
	return bookmarks, nil
}

func (u *BookmarkUseCaseImpl) Get(ctx context.Context, ownerID, id string) (*entities.Bookmark, error) {
	return u.load(ctx, ownerID, id)
}

// Update применяет patch к закладке вызывающего.
func (u *BookmarkUseCaseImpl) Update(ctx context.Context, ownerID, id string, patch entities.BookmarkPatch) (*entities.Bookmark, error) {
	log := logger.Log(ctx).With(zap.String("method", "BookmarkUseCase.Update"), zap.String("userID", ownerID))

	bm, err := u.load(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	if err := bm.Apply(patch); err != nil {
		return nil, err
	}

	updated, err := u.repo.Update(ctx, bm)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxUpdatingBookmark, err)
	}

	log.Debug(ctx, msgBookmarkUpdated, zap.String("bookmarkID", updated.ID))
	return updated, nil
}

func (u *BookmarkUseCaseImpl) Delete(ctx context.Context, ownerID, id string) error {
	log := logger.Log(ctx).With(zap.String("method", "BookmarkUseCase.Delete"), zap.String("userID", ownerID))

	bookmarkID, err := parseItemID(id)
	if err != nil {
		log.Debug(ctx, msgBookmarkNotDeleted, zap.String("bookmarkID", id))
		return nil
	}

	deleted, err := u.repo.Delete(ctx, bookmarkID, ownerID)
	if err != nil {
		return fmt.Errorf("%s: %w", errCtxDeletingBookmark, err)
	}

	if deleted {
		log.Info(ctx, msgBookmarkDeleted, zap.String("bookmarkID", bookmarkID))
	} else {
		log.Debug(ctx, msgBookmarkNotDeleted, zap.String("bookmarkID", bookmarkID))
	}
	return nil
}

func (u *BookmarkUseCaseImpl) ToggleFavorite(ctx context.Context, ownerID, id string) (bool, error) {
	log := logger.Log(ctx).With(zap.String("method", "BookmarkUseCase.ToggleFavorite"), zap.String("userID", ownerID))

	bm, err := u.load(ctx, ownerID, id)
	if err != nil {
		return false, err
	}
	bm.Favorite = !bm.Favorite

	updated, err := u.repo.Update(ctx, bm)
	if err != nil {
		return false, fmt.Errorf("%s: %w", errCtxUpdatingBookmark, err)
	}

	log.Debug(ctx, msgFavoriteToggled, zap.String("bookmarkID", updated.ID), zap.Bool("favorite", updated.Favorite))
	return updated.Favorite, nil
}

func (u *BookmarkUseCaseImpl) load(ctx context.Context, ownerID, id string) (*entities.Bookmark, error) {
	bookmarkID, err := parseItemID(id)
	if err != nil {
		return nil, err
	}

	bm, err := u.repo.FindByID(ctx, bookmarkID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxLoadingBookmark, err)
	}
	if err := assertOwner(bm, ownerID); err != nil {
		return nil, err
	}
	return bm, nil
}
