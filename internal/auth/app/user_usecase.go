package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"notemark/internal/auth/domain/entities"
	"notemark/internal/auth/domain/services"
	"notemark/internal/auth/ports/api"
	"notemark/internal/auth/ports/cache"
	"notemark/internal/auth/ports/repositories"
	svc "notemark/internal/auth/ports/services"
	"notemark/pkg/logger"
)

const (
	methodAuthenticate = "Authenticate"
	methodGetPrincipal = "GetPrincipal"

	msgTokenRejected     = "token rejected"
	msgPrincipalCacheHit = "principal served from cache"
	msgUserVanished      = "token refers to a user that no longer exists"
	msgCacheReadFailed   = "principal cache read failed, falling back to store"
	msgCacheWriteFailed  = "principal cache write failed"
	msgCacheEntryBroken  = "discarding malformed principal cache entry"

	msgErrFindingUserByID = "failed to find user by ID"

	errCtxValidatingToken  = "validating token"
	errCtxResolvingUser    = "resolving user"
	errCtxValidatingUserID = "validating user ID"
	errCtxFetchingUser     = "fetching user"
)

// UserUseCaseImpl реализует api.UserUseCase с кэшированием принципалов.
type UserUseCaseImpl struct {
	userRepo repositories.UserRepository
	tokenSvc svc.TokenService
	cache    cache.Cache
	cacheTTL time.Duration
}

// NewUserUseCase создает сценарий разрешения принципала.
func NewUserUseCase(
	userRepo repositories.UserRepository,
	tokenSvc svc.TokenService,
	principalCache cache.Cache,
	cacheTTL time.Duration,
) api.UserUseCase {
	return &UserUseCaseImpl{
		userRepo: userRepo,
		tokenSvc: tokenSvc,
		cache:    principalCache,
		cacheTTL: cacheTTL,
	}
}

// Authenticate проверяет токен и загружает пользователя. Токен удаленного
// пользователя отклоняется так же, как недействительный.
func (u *UserUseCaseImpl) Authenticate(ctx context.Context, token string) (*entities.Principal, error) {
	log := logger.Log(ctx).With(zap.String("method", methodAuthenticate))

	userID, err := u.tokenSvc.ValidateToken(ctx, token)
	if err != nil {
		log.Debug(ctx, msgTokenRejected, zap.Error(err))
		return nil, fmt.Errorf("%s: %w: %w", errCtxValidatingToken, services.ErrUnauthenticated, err)
	}

	principal, err := u.GetPrincipal(ctx, userID)
	if err != nil {
		if errors.Is(err, entities.ErrUserNotFound) {
			log.Info(ctx, msgUserVanished, zap.String("userID", userID))
			return nil, fmt.Errorf("%s: %w: %w", errCtxResolvingUser, services.ErrUnauthenticated, err)
		}
		return nil, fmt.Errorf("%s: %w", errCtxResolvingUser, err)
	}

	return principal, nil
}

// GetPrincipal возвращает публичное представление пользователя, сначала из кэша.
func (u *UserUseCaseImpl) GetPrincipal(ctx context.Context, userID string) (*entities.Principal, error) {
	log := logger.Log(ctx).With(zap.String("method", methodGetPrincipal), zap.String("userID", userID))

	if userID == "" {
		return nil, fmt.Errorf("%s: %w", errCtxValidatingUserID, entities.ErrEmptyUserID)
	}

	if principal, ok := u.fromCache(ctx, log, userID); ok {
		log.Debug(ctx, msgPrincipalCacheHit)
		return principal, nil
	}

	user, err := u.userRepo.FindByID(ctx, userID)
	if err != nil {
		if !errors.Is(err, entities.ErrUserNotFound) {
			log.Error(ctx, msgErrFindingUserByID, zap.Error(err))
		}
		return nil, fmt.Errorf("%s: %w", errCtxFetchingUser, err)
	}

	principal := user.Principal()
	u.toCache(ctx, log, &principal)
	return &principal, nil
}

func (u *UserUseCaseImpl) fromCache(ctx context.Context, log *logger.Logger, userID string) (*entities.Principal, bool) {
	raw, ok, err := u.cache.Get(ctx, userID)
	if err != nil {
		log.Warn(ctx, msgCacheReadFailed, zap.Error(err))
		return nil, false
	}
	if !ok {
		return nil, false
	}

	var principal entities.Principal
	if err := json.Unmarshal([]byte(raw), &principal); err != nil || principal.ID != userID {
		log.Warn(ctx, msgCacheEntryBroken)
		_ = u.cache.Delete(ctx, userID)
		return nil, false
	}
	return &principal, true
}

func (u *UserUseCaseImpl) toCache(ctx context.Context, log *logger.Logger, principal *entities.Principal) {
	raw, err := json.Marshal(principal)
	if err != nil {
		return
	}
	if err := u.cache.Set(ctx, principal.ID, string(raw), u.cacheTTL); err != nil {
		log.Warn(ctx, msgCacheWriteFailed, zap.Error(err))
	}
}
