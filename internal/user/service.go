// Package user resolves a caller's platform identity to a stored user.
package user

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/osse101/CoffeeGarden_Go/internal/domain"
	"github.com/osse101/CoffeeGarden_Go/internal/logger"
	"github.com/osse101/CoffeeGarden_Go/internal/repository"
)

// Service resolves (platform, platform_id) pairs to users
type Service interface {
	// Resolve returns the user behind an identity, registering it on first
	// sight. A non-empty username that differs from the stored one replaces it.
	Resolve(ctx context.Context, platform, platformID, username string) (*domain.User, error)

	// Lookup returns the user behind an identity without registering.
	// It returns domain.ErrUserNotFound for unknown identities.
	Lookup(ctx context.Context, platform, platformID string) (*domain.User, error)

	GetCacheStats() CacheStats
}

var validPlatforms = map[string]bool{
	domain.PlatformWeChat: true,
	domain.PlatformQQ:     true,
	domain.PlatformWeb:    true,
}

// IsValidPlatform reports whether platform is an accepted identity source
func IsValidPlatform(platform string) bool {
	return validPlatforms[platform]
}

type service struct {
	repo      repository.User
	userCache *userCache
}

// NewService creates a new user service
func NewService(repo repository.User, cacheCfg CacheConfig) Service {
	return &service{
		repo:      repo,
		userCache: newUserCache(cacheCfg),
	}
}

func validateIdentity(platform, platformID, username string) error {
	if !IsValidPlatform(platform) {
		return fmt.Errorf("%w: %q", domain.ErrInvalidPlatform, platform)
	}
	if strings.TrimSpace(platformID) == "" {
		return fmt.Errorf("%w: platform_id is required", domain.ErrInvalidInput)
	}
	if utf8.RuneCountInString(username) > MaxUsernameLength {
		return fmt.Errorf("%w: username longer than %d characters", domain.ErrInvalidInput, MaxUsernameLength)
	}
	return nil
}

func (s *service) Resolve(ctx context.Context, platform, platformID, username string) (*domain.User, error) {
	log := logger.FromContext(ctx)
	username = strings.TrimSpace(username)

	if err := validateIdentity(platform, platformID, username); err != nil {
		log.Warn(LogErrInvalidIdentity, "platform", platform, "error", err)
		return nil, err
	}

	if user, ok := s.userCache.Get(platform, platformID); ok {
		if username == "" || username == user.Username {
			log.Debug(LogMsgUserCacheHit, "user_id", user.ID, "platform", platform)
			return user, nil
		}
		return s.register(ctx, user, username)
	}

	user, err := s.repo.GetUserByPlatformID(ctx, platform, platformID)
	switch {
	case err == nil:
		log.Debug(LogMsgUserFound, "user_id", user.ID, "platform", platform)
		if username != "" && username != user.Username {
			return s.register(ctx, user, username)
		}
		s.userCache.Set(platform, platformID, user)
		return user, nil
	case errors.Is(err, domain.ErrUserNotFound):
	default:
		log.Error(LogErrFailedToLookupUser, "error", err, "platform", platform)
		return nil, fmt.Errorf(ErrMsgLookupUser, err)
	}

	if username == "" {
		username = platformID
	}
	log.Info(LogMsgAutoRegistering, "platform", platform, "username", username)
	return s.register(ctx, &domain.User{Platform: platform, PlatformID: platformID}, username)
}

// register upserts user under username and refreshes the cache entry
func (s *service) register(ctx context.Context, user *domain.User, username string) (*domain.User, error) {
	log := logger.FromContext(ctx)
	if user.ID != "" {
		log.Info(LogMsgUsernameChanged, "user_id", user.ID, "from", user.Username, "to", username)
	}

	u := *user
	u.Username = username
	if err := s.repo.UpsertUser(ctx, &u); err != nil {
		log.Error(LogErrFailedToUpsertUser, "error", err, "platform", u.Platform)
		s.userCache.Invalidate(u.Platform, u.PlatformID)
		return nil, fmt.Errorf(ErrMsgRegisterUser, err)
	}

	s.userCache.Set(u.Platform, u.PlatformID, &u)
	if user.ID == "" {
		log.Info(LogMsgUserRegistered, "user_id", u.ID)
	}
	return &u, nil
}

func (s *service) Lookup(ctx context.Context, platform, platformID string) (*domain.User, error) {
	if err := validateIdentity(platform, platformID, ""); err != nil {
		return nil, err
	}

	if user, ok := s.userCache.Get(platform, platformID); ok {
		return user, nil
	}

	user, err := s.repo.GetUserByPlatformID(ctx, platform, platformID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf(ErrMsgLookupUser, err)
	}

	s.userCache.Set(platform, platformID, user)
	return user, nil
}

func (s *service) GetCacheStats() CacheStats {
	return s.userCache.GetStats()
}
