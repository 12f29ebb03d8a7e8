package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"

	"garagelink/internal/cache"
	"garagelink/internal/errors"
	"garagelink/internal/model"
	"garagelink/internal/repository"
)

const userCacheTTL = 5 * time.Minute

// ProfileUpdate carries the optional self-service update fields. Nil
// means "leave unchanged"; only name, email, and location are mutable.
type ProfileUpdate struct {
	Name     *string
	Email    *string
	Location *string
}

// UserService handles profile operations for the authenticated principal.
type UserService interface {
	GetSelf(ctx context.Context, principalID uint) (*model.User, error)
	UpdateSelf(ctx context.Context, principalID, targetUserID uint, update ProfileUpdate) (*model.User, error)
}

type userService struct {
	repo  repository.UserRepository
	cache *cache.Client
}

// NewUserService builds a UserService with repository and cache.
func NewUserService(repo repository.UserRepository, cache *cache.Client) UserService {
	return &userService{repo: repo, cache: cache}
}

func (s *userService) cacheKey(id uint) string {
	return fmt.Sprintf("user:%d", id)
}

// GetSelf returns the stored user for the principal id. A token whose
// user no longer exists resolves to ErrUserNotFound.
func (s *userService) GetSelf(ctx context.Context, principalID uint) (*model.User, error) {
	if data, _ := s.cache.Get(ctx, s.cacheKey(principalID)); data != nil {
		var cached model.User
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	user, err := s.repo.FindByID(ctx, principalID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrUserNotFound
		}
		return nil, err
	}

	if payload, err := json.Marshal(user); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(principalID), payload, userCacheTTL)
	}
	return user, nil
}

// UpdateSelf applies a partial profile update. Only the principal may
// update their own record; there is no admin override.
func (s *userService) UpdateSelf(ctx context.Context, principalID, targetUserID uint, update ProfileUpdate) (*model.User, error) {
	if targetUserID != principalID {
		return nil, errors.ErrForbidden
	}

	user, err := s.repo.FindByID(ctx, targetUserID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	if update.Name != nil {
		user.Name = *update.Name
	}
	if update.Email != nil {
		user.Email = *update.Email
	}
	if update.Location != nil {
		user.Location = *update.Location
	}

	if err := s.repo.Update(ctx, user); err != nil {
		if isDuplicateKey(err) {
			return nil, ErrUserAlreadyExists
		}
		return nil, fmt.Errorf("update user: %w", err)
	}

	_ = s.cache.Delete(ctx, s.cacheKey(targetUserID))

	return user, nil
}
