package service

import (
	"context"
	stderrors "errors"

	"jobhub/internal/errors"
	"jobhub/internal/model"
	"jobhub/internal/repository"
)

// ProfileUpdate lists the fields to change; nil leaves a field as is.
type ProfileUpdate struct {
	FirstName         *string
	LastName          *string
	Email             *string
	PreferredLanguage *string
}

// ProfileService edits the signed-in user's profile.
type ProfileService interface {
	Update(ctx context.Context, userID uint, in ProfileUpdate) (*model.User, error)
}

type profileService struct {
	users repository.UserRepository
}

// NewProfileService creates a new profile service.
func NewProfileService(users repository.UserRepository) ProfileService {
	return &profileService{users: users}
}

func (s *profileService) Update(ctx context.Context, userID uint, in ProfileUpdate) (*model.User, error) {
	if in.PreferredLanguage != nil && !validLanguage(*in.PreferredLanguage) {
		return nil, errors.Validation("Invalid data",
			errors.FieldError{Field: "preferredLanguage", Message: "must be one of: en ar"})
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, notFoundOr(err, "User not found", "find user")
	}

	if in.Email != nil && *in.Email != "" && *in.Email != user.Email {
		existing, err := s.users.FindByEmail(ctx, *in.Email)
		switch {
		case err == nil && existing.ID != userID:
			return nil, errors.Conflict("Email already exists")
		case err != nil && !stderrors.Is(err, repository.ErrNotFound):
			return nil, errors.Internal("check email", err)
		}
		user.Email = *in.Email
	}
	if in.FirstName != nil {
		user.FirstName = in.FirstName
	}
	if in.LastName != nil {
		user.LastName = in.LastName
	}
	if in.PreferredLanguage != nil {
		user.PreferredLanguage = *in.PreferredLanguage
	}

	if err := s.users.Update(ctx, user); err != nil {
		if stderrors.Is(err, repository.ErrDuplicate) {
			return nil, errors.Conflict("Email already exists")
		}
		return nil, errors.Internal("update user", err)
	}
	return user, nil
}
