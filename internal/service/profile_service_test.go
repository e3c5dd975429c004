package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"jobhub/internal/errors"
	"jobhub/internal/model"
	"jobhub/internal/repository"
)

func strPtr(s string) *string { return &s }

func TestProfileService_Update(t *testing.T) {
	current := func() *model.User {
		return &model.User{ID: 1, Username: "amal", Email: "a@x.com", PreferredLanguage: model.LanguageEnglish}
	}

	t.Run("changes only supplied fields", func(t *testing.T) {
		users := new(MockUserRepository)
		users.On("FindByID", mock.Anything, uint(1)).Return(current(), nil)
		users.On("Update", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)

		got, err := NewProfileService(users).Update(context.Background(), 1, ProfileUpdate{
			FirstName:         strPtr("Amal"),
			PreferredLanguage: strPtr(model.LanguageArabic),
		})
		require.NoError(t, err)
		assert.Equal(t, "Amal", *got.FirstName)
		assert.Nil(t, got.LastName)
		assert.Equal(t, "a@x.com", got.Email)
		assert.Equal(t, model.LanguageArabic, got.PreferredLanguage)
	})

	t.Run("email owned by someone else", func(t *testing.T) {
		users := new(MockUserRepository)
		users.On("FindByID", mock.Anything, uint(1)).Return(current(), nil)
		users.On("FindByEmail", mock.Anything, "b@x.com").Return(&model.User{ID: 2}, nil)

		_, err := NewProfileService(users).Update(context.Background(), 1, ProfileUpdate{Email: strPtr("b@x.com")})
		assert.Equal(t, errors.TypeConflict, errors.TypeOf(err))
		users.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("new free email", func(t *testing.T) {
		users := new(MockUserRepository)
		users.On("FindByID", mock.Anything, uint(1)).Return(current(), nil)
		users.On("FindByEmail", mock.Anything, "c@x.com").Return(nil, repository.ErrNotFound)
		users.On("Update", mock.Anything, mock.Anything).Return(nil)

		got, err := NewProfileService(users).Update(context.Background(), 1, ProfileUpdate{Email: strPtr("c@x.com")})
		require.NoError(t, err)
		assert.Equal(t, "c@x.com", got.Email)
	})

	t.Run("unsupported language", func(t *testing.T) {
		_, err := NewProfileService(new(MockUserRepository)).
			Update(context.Background(), 1, ProfileUpdate{PreferredLanguage: strPtr("de")})
		assert.Equal(t, errors.TypeValidation, errors.TypeOf(err))
	})
}
