package service

import (
	"context"
	stderrors "errors"

	"golang.org/x/crypto/bcrypt"

	"jobhub/internal/auth"
	"jobhub/internal/errors"
	"jobhub/internal/model"
	"jobhub/internal/repository"
)

const bcryptCost = 10

// Welcome notification posted to every new account.
const (
	WelcomeTitle   = "Welcome to JobHub!"
	WelcomeMessage = "Thank you for joining JobHub. Start exploring job opportunities now."
)

// SignupInput is the data needed to create an account.
type SignupInput struct {
	Username          string
	Password          string
	Email             string
	FirstName         *string
	LastName          *string
	PreferredLanguage string
}

// AuthService handles account creation and sessions.
type AuthService interface {
	Signup(ctx context.Context, in SignupInput) (*model.User, *auth.Session, error)
	Login(ctx context.Context, username, password string) (*model.User, *auth.Session, error)
	Logout(ctx context.Context, sessionID string) error
	Me(ctx context.Context, userID uint) (*model.User, error)
}

type authService struct {
	store repository.Store
	gate  *auth.Gate
}

// NewAuthService creates a new authentication service.
func NewAuthService(store repository.Store, gate *auth.Gate) AuthService {
	return &authService{store: store, gate: gate}
}

// Signup creates the user and its welcome notification together, then opens
// a session.
func (s *authService) Signup(ctx context.Context, in SignupInput) (*model.User, *auth.Session, error) {
	lang := in.PreferredLanguage
	if lang == "" {
		lang = model.LanguageEnglish
	}
	if !validLanguage(lang) {
		return nil, nil, errors.Validation("Invalid data",
			errors.FieldError{Field: "preferredLanguage", Message: "must be one of: en ar"})
	}

	users := s.store.Users()
	if _, err := users.FindByUsername(ctx, in.Username); err == nil {
		return nil, nil, errors.Conflict("Username already exists")
	} else if !stderrors.Is(err, repository.ErrNotFound) {
		return nil, nil, errors.Internal("check username", err)
	}
	if _, err := users.FindByEmail(ctx, in.Email); err == nil {
		return nil, nil, errors.Conflict("Email already exists")
	} else if !stderrors.Is(err, repository.ErrNotFound) {
		return nil, nil, errors.Internal("check email", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcryptCost)
	if err != nil {
		return nil, nil, errors.Internal("hash password", err)
	}

	user := &model.User{
		Username:          in.Username,
		Password:          string(hashedPassword),
		Email:             in.Email,
		FirstName:         in.FirstName,
		LastName:          in.LastName,
		PreferredLanguage: lang,
	}

	err = s.store.WithTransaction(ctx, func(ctx context.Context, tx repository.Store) error {
		if err := tx.Users().Create(ctx, user); err != nil {
			return err
		}
		return tx.Notifications().Create(ctx, &model.Notification{
			UserID:  user.ID,
			Title:   WelcomeTitle,
			Message: WelcomeMessage,
		})
	})
	if err != nil {
		if stderrors.Is(err, repository.ErrDuplicate) {
			return nil, nil, errors.Conflict("Username or email already exists")
		}
		return nil, nil, errors.Internal("create user", err)
	}

	sess, err := s.gate.Open(ctx, user.ID)
	if err != nil {
		return nil, nil, errors.Internal("open session", err)
	}
	return user, sess, nil
}

// Login checks the credentials and opens a session.
func (s *authService) Login(ctx context.Context, username, password string) (*model.User, *auth.Session, error) {
	user, err := s.store.Users().FindByUsername(ctx, username)
	if err != nil {
		if stderrors.Is(err, repository.ErrNotFound) {
			return nil, nil, errors.Unauthenticated("Invalid credentials")
		}
		return nil, nil, errors.Internal("find user", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, nil, errors.Unauthenticated("Invalid credentials")
	}

	sess, err := s.gate.Open(ctx, user.ID)
	if err != nil {
		return nil, nil, errors.Internal("open session", err)
	}
	return user, sess, nil
}

// Logout ends the session.
func (s *authService) Logout(ctx context.Context, sessionID string) error {
	if err := s.gate.Close(ctx, sessionID); err != nil {
		return errors.Internal("close session", err)
	}
	return nil
}

// Me returns the user behind the current session.
func (s *authService) Me(ctx context.Context, userID uint) (*model.User, error) {
	user, err := s.store.Users().FindByID(ctx, userID)
	if err != nil {
		return nil, notFoundOr(err, "User not found", "find user")
	}
	return user, nil
}

func validLanguage(lang string) bool {
	return lang == model.LanguageEnglish || lang == model.LanguageArabic
}
