package service

import (
	"context"
	"log"
	"strings"
	"time"

	"firebase.google.com/go/v4/auth"

	"github.com/jiraclone/taskboard-backend/internal/accounts/domain"
)

// AuthAdmin is the slice of the Firebase Auth client the service needs.
type AuthAdmin interface {
	CreateUser(ctx context.Context, user *auth.UserToCreate) (*auth.UserRecord, error)
}

// ProfileStore persists and reads profile documents.
type ProfileStore interface {
	Create(ctx context.Context, uid string, p domain.Profile) error
	Get(ctx context.Context, uid string) (*domain.Profile, error)
	ListAccounts(ctx context.Context) ([]domain.Account, error)
}

// DirectoryCache holds a cached copy of the account directory.
type DirectoryCache interface {
	Get(ctx context.Context) ([]domain.Account, bool, error)
	Set(ctx context.Context, accounts []domain.Account) error
}

// PasswordSignIn exchanges email/password credentials for a session.
type PasswordSignIn interface {
	SignInWithPassword(ctx context.Context, email, password string) (*domain.Session, error)
}

// AccountService implements the identity gate: signup, login, profile reads
// and the account directory.
type AccountService struct {
	authAdmin AuthAdmin
	profiles  ProfileStore
	cache     DirectoryCache
	signIn    PasswordSignIn
}

func NewAccountService(authAdmin AuthAdmin, profiles ProfileStore, cache DirectoryCache, signIn PasswordSignIn) *AccountService {
	return &AccountService{
		authAdmin: authAdmin,
		profiles:  profiles,
		cache:     cache,
		signIn:    signIn,
	}
}

// SignUp creates the identity-provider account, then writes the profile
// document keyed by the new UID. If the profile write fails the auth account
// already exists; the partial state is surfaced, not rolled back.
func (s *AccountService) SignUp(ctx context.Context, req domain.SignUpRequest) (string, error) {
	if err := validateSignUp(req); err != nil {
		return "", err
	}

	params := (&auth.UserToCreate{}).
		Email(req.Email).
		Password(req.Password).
		DisplayName(req.Name)

	user, err := s.authAdmin.CreateUser(ctx, params)
	if err != nil {
		if auth.IsEmailAlreadyExists(err) {
			return "", domain.ErrEmailExists
		}
		return "", err
	}

	profile := domain.Profile{
		Name:      req.Name,
		Age:       req.Age,
		JobTitle:  req.JobTitle,
		Email:     req.Email,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}

	if err := s.profiles.Create(ctx, user.UID, profile); err != nil {
		return user.UID, err
	}

	return user.UID, nil
}

// SignIn authenticates and fetches the matching profile. A missing profile
// after successful authentication surfaces as domain.ErrProfileNotFound.
func (s *AccountService) SignIn(ctx context.Context, email, password string) (*domain.Session, *domain.Profile, error) {
	if strings.TrimSpace(email) == "" {
		return nil, nil, &domain.ValidationError{Field: "email"}
	}
	if password == "" {
		return nil, nil, &domain.ValidationError{Field: "password"}
	}

	sess, err := s.signIn.SignInWithPassword(ctx, email, password)
	if err != nil {
		return nil, nil, err
	}

	profile, err := s.profiles.Get(ctx, sess.UID)
	if err != nil {
		return nil, nil, err
	}

	return sess, profile, nil
}

// Profile returns the profile document for a UID.
func (s *AccountService) Profile(ctx context.Context, uid string) (*domain.Profile, error) {
	return s.profiles.Get(ctx, uid)
}

// ListAccounts serves the account directory, reading through the cache.
// Cache failures degrade to a direct Firestore read, never to a request
// failure.
func (s *AccountService) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	if s.cache != nil {
		accounts, ok, err := s.cache.Get(ctx)
		if err != nil {
			log.Printf("directory cache read failed: %v", err)
		} else if ok {
			return accounts, nil
		}
	}

	accounts, err := s.profiles.ListAccounts(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, accounts); err != nil {
			log.Printf("directory cache write failed: %v", err)
		}
	}

	return accounts, nil
}

// RefreshDirectory repopulates the cache from Firestore. Called by the cron
// refresher.
func (s *AccountService) RefreshDirectory(ctx context.Context) error {
	accounts, err := s.profiles.ListAccounts(ctx)
	if err != nil {
		return err
	}
	if s.cache == nil {
		return nil
	}
	return s.cache.Set(ctx, accounts)
}

func validateSignUp(req domain.SignUpRequest) error {
	switch {
	case strings.TrimSpace(req.Name) == "":
		return &domain.ValidationError{Field: "name"}
	case strings.TrimSpace(req.Email) == "":
		return &domain.ValidationError{Field: "email"}
	case req.Password == "":
		return &domain.ValidationError{Field: "password"}
	case strings.TrimSpace(req.Age) == "":
		return &domain.ValidationError{Field: "age"}
	case strings.TrimSpace(req.JobTitle) == "":
		return &domain.ValidationError{Field: "jobTitle"}
	}
	return nil
}
