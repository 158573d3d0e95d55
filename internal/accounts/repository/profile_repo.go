package repository

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/jiraclone/taskboard-backend/internal/accounts/domain"
)

const usersCollection = "users"

// ProfileRepository persists profile documents under users/{uid}.
type ProfileRepository struct {
	fs *firestore.Client
}

func NewProfileRepository(fs *firestore.Client) *ProfileRepository {
	return &ProfileRepository{fs: fs}
}

// Create writes the profile document keyed by the account's UID.
func (r *ProfileRepository) Create(ctx context.Context, uid string, p domain.Profile) error {
	if uid == "" {
		return fmt.Errorf("uid required")
	}

	if _, err := r.fs.Collection(usersCollection).Doc(uid).Set(ctx, p); err != nil {
		return fmt.Errorf("write profile %s: %w", uid, err)
	}
	return nil
}

// Get fetches the profile document for a UID. A missing document maps to
// domain.ErrProfileNotFound.
func (r *ProfileRepository) Get(ctx context.Context, uid string) (*domain.Profile, error) {
	snap, err := r.fs.Collection(usersCollection).Doc(uid).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil, domain.ErrProfileNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get profile %s: %w", uid, err)
	}
	if !snap.Exists() {
		return nil, domain.ErrProfileNotFound
	}

	var p domain.Profile
	if err := snap.DataTo(&p); err != nil {
		return nil, fmt.Errorf("decode profile %s: %w", uid, err)
	}
	return &p, nil
}

// ListAccounts returns every profile document with its UID, for the
// assignment dialog's account picker.
func (r *ProfileRepository) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	iter := r.fs.Collection(usersCollection).Documents(ctx)
	defer iter.Stop()

	out := make([]domain.Account, 0, 16)
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("list accounts: %w", err)
		}

		var a domain.Account
		if err := snap.DataTo(&a.Profile); err != nil {
			return nil, fmt.Errorf("decode account %s: %w", snap.Ref.ID, err)
		}
		a.ID = snap.Ref.ID
		out = append(out, a)
	}
	return out, nil
}
