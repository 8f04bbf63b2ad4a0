package store

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/GregMSThompson/expense-tracker/internal/errs"
	"github.com/GregMSThompson/expense-tracker/internal/models"
)

type userStore struct {
	client *firestore.Client
}

func NewUserStore(client *firestore.Client) *userStore {
	return &userStore{client: client}
}

func (s *userStore) collection() *firestore.CollectionRef {
	return s.client.Collection(usersCollection)
}

func (s *userStore) Create(ctx context.Context, user *models.User) error {
	now := time.Now()
	if user.CreatedAt.IsZero() {
		user.CreatedAt = now
	}
	user.UpdatedAt = now

	_, err := s.collection().Doc(user.UID).Create(ctx, user)
	if err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return errs.NewAlreadyExistsError("user already registered")
		}
		return errs.NewDatabaseError("create", "failed to create user", err)
	}
	return nil
}

func (s *userStore) Get(ctx context.Context, uid string) (*models.User, error) {
	snap, err := s.collection().Doc(uid).Get(ctx)
	return readOne[models.User](snap, err, "user")
}

// Update overwrites the stored profile with user.
func (s *userStore) Update(ctx context.Context, user *models.User) error {
	user.UpdatedAt = time.Now()
	_, err := s.collection().Doc(user.UID).Set(ctx, user)
	if err != nil {
		return errs.NewDatabaseError("update", "failed to update user", err)
	}
	return nil
}

func (s *userStore) Delete(ctx context.Context, uid string) error {
	_, err := s.collection().Doc(uid).Delete(ctx)
	if err != nil {
		return errs.NewDatabaseError("delete", "failed to delete user", err)
	}
	return nil
}

func (s *userStore) ListByRole(ctx context.Context, role string) ([]models.User, error) {
	iter := s.collection().Where("role", "==", role).Documents(ctx)
	return readAll[models.User](iter, "users")
}

func (s *userStore) AdminExists(ctx context.Context) (bool, error) {
	docs, err := s.collection().Where("role", "==", models.RoleAdmin).Limit(1).Documents(ctx).GetAll()
	if err != nil {
		return false, errs.NewDatabaseError("read", "failed to look up admins", err)
	}
	return len(docs) > 0, nil
}
