package store

import (
	"context"

	"github.com/MKhiriev/go-user-service/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists user accounts in the "users" table.
type UserRepository interface {
	// CreateUser inserts user and returns it with the server-assigned ID and
	// CreatedAt. The password hash is not read back.
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	// FindUserByUsername returns the full row, including the password hash.
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
	// FindUserByID returns the profile fields of the user; the hash is left empty.
	FindUserByID(ctx context.Context, id int64) (models.User, error)
	// UpdateProfile sets the username and email of the user identified by user.ID.
	UpdateProfile(ctx context.Context, user models.User) (models.User, error)
}
