package repository

import (
	"errors"

	"github.com/mygroup/simple-community/internal/domain/entity"
)

// Sentinel errors returned by store implementations. Services translate them
// into domain failures; any other error propagates as an unexpected failure.
var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate record")
)

// UserRepository defines the interface for user-related database operations.
type UserRepository interface {
	Create(u *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	GetByNameAndPhone(name, phone string) (*entity.User, error)
	ExistsByEmail(email string) (bool, error)
	ExistsByEmailAndPhone(email, phone string) (bool, error)
	ExistsByID(id string) (bool, error)
	Update(u *entity.User) error
	Delete(id string) error
}
