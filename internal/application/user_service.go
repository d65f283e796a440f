package application

import (
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/mygroup/simple-community/internal/domain/entity"
	repo "github.com/mygroup/simple-community/internal/domain/repository"
	"github.com/mygroup/simple-community/pkg/apperr"
	"github.com/mygroup/simple-community/pkg/helpers"
)

// UserService implements signup, login, credential recovery, and account
// maintenance. Presence checks live here, not in binding, because the error
// message must name the first absent field in a fixed order.
type UserService struct {
	Repo   repo.UserRepository
	Tokens *helpers.TokenManager
	Logger *logrus.Logger
}

func NewUserService(repo repo.UserRepository, tokens *helpers.TokenManager, logger *logrus.Logger) *UserService {
	return &UserService{Repo: repo, Tokens: tokens, Logger: logger}
}

// SignupInput carries the raw request fields; nil means absent.
type SignupInput struct {
	Email    *string
	Password *string
	Name     *string
	Phone    *string
}

// LoginInput carries the raw login fields; nil means absent.
type LoginInput struct {
	Email    *string
	Password *string
}

// PasswordResetInput is the unauthenticated reset flow payload.
type PasswordResetInput struct {
	Email          *string
	Password       *string
	NewPassword    *string
	RepeatPassword *string
}

func (s *UserService) Signup(in SignupInput) error {
	if in.Email == nil {
		return apperr.New(apperr.MissingMandatoryProperty, "Email is mandatory")
	}
	if in.Password == nil {
		return apperr.New(apperr.MissingMandatoryProperty, "Password is mandatory")
	}
	if in.Name == nil {
		return apperr.New(apperr.MissingMandatoryProperty, "Name is mandatory")
	}
	if in.Phone == nil {
		return apperr.New(apperr.MissingMandatoryProperty, "Phone number is mandatory")
	}

	exists, err := s.Repo.ExistsByEmail(*in.Email)
	if err != nil {
		return err
	}
	if exists {
		return apperr.New(apperr.DuplicateProperty, "Email is duplicated")
	}

	hash, err := helpers.HashPassword(*in.Password)
	if err != nil {
		return err
	}

	u := &entity.User{Email: *in.Email, Password: hash, Name: *in.Name, Phone: *in.Phone}
	if err := s.Repo.Create(u); err != nil {
		// The unique index closes the check-then-insert race under
		// concurrent signups with the same email.
		if errors.Is(err, repo.ErrDuplicate) {
			return apperr.New(apperr.DuplicateProperty, "Email is duplicated")
		}
		return err
	}

	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"user_id": u.ID}).Info("user signed up")
	}
	return nil
}

// Login verifies the credentials and issues a bearer token. The two failure
// messages are distinct on purpose; see DESIGN.md on the enumeration
// trade-off inherited from the wire contract.
func (s *UserService) Login(in LoginInput) (string, error) {
	if in.Email == nil {
		return "", apperr.New(apperr.MissingMandatoryProperty, "Email is mandatory")
	}
	if in.Password == nil {
		return "", apperr.New(apperr.MissingMandatoryProperty, "Password is mandatory")
	}

	u, err := s.Repo.GetByEmail(*in.Email)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return "", apperr.New(apperr.LoginFail, "Email is invalid")
		}
		return "", err
	}
	if !helpers.CompareHashAndPassword(u.Password, *in.Password) {
		return "", apperr.New(apperr.LoginFail, "Password is invalid")
	}

	return s.Tokens.Issue(u.ID)
}

// FindEmailByNameAndPhone recovers the registered email for a name/phone pair.
func (s *UserService) FindEmailByNameAndPhone(name, phone *string) (string, error) {
	if name == nil {
		return "", apperr.New(apperr.MissingMandatoryProperty, "Name is mandatory")
	}
	if phone == nil {
		return "", apperr.New(apperr.MissingMandatoryProperty, "Phone number is mandatory")
	}

	u, err := s.Repo.GetByNameAndPhone(*name, *phone)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return "", apperr.New(apperr.UserNotFound, "User cannot be found")
		}
		return "", err
	}
	return u.Email, nil
}

// FindEmailByEmailAndPhone confirms that an account with the given email and
// phone exists; the email is echoed back unchanged.
func (s *UserService) FindEmailByEmailAndPhone(email, phone *string) (string, error) {
	if email == nil {
		return "", apperr.New(apperr.MissingMandatoryProperty, "Email is mandatory")
	}
	if phone == nil {
		return "", apperr.New(apperr.MissingMandatoryProperty, "Phone number is mandatory")
	}

	exists, err := s.Repo.ExistsByEmailAndPhone(*email, *phone)
	if err != nil {
		return "", err
	}
	if !exists {
		return "", apperr.New(apperr.UserNotFound, "User cannot be found")
	}
	return *email, nil
}

// ModifyPasswordByEmail is the unauthenticated reset flow: it requires the
// current password to verify before the new one is stored.
func (s *UserService) ModifyPasswordByEmail(in PasswordResetInput) error {
	if in.Email == nil {
		return apperr.New(apperr.MissingMandatoryProperty, "Email is mandatory")
	}
	if in.Password == nil {
		return apperr.New(apperr.MissingMandatoryProperty, "Password is mandatory")
	}
	if in.NewPassword == nil {
		return apperr.New(apperr.MissingMandatoryProperty, "New Password is mandatory")
	}
	if in.RepeatPassword == nil {
		return apperr.New(apperr.MissingMandatoryProperty, "Repeat Password is mandatory")
	}
	if *in.NewPassword != *in.RepeatPassword {
		return apperr.New(apperr.MismatchPassword, "Password is mismatched")
	}

	u, err := s.Repo.GetByEmail(*in.Email)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return apperr.New(apperr.UserNotFound, "User cannot be found")
		}
		return err
	}
	if !helpers.CompareHashAndPassword(u.Password, *in.Password) {
		return apperr.New(apperr.InvalidPassword, "Password is invalid")
	}

	return s.storePassword(u, *in.NewPassword)
}

// ModifyPasswordByID is the authenticated reset flow. The validated session
// stands in for the current-password check; the overwrite is unconditional.
func (s *UserService) ModifyPasswordByID(userID string, newPassword *string) error {
	if userID == "" {
		return apperr.New(apperr.UserNotFound, "User cannot be found")
	}
	if newPassword == nil {
		return apperr.New(apperr.MissingMandatoryProperty, "New Password is mandatory")
	}

	u, err := s.Repo.GetByID(userID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return apperr.New(apperr.UserNotFound, "User cannot be found")
		}
		return err
	}

	return s.storePassword(u, *newPassword)
}

func (s *UserService) storePassword(u *entity.User, plain string) error {
	hash, err := helpers.HashPassword(plain)
	if err != nil {
		return err
	}
	u.Password = hash
	return s.Repo.Update(u)
}

// ModifyProfile overwrites the display name and, when supplied, the phone
// number. Neither field carries a uniqueness constraint.
func (s *UserService) ModifyProfile(userID string, name, phone *string) error {
	if userID == "" {
		return apperr.New(apperr.UserNotFound, "User cannot be found")
	}
	if name == nil {
		return apperr.New(apperr.MissingMandatoryProperty, "Name is mandatory")
	}

	u, err := s.Repo.GetByID(userID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return apperr.New(apperr.UserNotFound, "User cannot be found")
		}
		return err
	}

	u.Name = *name
	if phone != nil {
		u.Phone = *phone
	}
	return s.Repo.Update(u)
}

func (s *UserService) Remove(userID string) error {
	if userID == "" {
		return apperr.New(apperr.UserNotFound, "User cannot be found")
	}
	if err := s.Repo.Delete(userID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return apperr.New(apperr.UserNotFound, "User cannot be found")
		}
		return err
	}
	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"user_id": userID}).Info("user removed")
	}
	return nil
}
