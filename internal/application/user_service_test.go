package application

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mygroup/simple-community/internal/domain/entity"
	repo "github.com/mygroup/simple-community/internal/domain/repository"
	"github.com/mygroup/simple-community/pkg/apperr"
	"github.com/mygroup/simple-community/pkg/helpers"
)

func newUserService(r repo.UserRepository) *UserService {
	tokens := helpers.NewTokenManager("unit-test-secret-key", "simple community", 6*time.Hour)
	return NewUserService(r, tokens, nil)
}

func requireKind(t *testing.T, err error, kind apperr.Kind, message string) {
	t.Helper()
	require.Error(t, err)
	e, ok := apperr.As(err)
	require.True(t, ok, "expected typed failure, got %v", err)
	assert.Equal(t, kind, e.Kind)
	assert.Equal(t, message, e.Message)
}

func TestSignupMissingFieldsInOrder(t *testing.T) {
	s := newUserService(&mockUserRepo{})

	cases := []struct {
		name    string
		in      SignupInput
		message string
	}{
		{"email first", SignupInput{}, "Email is mandatory"},
		{"then password", SignupInput{Email: strptr("a@b.com")}, "Password is mandatory"},
		{"then name", SignupInput{Email: strptr("a@b.com"), Password: strptr("pw12345")}, "Name is mandatory"},
		{"then phone", SignupInput{Email: strptr("a@b.com"), Password: strptr("pw12345"), Name: strptr("Tom")}, "Phone number is mandatory"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			requireKind(t, s.Signup(tc.in), apperr.MissingMandatoryProperty, tc.message)
		})
	}
}

func TestSignupHashesPassword(t *testing.T) {
	var created *entity.User
	s := newUserService(&mockUserRepo{
		createFn: func(u *entity.User) error {
			u.ID = "u-1"
			created = u
			return nil
		},
	})

	err := s.Signup(SignupInput{
		Email:    strptr("a@b.com"),
		Password: strptr("pw12345"),
		Name:     strptr("Tom"),
		Phone:    strptr("010-1"),
	})
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.NotEqual(t, "pw12345", created.Password)
	assert.True(t, helpers.CompareHashAndPassword(created.Password, "pw12345"))
}

func TestSignupDuplicateEmail(t *testing.T) {
	s := newUserService(&mockUserRepo{
		existsByEmailFn: func(string) (bool, error) { return true, nil },
	})
	err := s.Signup(SignupInput{
		Email:    strptr("a@b.com"),
		Password: strptr("pw12345"),
		Name:     strptr("Tom"),
		Phone:    strptr("010-1"),
	})
	requireKind(t, err, apperr.DuplicateProperty, "Email is duplicated")
}

func TestSignupDuplicateEmailRace(t *testing.T) {
	// exists check passes but the insert loses the race on the unique index
	s := newUserService(&mockUserRepo{
		createFn: func(*entity.User) error { return repo.ErrDuplicate },
	})
	err := s.Signup(SignupInput{
		Email:    strptr("a@b.com"),
		Password: strptr("pw12345"),
		Name:     strptr("Tom"),
		Phone:    strptr("010-1"),
	})
	requireKind(t, err, apperr.DuplicateProperty, "Email is duplicated")
}

func seededUser(t *testing.T, password string) *entity.User {
	t.Helper()
	hash, err := helpers.HashPassword(password)
	require.NoError(t, err)
	return &entity.User{ID: "u-1", Email: "a@b.com", Password: hash, Name: "Tom", Phone: "010-1"}
}

func TestLoginUnknownEmail(t *testing.T) {
	s := newUserService(&mockUserRepo{})
	_, err := s.Login(LoginInput{Email: strptr("nobody@b.com"), Password: strptr("pw12345")})
	requireKind(t, err, apperr.LoginFail, "Email is invalid")
}

func TestLoginWrongPassword(t *testing.T) {
	u := seededUser(t, "pw12345")
	s := newUserService(&mockUserRepo{
		getByEmailFn: func(string) (*entity.User, error) { return u, nil },
	})
	_, err := s.Login(LoginInput{Email: strptr("a@b.com"), Password: strptr("wrong")})
	requireKind(t, err, apperr.LoginFail, "Password is invalid")
}

func TestLoginIssuesTokenForUser(t *testing.T) {
	u := seededUser(t, "pw12345")
	s := newUserService(&mockUserRepo{
		getByEmailFn: func(string) (*entity.User, error) { return u, nil },
	})

	token, err := s.Login(LoginInput{Email: strptr("a@b.com"), Password: strptr("pw12345")})
	require.NoError(t, err)

	subject, err := s.Tokens.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "u-1", subject)
}

func TestFindEmailByNameAndPhone(t *testing.T) {
	u := seededUser(t, "pw12345")
	s := newUserService(&mockUserRepo{
		getByNameAndPhoneFn: func(name, phone string) (*entity.User, error) {
			if name == "Tom" && phone == "010-1" {
				return u, nil
			}
			return nil, repo.ErrNotFound
		},
	})

	email, err := s.FindEmailByNameAndPhone(strptr("Tom"), strptr("010-1"))
	require.NoError(t, err)
	assert.Equal(t, "a@b.com", email)

	_, err = s.FindEmailByNameAndPhone(strptr("Jerry"), strptr("010-1"))
	requireKind(t, err, apperr.UserNotFound, "User cannot be found")

	_, err = s.FindEmailByNameAndPhone(nil, strptr("010-1"))
	requireKind(t, err, apperr.MissingMandatoryProperty, "Name is mandatory")
}

func TestFindEmailByEmailAndPhoneEchoesInput(t *testing.T) {
	s := newUserService(&mockUserRepo{
		existsByEmailAndPhoneFn: func(email, phone string) (bool, error) {
			return email == "a@b.com" && phone == "010-1", nil
		},
	})

	email, err := s.FindEmailByEmailAndPhone(strptr("a@b.com"), strptr("010-1"))
	require.NoError(t, err)
	assert.Equal(t, "a@b.com", email)

	_, err = s.FindEmailByEmailAndPhone(strptr("a@b.com"), strptr("010-2"))
	requireKind(t, err, apperr.UserNotFound, "User cannot be found")
}

func TestModifyPasswordByEmail(t *testing.T) {
	u := seededUser(t, "pw12345")
	var updated *entity.User
	s := newUserService(&mockUserRepo{
		getByEmailFn: func(string) (*entity.User, error) { return u, nil },
		updateFn: func(user *entity.User) error {
			updated = user
			return nil
		},
	})

	in := PasswordResetInput{
		Email:          strptr("a@b.com"),
		Password:       strptr("pw12345"),
		NewPassword:    strptr("newpw678"),
		RepeatPassword: strptr("newpw678"),
	}
	require.NoError(t, s.ModifyPasswordByEmail(in))
	require.NotNil(t, updated)
	assert.True(t, helpers.CompareHashAndPassword(updated.Password, "newpw678"))
}

func TestModifyPasswordByEmailMismatch(t *testing.T) {
	s := newUserService(&mockUserRepo{})
	err := s.ModifyPasswordByEmail(PasswordResetInput{
		Email:          strptr("a@b.com"),
		Password:       strptr("pw12345"),
		NewPassword:    strptr("newpw678"),
		RepeatPassword: strptr("different"),
	})
	requireKind(t, err, apperr.MismatchPassword, "Password is mismatched")
}

func TestModifyPasswordByEmailWrongCurrent(t *testing.T) {
	u := seededUser(t, "pw12345")
	s := newUserService(&mockUserRepo{
		getByEmailFn: func(string) (*entity.User, error) { return u, nil },
	})
	err := s.ModifyPasswordByEmail(PasswordResetInput{
		Email:          strptr("a@b.com"),
		Password:       strptr("wrong"),
		NewPassword:    strptr("newpw678"),
		RepeatPassword: strptr("newpw678"),
	})
	requireKind(t, err, apperr.InvalidPassword, "Password is invalid")
}

func TestModifyPasswordByID(t *testing.T) {
	u := seededUser(t, "pw12345")
	var updated *entity.User
	s := newUserService(&mockUserRepo{
		getByIDFn: func(string) (*entity.User, error) { return u, nil },
		updateFn: func(user *entity.User) error {
			updated = user
			return nil
		},
	})

	// the authenticated flow overwrites without a current-password check
	require.NoError(t, s.ModifyPasswordByID("u-1", strptr("newpw678")))
	require.NotNil(t, updated)
	assert.True(t, helpers.CompareHashAndPassword(updated.Password, "newpw678"))

	requireKind(t, s.ModifyPasswordByID("u-1", nil), apperr.MissingMandatoryProperty, "New Password is mandatory")
	requireKind(t, s.ModifyPasswordByID("", strptr("x")), apperr.UserNotFound, "User cannot be found")
}

func TestModifyProfile(t *testing.T) {
	u := seededUser(t, "pw12345")
	var updated *entity.User
	s := newUserService(&mockUserRepo{
		getByIDFn: func(string) (*entity.User, error) { return u, nil },
		updateFn: func(user *entity.User) error {
			updated = user
			return nil
		},
	})

	require.NoError(t, s.ModifyProfile("u-1", strptr("Thomas"), nil))
	require.NotNil(t, updated)
	assert.Equal(t, "Thomas", updated.Name)
	assert.Equal(t, "010-1", updated.Phone) // absent phone keeps the stored value

	require.NoError(t, s.ModifyProfile("u-1", strptr("Thomas"), strptr("010-9")))
	assert.Equal(t, "010-9", updated.Phone)
}

func TestRemoveUser(t *testing.T) {
	deleted := ""
	s := newUserService(&mockUserRepo{
		deleteFn: func(id string) error {
			deleted = id
			return nil
		},
	})
	require.NoError(t, s.Remove("u-1"))
	assert.Equal(t, "u-1", deleted)

	s = newUserService(&mockUserRepo{})
	requireKind(t, s.Remove("ghost"), apperr.UserNotFound, "User cannot be found")
}
