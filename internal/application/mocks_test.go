package application

import (
	"github.com/mygroup/simple-community/internal/domain/entity"
	repo "github.com/mygroup/simple-community/internal/domain/repository"
)

// Function-field mocks; unset methods fall back to "not found" / no-op so
// each test only wires what it exercises.

type mockUserRepo struct {
	createFn                func(u *entity.User) error
	getByIDFn               func(id string) (*entity.User, error)
	getByEmailFn            func(email string) (*entity.User, error)
	getByNameAndPhoneFn     func(name, phone string) (*entity.User, error)
	existsByEmailFn         func(email string) (bool, error)
	existsByEmailAndPhoneFn func(email, phone string) (bool, error)
	existsByIDFn            func(id string) (bool, error)
	updateFn                func(u *entity.User) error
	deleteFn                func(id string) error
}

func (m *mockUserRepo) Create(u *entity.User) error {
	if m.createFn != nil {
		return m.createFn(u)
	}
	return nil
}

func (m *mockUserRepo) GetByID(id string) (*entity.User, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(id)
	}
	return nil, repo.ErrNotFound
}

func (m *mockUserRepo) GetByEmail(email string) (*entity.User, error) {
	if m.getByEmailFn != nil {
		return m.getByEmailFn(email)
	}
	return nil, repo.ErrNotFound
}

func (m *mockUserRepo) GetByNameAndPhone(name, phone string) (*entity.User, error) {
	if m.getByNameAndPhoneFn != nil {
		return m.getByNameAndPhoneFn(name, phone)
	}
	return nil, repo.ErrNotFound
}

func (m *mockUserRepo) ExistsByEmail(email string) (bool, error) {
	if m.existsByEmailFn != nil {
		return m.existsByEmailFn(email)
	}
	return false, nil
}

func (m *mockUserRepo) ExistsByEmailAndPhone(email, phone string) (bool, error) {
	if m.existsByEmailAndPhoneFn != nil {
		return m.existsByEmailAndPhoneFn(email, phone)
	}
	return false, nil
}

func (m *mockUserRepo) ExistsByID(id string) (bool, error) {
	if m.existsByIDFn != nil {
		return m.existsByIDFn(id)
	}
	return false, nil
}

func (m *mockUserRepo) Update(u *entity.User) error {
	if m.updateFn != nil {
		return m.updateFn(u)
	}
	return nil
}

func (m *mockUserRepo) Delete(id string) error {
	if m.deleteFn != nil {
		return m.deleteFn(id)
	}
	return repo.ErrNotFound
}

type mockPostRepo struct {
	createFn           func(p *entity.Post) error
	getByIDFn          func(id int64) (*entity.Post, error)
	listAllDescFn      func() ([]*entity.Post, error)
	listByTitleDescFn  func(keyword string) ([]*entity.Post, error)
	listByAuthorDescFn func(keyword string) ([]*entity.Post, error)
	updateFn           func(p *entity.Post) error
	deleteFn           func(id int64) error
}

func (m *mockPostRepo) Create(p *entity.Post) error {
	if m.createFn != nil {
		return m.createFn(p)
	}
	return nil
}

func (m *mockPostRepo) GetByID(id int64) (*entity.Post, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(id)
	}
	return nil, repo.ErrNotFound
}

func (m *mockPostRepo) ListAllDesc() ([]*entity.Post, error) {
	if m.listAllDescFn != nil {
		return m.listAllDescFn()
	}
	return nil, nil
}

func (m *mockPostRepo) ListByTitleDesc(keyword string) ([]*entity.Post, error) {
	if m.listByTitleDescFn != nil {
		return m.listByTitleDescFn(keyword)
	}
	return nil, nil
}

func (m *mockPostRepo) ListByAuthorDesc(keyword string) ([]*entity.Post, error) {
	if m.listByAuthorDescFn != nil {
		return m.listByAuthorDescFn(keyword)
	}
	return nil, nil
}

func (m *mockPostRepo) Update(p *entity.Post) error {
	if m.updateFn != nil {
		return m.updateFn(p)
	}
	return nil
}

func (m *mockPostRepo) Delete(id int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(id)
	}
	return repo.ErrNotFound
}

var (
	_ repo.UserRepository = (*mockUserRepo)(nil)
	_ repo.PostRepository = (*mockPostRepo)(nil)
)

func strptr(s string) *string { return &s }
