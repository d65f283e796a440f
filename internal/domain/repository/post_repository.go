package repository

import "github.com/mygroup/simple-community/internal/domain/entity"

// PostRepository defines the interface for post-related database operations.
// All list queries return rows ordered by descending id, most recent first.
type PostRepository interface {
	Create(p *entity.Post) error
	GetByID(id int64) (*entity.Post, error)
	ListAllDesc() ([]*entity.Post, error)
	ListByTitleDesc(keyword string) ([]*entity.Post, error)
	ListByAuthorDesc(keyword string) ([]*entity.Post, error)
	Update(p *entity.Post) error
	Delete(id int64) error
}
