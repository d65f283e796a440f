package application

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/mygroup/simple-community/internal/domain/entity"
	repo "github.com/mygroup/simple-community/internal/domain/repository"
	"github.com/mygroup/simple-community/pkg/apperr"
	"github.com/mygroup/simple-community/pkg/helpers"
)

const postCacheTTL = 5 * time.Minute

// PostView is the read model returned to the HTTP layer. Author carries the
// display name of the owning user, timestamps are RFC3339.
type PostView struct {
	ID         int64  `json:"id"`
	Title      string `json:"title"`
	Content    string `json:"content"`
	Author     string `json:"author"`
	CreatedAt  string `json:"createdAt"`
	ModifiedAt string `json:"modifiedAt"`
}

func viewOf(p *entity.Post) PostView {
	return PostView{
		ID:         p.ID,
		Title:      p.Title,
		Content:    p.Content,
		Author:     p.AuthorName,
		CreatedAt:  p.CreatedAt.Format(time.RFC3339),
		ModifiedAt: p.ModifiedAt.Format(time.RFC3339),
	}
}

// PostService implements post CRUD with the ownership rule: only the post's
// author may modify or delete it. Redis, when configured, is a read-through
// cache for single-post lookups, invalidated on every mutation.
type PostService struct {
	Users  repo.UserRepository
	Posts  repo.PostRepository
	Redis  *redis.Client
	Logger *logrus.Logger
}

func NewPostService(users repo.UserRepository, posts repo.PostRepository, rdb *redis.Client, logger *logrus.Logger) *PostService {
	return &PostService{Users: users, Posts: posts, Redis: rdb, Logger: logger}
}

func postCacheKey(id int64) string {
	return "post:detail:" + strconv.FormatInt(id, 10)
}

func (s *PostService) Create(ctx context.Context, userID string, title, content *string) (*PostView, error) {
	if title == nil {
		return nil, apperr.New(apperr.MissingMandatoryProperty, "Title is mandatory")
	}
	if content == nil {
		return nil, apperr.New(apperr.MissingMandatoryProperty, "Content is mandatory")
	}

	author, err := s.author(userID)
	if err != nil {
		return nil, err
	}

	p := &entity.Post{Title: *title, Content: *content, AuthorID: author.ID, AuthorName: author.Name}
	if err := s.Posts.Create(p); err != nil {
		return nil, err
	}

	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"post_id": p.ID, "user_id": author.ID}).Info("post created")
	}
	v := viewOf(p)
	return &v, nil
}

func (s *PostService) FindAllDesc(ctx context.Context) ([]PostView, error) {
	posts, err := s.Posts.ListAllDesc()
	if err != nil {
		return nil, err
	}
	return views(posts), nil
}

func (s *PostService) FindAllByTitle(ctx context.Context, keyword string) ([]PostView, error) {
	posts, err := s.Posts.ListByTitleDesc(keyword)
	if err != nil {
		return nil, err
	}
	return views(posts), nil
}

func (s *PostService) FindAllByAuthor(ctx context.Context, keyword string) ([]PostView, error) {
	posts, err := s.Posts.ListByAuthorDesc(keyword)
	if err != nil {
		return nil, err
	}
	return views(posts), nil
}

func (s *PostService) FindByID(ctx context.Context, postID int64) (*PostView, error) {
	if s.Redis != nil {
		var cached PostView
		if ok, err := helpers.RedisGetJSON(ctx, s.Redis, postCacheKey(postID), &cached); err == nil && ok {
			return &cached, nil
		}
	}

	p, err := s.Posts.GetByID(postID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, apperr.New(apperr.PostNotFound, "Post cannot be found")
		}
		return nil, err
	}

	v := viewOf(p)
	if s.Redis != nil {
		if err := helpers.RedisSetJSON(ctx, s.Redis, postCacheKey(postID), v, postCacheTTL); err != nil && s.Logger != nil {
			s.Logger.WithError(err).WithField("post_id", postID).Warn("post cache write failed")
		}
	}
	return &v, nil
}

func (s *PostService) Modify(ctx context.Context, userID string, postID int64, title, content *string) error {
	if title == nil {
		return apperr.New(apperr.MissingMandatoryProperty, "Title is mandatory")
	}
	if content == nil {
		return apperr.New(apperr.MissingMandatoryProperty, "Content is mandatory")
	}

	p, err := s.ownedPost(userID, postID)
	if err != nil {
		return err
	}
	if p.AuthorID != userID {
		return apperr.New(apperr.UnauthorizedUser, "Only the author of the post can modify it")
	}

	p.Title = *title
	p.Content = *content
	if err := s.Posts.Update(p); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return apperr.New(apperr.PostNotFound, "Post cannot be found")
		}
		return err
	}

	s.dropFromCache(ctx, postID)
	return nil
}

func (s *PostService) Remove(ctx context.Context, userID string, postID int64) error {
	p, err := s.ownedPost(userID, postID)
	if err != nil {
		return err
	}
	if p.AuthorID != userID {
		return apperr.New(apperr.UnauthorizedUser, "Only the author of the post can delete it")
	}

	if err := s.Posts.Delete(postID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return apperr.New(apperr.PostNotFound, "Post cannot be found")
		}
		return err
	}

	s.dropFromCache(ctx, postID)
	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"post_id": postID, "user_id": userID}).Info("post removed")
	}
	return nil
}

// ownedPost resolves the requester and the target post for a mutation. The
// ownership comparison itself stays at the call site so the modify and
// delete messages differ.
func (s *PostService) ownedPost(userID string, postID int64) (*entity.Post, error) {
	if userID == "" {
		return nil, apperr.New(apperr.UserNotFound, "User cannot be found")
	}
	exists, err := s.Users.ExistsByID(userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperr.New(apperr.UserNotFound, "User cannot be found")
	}

	p, err := s.Posts.GetByID(postID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, apperr.New(apperr.PostNotFound, "Post cannot be found")
		}
		return nil, err
	}
	return p, nil
}

func (s *PostService) author(userID string) (*entity.User, error) {
	if userID == "" {
		return nil, apperr.New(apperr.UserNotFound, "User cannot be found")
	}
	u, err := s.Users.GetByID(userID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, apperr.New(apperr.UserNotFound, "User cannot be found")
		}
		return nil, err
	}
	return u, nil
}

func (s *PostService) dropFromCache(ctx context.Context, postID int64) {
	if s.Redis == nil {
		return
	}
	if err := helpers.RedisDel(ctx, s.Redis, postCacheKey(postID)); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("post_id", postID).Warn("post cache invalidation failed")
	}
}

func views(posts []*entity.Post) []PostView {
	out := make([]PostView, 0, len(posts))
	for _, p := range posts {
		out = append(out, viewOf(p))
	}
	return out
}
