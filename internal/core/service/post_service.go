package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/blogpress/blog-backend/internal/core/domain"
	"github.com/blogpress/blog-backend/internal/core/ports"
)

// PostService implements post CRUD on top of the post repository, the user
// repository (author resolution) and the configured upload backend.
type PostService struct {
	posts    ports.PostRepository
	users    ports.UserRepository
	uploader ports.Uploader
	logger   zerolog.Logger
}

func NewPostService(posts ports.PostRepository, users ports.UserRepository, uploader ports.Uploader, logger zerolog.Logger) *PostService {
	return &PostService{posts: posts, users: users, uploader: uploader, logger: logger}
}

// Create stores the cover upload and persists a new post. A cover is
// mandatory on creation; the author comes from the caller's session.
func (s *PostService) Create(ctx context.Context, in ports.CreatePostInput) (*domain.Post, error) {
	if in.Upload == nil {
		return nil, domain.ErrCoverRequired
	}

	cover, err := s.uploader.Store(ctx, in.Upload)
	if err != nil {
		s.logger.Error().Err(err).Str("filename", in.Upload.Filename).Msg("cover upload failed")
		return nil, err
	}

	post, err := s.posts.Insert(ctx, &domain.Post{
		Title:    in.Title,
		Summary:  in.Summary,
		Content:  in.Content,
		Cover:    cover,
		AuthorID: in.AuthorID,
	})
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to insert post")
		// The cover is already stored; don't leave it orphaned.
		if rmErr := s.uploader.Remove(ctx, cover); rmErr != nil {
			s.logger.Warn().Err(rmErr).Str("cover", cover).Msg("orphaned cover cleanup failed")
		}
		return nil, err
	}

	s.logger.Info().Str("post_id", post.ID).Str("author_id", in.AuthorID).Msg("post created")
	return post, nil
}

// List returns every post newest-first with author usernames resolved.
// A dangling author reference resolves to an empty name, not a failure.
func (s *PostService) List(ctx context.Context) ([]*domain.Post, error) {
	posts, err := s.posts.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	names := make(map[string]string, len(posts))
	for _, p := range posts {
		name, ok := names[p.AuthorID]
		if !ok {
			name = s.resolveAuthor(ctx, p.AuthorID)
			names[p.AuthorID] = name
		}
		p.AuthorName = name
	}
	return posts, nil
}

func (s *PostService) Get(ctx context.Context, id string) (*domain.Post, error) {
	post, err := s.posts.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	post.AuthorName = s.resolveAuthor(ctx, post.AuthorID)
	return post, nil
}

// Update overwrites title/summary/content unconditionally. The cover is
// replaced only when a new upload accompanies the request; the author is
// never changed. Only the original author may update a post.
func (s *PostService) Update(ctx context.Context, in ports.EditPostInput) error {
	existing, err := s.posts.FindByID(ctx, in.ID)
	if err != nil {
		return err
	}
	if existing.AuthorID != in.CallerID {
		return domain.ErrForbidden
	}

	cover := existing.Cover
	if in.Upload != nil {
		cover, err = s.uploader.Store(ctx, in.Upload)
		if err != nil {
			s.logger.Error().Err(err).Str("post_id", in.ID).Msg("cover replacement failed")
			return err
		}
	}

	if err := s.posts.Update(ctx, in.ID, ports.UpdatePostInput{
		Title:   in.Title,
		Summary: in.Summary,
		Content: in.Content,
		Cover:   cover,
	}); err != nil {
		return err
	}

	s.logger.Info().Str("post_id", in.ID).Bool("cover_replaced", in.Upload != nil).Msg("post updated")
	return nil
}

// Delete removes a post by id. Only the original author may delete.
func (s *PostService) Delete(ctx context.Context, callerID, id string) error {
	existing, err := s.posts.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.AuthorID != callerID {
		return domain.ErrForbidden
	}

	if err := s.posts.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Str("post_id", id).Msg("post deleted")
	return nil
}

func (s *PostService) resolveAuthor(ctx context.Context, authorID string) string {
	user, err := s.users.FindByID(ctx, authorID)
	if err != nil {
		if !errors.Is(err, domain.ErrUserNotFound) {
			s.logger.Warn().Err(err).Str("author_id", authorID).Msg("author lookup failed")
		}
		return ""
	}
	return user.Username
}
