package service

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/BloggingApp/blog-service/internal/dto"
	"github.com/BloggingApp/blog-service/internal/model"
	"github.com/BloggingApp/blog-service/internal/repository"
	"github.com/BloggingApp/blog-service/internal/repository/redisrepo"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const postsCacheTTL = time.Hour

type postService struct {
	logger     *zap.Logger
	repo       *repository.Repository
	httpClient *http.Client
}

func newPostService(logger *zap.Logger, repo *repository.Repository) Post {
	return &postService{
		logger:     logger,
		repo:       repo,
		httpClient: &http.Client{},
	}
}

func (s *postService) Create(ctx context.Context, dto dto.SavePostRequest) (*model.Post, error) {
	createdPost, err := s.repo.Postgres.Post.Create(ctx, dto.Title, dto.Sections)
	if err != nil {
		s.logger.Sugar().Errorf("failed to create post: %s", err.Error())
		return nil, ErrInternal
	}

	s.invalidatePostsCache(ctx)

	return createdPost, nil
}

func (s *postService) FindAll(ctx context.Context) ([]*model.Post, error) {
	cachedPosts, err := redisrepo.GetMany[model.Post](s.repo.Redis.Default, ctx, redisrepo.PostsKey())
	if err == nil {
		return cachedPosts, nil
	}
	if err != redis.Nil {
		s.logger.Sugar().Errorf("failed to get posts from redis: %s", err.Error())
	}

	posts, err := s.repo.Postgres.Post.FindAll(ctx)
	if err != nil {
		s.logger.Sugar().Errorf("failed to find posts from postgres: %s", err.Error())
		return nil, ErrInternal
	}

	if err := s.repo.Redis.Default.SetJSON(ctx, redisrepo.PostsKey(), posts, postsCacheTTL); err != nil {
		s.logger.Sugar().Errorf("failed to set posts in redis: %s", err.Error())
	}

	return posts, nil
}

func (s *postService) FindByID(ctx context.Context, id uuid.UUID) (*model.Post, error) {
	cachedPost, err := redisrepo.Get[model.Post](s.repo.Redis.Default, ctx, redisrepo.PostKey(id.String()))
	if err == nil && cachedPost != nil {
		return cachedPost, nil
	}
	if err != nil && err != redis.Nil {
		s.logger.Sugar().Errorf("failed to get post(%s) from redis: %s", id.String(), err.Error())
	}

	post, err := s.repo.Postgres.Post.FindByID(ctx, id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, ErrPostNotFound
		}
		s.logger.Sugar().Errorf("failed to find post(%s) from postgres: %s", id.String(), err.Error())
		return nil, ErrInternal
	}

	if err := s.repo.Redis.Default.SetJSON(ctx, redisrepo.PostKey(id.String()), post, postsCacheTTL); err != nil {
		s.logger.Sugar().Errorf("failed to set post(%s) in redis: %s", id.String(), err.Error())
	}

	return post, nil
}

func (s *postService) Update(ctx context.Context, id uuid.UUID, dto dto.SavePostRequest) (*model.Post, error) {
	updatedPost, err := s.repo.Postgres.Post.Update(ctx, id, dto.Title, dto.Sections)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, ErrPostNotFound
		}
		s.logger.Sugar().Errorf("failed to update post(%s): %s", id.String(), err.Error())
		return nil, ErrInternal
	}

	s.invalidatePostCache(ctx, id)

	return updatedPost, nil
}

func (s *postService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Postgres.Post.Delete(ctx, id); err != nil {
		if err == pgx.ErrNoRows {
			return ErrPostNotFound
		}
		s.logger.Sugar().Errorf("failed to delete post(%s): %s", id.String(), err.Error())
		return ErrInternal
	}

	s.invalidatePostCache(ctx, id)

	return nil
}

func (s *postService) Like(ctx context.Context, id uuid.UUID) (int64, error) {
	likes, err := s.repo.Postgres.Post.IncrementLikes(ctx, id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return 0, ErrPostNotFound
		}
		s.logger.Sugar().Errorf("failed to increment likes for post(%s): %s", id.String(), err.Error())
		return 0, ErrInternal
	}

	s.invalidatePostCache(ctx, id)

	return likes, nil
}

func (s *postService) invalidatePostsCache(ctx context.Context) {
	if err := s.repo.Redis.Default.Del(ctx, redisrepo.PostsKey()).Err(); err != nil {
		s.logger.Sugar().Errorf("failed to invalidate posts cache: %s", err.Error())
	}
}

func (s *postService) invalidatePostCache(ctx context.Context, id uuid.UUID) {
	if err := s.repo.Redis.Default.Del(ctx, redisrepo.PostsKey(), redisrepo.PostKey(id.String())).Err(); err != nil {
		s.logger.Sugar().Errorf("failed to invalidate post(%s) cache: %s", id.String(), err.Error())
	}
}

func (s *postService) UploadImage(ctx context.Context, file multipart.File, fileHeader *multipart.FileHeader) (string, error) {
	contentType := fileHeader.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		return "", ErrFileMustBeImage
	}

	return s.uploadImageToCDN("post-images", file, fileHeader)
}

func (s *postService) uploadImageToCDN(path string, file multipart.File, fileHeader *multipart.FileHeader) (string, error) {
	endpoint := "/upload"
	url := viper.GetString("cdn.origin") + endpoint

	var requestBody bytes.Buffer
	writer := multipart.NewWriter(&requestBody)

	fileWriter, err := writer.CreateFormFile("file", fileHeader.Filename)
	if err != nil {
		s.logger.Sugar().Errorf("failed to create file part for CDN request: %s", err.Error())
		return "", ErrInternal
	}

	if _, err := file.Seek(0, io.SeekStart); err != nil {
		s.logger.Sugar().Errorf("failed to seek to the start of the file: %s", err.Error())
		return "", ErrInternal
	}

	if _, err := io.Copy(fileWriter, file); err != nil {
		s.logger.Sugar().Errorf("failed to copy file content for CDN request: %s", err.Error())
		return "", ErrInternal
	}

	if err := writer.WriteField("path", path); err != nil {
		s.logger.Sugar().Errorf("failed to write path field for CDN request: %s", err.Error())
		return "", ErrInternal
	}

	if err := writer.Close(); err != nil {
		s.logger.Sugar().Errorf("failed to close writer for CDN request: %s", err.Error())
		return "", ErrInternal
	}

	req, err := http.NewRequest(http.MethodPost, url, &requestBody)
	if err != nil {
		s.logger.Sugar().Errorf("failed to create CDN request: %s", err.Error())
		return "", ErrInternal
	}

	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Add("type", "IMAGE")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		s.logger.Sugar().Errorf("failed to do CDN request: %s", err.Error())
		return "", ErrInternal
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		s.logger.Sugar().Errorf("failed to read response body from CDN: %s", err.Error())
		return "", ErrInternal
	}

	if resp.StatusCode != http.StatusOK {
		var bodyJSON map[string]interface{}
		if err := json.Unmarshal(body, &bodyJSON); err != nil {
			s.logger.Sugar().Errorf("failed to decode error response from CDN: %s", err.Error())
		} else {
			s.logger.Sugar().Errorf("ERROR from CDN endpoint(%s), code(%d), details: %s", endpoint, resp.StatusCode, bodyJSON["details"])
		}
		return "", ErrFailedToUploadPostImageToCDN
	}

	return string(body), nil
}
