package service

import (
	"context"
	"mime/multipart"

	"github.com/BloggingApp/blog-service/internal/dto"
	"github.com/BloggingApp/blog-service/internal/model"
	"github.com/BloggingApp/blog-service/internal/repository"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Auth interface {
	Login(secret string) (string, error)
}

type Post interface {
	Create(ctx context.Context, dto dto.SavePostRequest) (*model.Post, error)
	FindAll(ctx context.Context) ([]*model.Post, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.Post, error)
	Update(ctx context.Context, id uuid.UUID, dto dto.SavePostRequest) (*model.Post, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Like(ctx context.Context, id uuid.UUID) (int64, error)
	UploadImage(ctx context.Context, file multipart.File, fileHeader *multipart.FileHeader) (string, error)
}

type Service struct {
	Auth
	Post
}

func New(logger *zap.Logger, repo *repository.Repository) *Service {
	return &Service{
		Auth: newAuthService(logger),
		Post: newPostService(logger, repo),
	}
}
