package handler

import (
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/BloggingApp/blog-service/internal/dto"
	"github.com/BloggingApp/blog-service/internal/model"
	"github.com/BloggingApp/blog-service/internal/service"
	"github.com/BloggingApp/blog-service/pkg/utils"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/spf13/viper"
)

const testSigningKey = "test-signing-key"

// fakePostService implements service.Post in memory with the store's
// semantics: assigned ids, likes starting at 0, atomic increments,
// newest-first listing.
type fakePostService struct {
	mu    sync.Mutex
	posts map[uuid.UUID]*model.Post
	seq   int
}

func newFakePostService() *fakePostService {
	return &fakePostService{posts: make(map[uuid.UUID]*model.Post)}
}

func (f *fakePostService) Create(_ context.Context, req dto.SavePostRequest) (*model.Post, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.seq++
	post := &model.Post{
		ID:        uuid.New(),
		Title:     req.Title,
		Sections:  append([]model.Section(nil), req.Sections...),
		CreatedAt: time.Unix(1700000000, 0).Add(time.Duration(f.seq) * time.Second),
	}
	f.posts[post.ID] = post
	copied := *post
	return &copied, nil
}

func (f *fakePostService) FindAll(_ context.Context) ([]*model.Post, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var posts []*model.Post
	for _, post := range f.posts {
		copied := *post
		posts = append(posts, &copied)
	}
	sort.Slice(posts, func(i, j int) bool { return posts[i].CreatedAt.After(posts[j].CreatedAt) })
	return posts, nil
}

func (f *fakePostService) FindByID(_ context.Context, id uuid.UUID) (*model.Post, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	post, ok := f.posts[id]
	if !ok {
		return nil, service.ErrPostNotFound
	}
	copied := *post
	return &copied, nil
}

func (f *fakePostService) Update(_ context.Context, id uuid.UUID, req dto.SavePostRequest) (*model.Post, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	post, ok := f.posts[id]
	if !ok {
		return nil, service.ErrPostNotFound
	}
	post.Title = req.Title
	post.Sections = append([]model.Section(nil), req.Sections...)
	copied := *post
	return &copied, nil
}

func (f *fakePostService) Delete(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.posts[id]; !ok {
		return service.ErrPostNotFound
	}
	delete(f.posts, id)
	return nil
}

func (f *fakePostService) Like(_ context.Context, id uuid.UUID) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	post, ok := f.posts[id]
	if !ok {
		return 0, service.ErrPostNotFound
	}
	post.Likes++
	return post.Likes, nil
}

func (f *fakePostService) UploadImage(_ context.Context, _ multipart.File, _ *multipart.FileHeader) (string, error) {
	return "https://cdn.local/post-images/img.png", nil
}

// fakeAuthService mirrors the credential verifier contract for a fixed
// secret.
type fakeAuthService struct{}

func (fakeAuthService) Login(secret string) (string, error) {
	if secret == "" {
		return "", service.ErrMissingSecret
	}
	if secret != "s3cret" {
		return "", service.ErrInvalidSecret
	}
	return utils.SignJWT(jwt.MapClaims{"admin": true}, []byte(testSigningKey), service.TOKEN_TTL)
}

func newTestRouter(t *testing.T) (*gin.Engine, *fakePostService) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	t.Setenv("JWT_SIGNING_SECRET", testSigningKey)
	viper.Set("client.origin", "http://localhost:5173")
	posts := newFakePostService()
	h := New(&service.Service{Auth: fakeAuthService{}, Post: posts})
	return h.InitRoutes(), posts
}

func adminToken(t *testing.T) string {
	t.Helper()
	token, err := utils.SignJWT(jwt.MapClaims{"admin": true}, []byte(testSigningKey), time.Hour)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func doRequest(r *gin.Engine, method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	r, _ := newTestRouter(t)
	w := doRequest(r, http.MethodGet, "/", "", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if w.Body.String() != "Blog backend is running!" {
		t.Fatalf("unexpected health body: %q", w.Body.String())
	}
}
