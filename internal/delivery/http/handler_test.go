package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Arcadesys/imagengen-ig-sub001/internal/auth"
	"github.com/Arcadesys/imagengen-ig-sub001/internal/mocks"
	"github.com/Arcadesys/imagengen-ig-sub001/internal/model"
	"github.com/Arcadesys/imagengen-ig-sub001/internal/service"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// stubLimiter lets tests flip the verify rate limit on and off.
type stubLimiter struct {
	allowed bool
}

func (l *stubLimiter) Allow(ctx context.Context, key string) (bool, error) {
	return l.allowed, nil
}

// testEnv wires a full router over mocked repositories.
type testEnv struct {
	router     *gin.Engine
	tokens     *auth.Service
	users      *mocks.MockUserRepository
	generators *mocks.MockGeneratorRepository
	codes      *mocks.MockSessionCodeRepository
	images     *mocks.MockImageRepository
	sessions   *mocks.MockSessionRepository
	limiter    *stubLimiter
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	tokens, err := auth.NewService("test-secret-test-secret-test-secret", time.Hour)
	require.NoError(t, err)

	env := &testEnv{
		tokens:     tokens,
		users:      mocks.NewMockUserRepository(t),
		generators: mocks.NewMockGeneratorRepository(t),
		codes:      mocks.NewMockSessionCodeRepository(t),
		images:     mocks.NewMockImageRepository(t),
		sessions:   mocks.NewMockSessionRepository(t),
		limiter:    &stubLimiter{allowed: true},
	}

	traits := mocks.NewMockTraitRepository(t)
	blobs := mocks.NewMockBlobStore(t)
	provider := mocks.NewMockImageGenerator(t)

	accounts := service.NewAccountService(env.users, tokens)
	generatorSvc := service.NewGeneratorService(env.generators)
	codeSvc := service.NewCodeService(env.codes)
	imageSvc := service.NewImageService(env.images, blobs)
	sessionSvc := service.NewSessionService(env.sessions, env.generators)
	generationSvc := service.NewGenerationService(env.generators, env.images, env.sessions, codeSvc, provider, blobs)
	catalogSvc := service.NewCatalogService(traits)

	h := New(accounts, generatorSvc, codeSvc, imageSvc, sessionSvc, generationSvc, catalogSvc, tokens, env.limiter)
	env.router = h.NewRouter(zerolog.Nop(), []string{"http://localhost:3000"})
	return env
}

func (env *testEnv) request(t *testing.T, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)
	return rec
}

// loginAs issues a token for the user and stubs the loader lookup the auth
// middleware performs on every request.
func (env *testEnv) loginAs(t *testing.T, user *model.User) string {
	t.Helper()
	token, err := env.tokens.IssueToken(user)
	require.NoError(t, err)
	env.users.On("GetByID", mock.Anything, user.ID).Return(user, nil)
	return token
}

func testUser(role model.Role) *model.User {
	return &model.User{
		ID:    uuid.New(),
		Email: "booth@example.com",
		Name:  "Booth Operator",
		Role:  role,
	}
}

func TestVerifySessionCode(t *testing.T) {
	t.Run("valid code reports remaining generations", func(t *testing.T) {
		env := newTestEnv(t)
		env.codes.On("GetByCode", mock.Anything, "DINO22").Return(&model.SessionCode{
			Code:            "DINO22",
			IsActive:        true,
			MaxGenerations:  10,
			UsedGenerations: 3,
		}, nil).Once()

		rec := env.request(t, http.MethodPost, "/api/session-codes/verify",
			gin.H{"code": "dino22"}, "")

		require.Equal(t, http.StatusOK, rec.Code)
		var resp service.VerifyResult
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.True(t, resp.Valid)
		assert.Equal(t, 7, resp.RemainingGenerations)
		env.codes.AssertExpectations(t)
	})

	t.Run("unknown code is 404", func(t *testing.T) {
		env := newTestEnv(t)
		env.codes.On("GetByCode", mock.Anything, "NOSUCH1").Return(nil, model.ErrCodeNotFound).Once()

		rec := env.request(t, http.MethodPost, "/api/session-codes/verify",
			gin.H{"code": "nosuch1"}, "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("exhausted code is 403 with a reason", func(t *testing.T) {
		env := newTestEnv(t)
		env.codes.On("GetByCode", mock.Anything, "DINO22").Return(&model.SessionCode{
			Code:            "DINO22",
			IsActive:        true,
			MaxGenerations:  5,
			UsedGenerations: 5,
		}, nil).Once()

		rec := env.request(t, http.MethodPost, "/api/session-codes/verify",
			gin.H{"code": "DINO22"}, "")

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Contains(t, rec.Body.String(), `"reason":"limit-reached"`)
	})

	t.Run("inactive code reports its reason", func(t *testing.T) {
		env := newTestEnv(t)
		env.codes.On("GetByCode", mock.Anything, "DINO22").Return(&model.SessionCode{
			Code:           "DINO22",
			IsActive:       false,
			MaxGenerations: 5,
		}, nil).Once()

		rec := env.request(t, http.MethodPost, "/api/session-codes/verify",
			gin.H{"code": "DINO22"}, "")

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Contains(t, rec.Body.String(), `"reason":"inactive"`)
	})

	t.Run("rate limited is 429 and skips the lookup", func(t *testing.T) {
		env := newTestEnv(t)
		env.limiter.allowed = false

		rec := env.request(t, http.MethodPost, "/api/session-codes/verify",
			gin.H{"code": "DINO22"}, "")

		assert.Equal(t, http.StatusTooManyRequests, rec.Code)
		env.codes.AssertNotCalled(t, "GetByCode", mock.Anything, mock.Anything)
	})

	t.Run("malformed body is 400", func(t *testing.T) {
		env := newTestEnv(t)

		rec := env.request(t, http.MethodPost, "/api/session-codes/verify", gin.H{}, "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestGenerateAuthGating(t *testing.T) {
	t.Run("anonymous request without code is 401", func(t *testing.T) {
		env := newTestEnv(t)
		env.generators.On("GetBySlug", mock.Anything, "dino-me").Return(&model.Generator{
			Slug:     "dino-me",
			IsActive: true,
			Config: model.GeneratorConfig{
				Schema: &model.QuestionSchema{
					Questions:      []model.Question{{ID: "species", Type: model.QuestionTypeText}},
					PromptTemplate: "A {{species}} portrait",
				},
			},
		}, nil).Once()

		rec := env.request(t, http.MethodPost, "/api/generate",
			gin.H{"generatorSlug": "dino-me", "answers": gin.H{"species": "T-Rex"}}, "")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("unknown generator is 404", func(t *testing.T) {
		env := newTestEnv(t)
		env.generators.On("GetBySlug", mock.Anything, "missing").Return(nil, model.ErrGeneratorNotFound).Once()

		rec := env.request(t, http.MethodPost, "/api/generate",
			gin.H{"generatorSlug": "missing"}, "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestGeneratorRoutes(t *testing.T) {
	t.Run("list is public", func(t *testing.T) {
		env := newTestEnv(t)
		env.generators.On("ListActive", mock.Anything).Return([]model.Generator{
			{Slug: "dino-me", Name: "Dino Me", IsActive: true},
		}, nil).Once()

		rec := env.request(t, http.MethodGet, "/api/generators", nil, "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "dino-me")
	})

	t.Run("create requires auth", func(t *testing.T) {
		env := newTestEnv(t)

		rec := env.request(t, http.MethodPost, "/api/generators",
			gin.H{"slug": "dino-me", "name": "Dino Me"}, "")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("create with auth persists", func(t *testing.T) {
		env := newTestEnv(t)
		user := testUser(model.RoleUser)
		token := env.loginAs(t, user)

		env.generators.On("Create", mock.Anything, mock.MatchedBy(func(g *model.Generator) bool {
			return g.Slug == "dino-me" && g.CreatedByID == user.ID
		})).Return(nil).Once()

		rec := env.request(t, http.MethodPost, "/api/generators",
			gin.H{"slug": "dino-me", "name": "Dino Me"}, token)

		assert.Equal(t, http.StatusCreated, rec.Code)
		env.generators.AssertExpectations(t)
	})

	t.Run("save questions rejects partial schema", func(t *testing.T) {
		env := newTestEnv(t)
		token := env.loginAs(t, testUser(model.RoleUser))

		rec := env.request(t, http.MethodPost, "/api/generators/dino-me/questions",
			gin.H{"questions": []gin.H{{"id": "species", "type": "text"}}}, token)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		env.generators.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}

func TestAdminRoutes(t *testing.T) {
	t.Run("regular user is 403", func(t *testing.T) {
		env := newTestEnv(t)
		token := env.loginAs(t, testUser(model.RoleUser))

		rec := env.request(t, http.MethodGet, "/api/admin/session-codes", nil, token)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("admin can mint a code", func(t *testing.T) {
		env := newTestEnv(t)
		token := env.loginAs(t, testUser(model.RoleAdmin))

		env.codes.On("Create", mock.Anything, mock.MatchedBy(func(sc *model.SessionCode) bool {
			return sc.Code == "PARTY23" && sc.MaxGenerations == 25 && sc.IsActive
		})).Return(nil).Once()

		rec := env.request(t, http.MethodPost, "/api/admin/session-codes",
			gin.H{"code": "PARTY23", "maxGenerations": 25}, token)

		assert.Equal(t, http.StatusCreated, rec.Code)
		env.codes.AssertExpectations(t)
	})
}

func TestRegisterAndLogin(t *testing.T) {
	t.Run("register issues a token", func(t *testing.T) {
		env := newTestEnv(t)
		env.users.On("Create", mock.Anything, mock.MatchedBy(func(u *model.User) bool {
			return u.Email == "new@example.com" && u.Role == model.RoleUser
		})).Return(nil).Once()

		rec := env.request(t, http.MethodPost, "/api/auth/register",
			gin.H{"email": "new@example.com", "name": "New", "password": "hunter2hunter2"}, "")

		require.Equal(t, http.StatusCreated, rec.Code)
		var resp authResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.NotEmpty(t, resp.Token)
		assert.Equal(t, "new@example.com", resp.User.Email)
	})

	t.Run("duplicate email is 409", func(t *testing.T) {
		env := newTestEnv(t)
		env.users.On("Create", mock.Anything, mock.Anything).Return(model.ErrEmailTaken).Once()

		rec := env.request(t, http.MethodPost, "/api/auth/register",
			gin.H{"email": "dup@example.com", "name": "Dup", "password": "hunter2hunter2"}, "")

		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("wrong password is 401", func(t *testing.T) {
		env := newTestEnv(t)
		hash, err := auth.HashPassword("correct-horse")
		require.NoError(t, err)
		env.users.On("GetByEmail", mock.Anything, "booth@example.com").Return(&model.User{
			ID:           uuid.New(),
			Email:        "booth@example.com",
			PasswordHash: hash,
			Role:         model.RoleUser,
		}, nil).Once()

		rec := env.request(t, http.MethodPost, "/api/auth/login",
			gin.H{"email": "booth@example.com", "password": "wrong"}, "")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
