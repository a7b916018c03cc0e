package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recruit_backend/internal/feature/auth/domain/entity"
	"recruit_backend/internal/feature/auth/usecase"
	jwtmw "recruit_backend/internal/platform/jwt"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// mockAuthUsecase is a mock implementation of the AuthUsecase interface.
type mockAuthUsecase struct {
	SignupFunc func(ctx context.Context, name, email, password string) (string, *entity.User, error)
	LoginFunc  func(ctx context.Context, email, password string) (string, *entity.User, error)
	MeFunc     func(ctx context.Context, userID uint) (*entity.User, error)
}

func (m *mockAuthUsecase) Signup(ctx context.Context, name, email, password string) (string, *entity.User, error) {
	if m.SignupFunc != nil {
		return m.SignupFunc(ctx, name, email, password)
	}
	return "", nil, errors.New("signup failed")
}

func (m *mockAuthUsecase) Login(ctx context.Context, email, password string) (string, *entity.User, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, email, password)
	}
	return "", nil, usecase.ErrInvalidCredentials
}

func (m *mockAuthUsecase) Me(ctx context.Context, userID uint) (*entity.User, error) {
	if m.MeFunc != nil {
		return m.MeFunc(ctx, userID)
	}
	return nil, usecase.ErrUserNotFound
}

func testUser() *entity.User {
	return &entity.User{ID: 1, Name: "Asha", Email: "asha@example.com", Role: entity.RoleUser}
}

func postJSON(router *gin.Engine, path string, body gin.H) *httptest.ResponseRecorder {
	data, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBuffer(data))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAuthHandler_Signup(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    gin.H
		mockSignupFunc func(ctx context.Context, name, email, password string) (string, *entity.User, error)
		expectedStatus int
	}{
		{
			name:        "success: user registration",
			requestBody: gin.H{"name": "Asha", "email": "asha@example.com", "password": "password123"},
			mockSignupFunc: func(ctx context.Context, name, email, password string) (string, *entity.User, error) {
				return "tok", testUser(), nil
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "failure: missing name",
			requestBody:    gin.H{"email": "asha@example.com", "password": "password123"},
			mockSignupFunc: nil, // usecase is not called
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "failure: invalid email address",
			requestBody:    gin.H{"name": "Asha", "email": "invalid-email", "password": "password123"},
			mockSignupFunc: nil,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "failure: short password",
			requestBody:    gin.H{"name": "Asha", "email": "asha@example.com", "password": "short"},
			mockSignupFunc: nil,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:        "failure: duplicate email",
			requestBody: gin.H{"name": "Asha", "email": "existing@example.com", "password": "password123"},
			mockSignupFunc: func(ctx context.Context, name, email, password string) (string, *entity.User, error) {
				return "", nil, usecase.ErrEmailAlreadyExists
			},
			expectedStatus: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewAuthHandler(&mockAuthUsecase{SignupFunc: tt.mockSignupFunc})
			router := gin.New()
			router.POST("/api/auth/signup", handler.Signup)

			w := postJSON(router, "/api/auth/signup", tt.requestBody)

			assert.Equal(t, tt.expectedStatus, w.Code)

			if tt.expectedStatus == http.StatusCreated {
				var res struct {
					Token string `json:"token"`
					User  gin.H  `json:"user"`
				}
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
				assert.Equal(t, "tok", res.Token)
				assert.NotContains(t, res.User, "password", "password hash must never be serialized")
			}
		})
	}
}

func TestAuthHandler_Login(t *testing.T) {
	t.Run("success returns token and profile", func(t *testing.T) {
		handler := NewAuthHandler(&mockAuthUsecase{
			LoginFunc: func(ctx context.Context, email, password string) (string, *entity.User, error) {
				return "tok", testUser(), nil
			},
		})
		router := gin.New()
		router.POST("/api/auth/login", handler.Login)

		w := postJSON(router, "/api/auth/login", gin.H{"email": "asha@example.com", "password": "password123"})

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("bad credentials yield 401", func(t *testing.T) {
		handler := NewAuthHandler(&mockAuthUsecase{})
		router := gin.New()
		router.POST("/api/auth/login", handler.Login)

		w := postJSON(router, "/api/auth/login", gin.H{"email": "asha@example.com", "password": "wrong-password"})

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("store failure yields a generic 500", func(t *testing.T) {
		handler := NewAuthHandler(&mockAuthUsecase{
			LoginFunc: func(ctx context.Context, email, password string) (string, *entity.User, error) {
				return "", nil, errors.New("connection refused")
			},
		})
		router := gin.New()
		router.POST("/api/auth/login", handler.Login)

		w := postJSON(router, "/api/auth/login", gin.H{"email": "asha@example.com", "password": "password123"})

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "connection refused", "internals must not leak")
	})
}

func TestAuthHandler_Me(t *testing.T) {
	meRouter := func(uc AuthUsecase, userID uint) *gin.Engine {
		router := gin.New()
		router.GET("/api/auth/me", func(c *gin.Context) {
			if userID != 0 {
				c.Set(jwtmw.ContextUserID, userID)
			}
			NewAuthHandler(uc).Me(c)
		})
		return router
	}

	t.Run("returns the profile", func(t *testing.T) {
		router := meRouter(&mockAuthUsecase{
			MeFunc: func(ctx context.Context, userID uint) (*entity.User, error) {
				return testUser(), nil
			},
		}, 1)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/auth/me", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "asha@example.com")
	})

	t.Run("deleted user yields 404", func(t *testing.T) {
		router := meRouter(&mockAuthUsecase{}, 1)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/auth/me", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("anonymous yields 401", func(t *testing.T) {
		router := meRouter(&mockAuthUsecase{}, 0)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/auth/me", nil))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
