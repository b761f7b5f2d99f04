package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/task-management-api/apperror"
	"github.com/task-management-api/dto"
	"github.com/task-management-api/models"
	"gorm.io/gorm"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeTokens map[string]string

func (f fakeTokens) ValidateToken(token string) (*dto.TokenClaims, error) {
	subject, ok := f[token]
	if !ok {
		return nil, jwt.ErrTokenMalformed
	}
	return &dto.TokenClaims{RegisteredClaims: jwt.RegisteredClaims{Subject: subject}}, nil
}

type fakeUsers map[uint]models.User

func (f fakeUsers) FindByID(_ context.Context, id uint) (models.User, error) {
	user, ok := f[id]
	if !ok {
		return models.User{}, gorm.ErrRecordNotFound
	}
	return user, nil
}

type fakeProjects struct {
	projects map[uint]models.Project
	calls    int
	err      error
}

func (f *fakeProjects) FindByID(_ context.Context, id uint) (models.Project, error) {
	f.calls++
	if f.err != nil {
		return models.Project{}, f.err
	}
	project, ok := f.projects[id]
	if !ok {
		return models.Project{}, gorm.ErrRecordNotFound
	}
	return project, nil
}

var (
	alice = models.User{ID: 1, Username: "alice", Email: "alice@example.com", Password: "hash"}
	bob   = models.User{ID: 2, Username: "bob", Email: "bob@example.com", Password: "hash"}

	tokens = fakeTokens{
		"alice-token":   "1",
		"bob-token":     "2",
		"ghost-token":   "99",
		"garbage-token": "not-a-number",
	}
	users = fakeUsers{alice.ID: alice, bob.ID: bob}
)

type errorBody struct {
	Status  string          `json:"status"`
	Message json.RawMessage `json:"message"`
}

func (b errorBody) text(t *testing.T) string {
	t.Helper()
	var message string
	require.NoError(t, json.Unmarshal(b.Message, &message))
	return message
}

func newRouter(projects ProjectFinder) *gin.Engine {
	router := gin.New()
	router.Use(ErrorHandler())

	authed := router.Group("/projects", AuthMiddleware(tokens, users))
	authed.GET("", func(c *gin.Context) {
		user, _ := CurrentUser(c)
		c.JSON(http.StatusOK, user)
	})

	owned := authed.Group("/:projectId", ProjectOwnerMiddleware(projects, "projectId"))
	owned.GET("", func(c *gin.Context) {
		project, _ := CurrentProject(c)
		c.JSON(http.StatusOK, gin.H{"id": project.ID, "name": project.Name})
	})
	owned.GET("/tasks", func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	return router
}

func perform(t *testing.T, router *gin.Engine, path, authorization string) (*httptest.ResponseRecorder, errorBody) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var body errorBody
	if w.Code >= 400 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	}
	return w, body
}

func TestAuthMiddlewareRejections(t *testing.T) {
	router := newRouter(&fakeProjects{})

	tests := []struct {
		name          string
		authorization string
		message       string
	}{
		{"missing header", "", "Authentication required"},
		{"wrong scheme", "Basic alice-token", "Authentication required"},
		{"lowercase scheme", "bearer alice-token", "Authentication required"},
		{"empty token", "Bearer ", "Authentication required"},
		{"unknown token", "Bearer forged", "Invalid or expired token"},
		{"garbage subject", "Bearer garbage-token", "Invalid or expired token"},
		{"deleted user", "Bearer ghost-token", "User not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, body := perform(t, router, "/projects", tt.authorization)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.Equal(t, "error", body.Status)
			assert.Equal(t, tt.message, body.text(t))
		})
	}
}

func TestAuthMiddlewareAttachesIdentityWithoutPassword(t *testing.T) {
	router := newRouter(&fakeProjects{})

	w, _ := perform(t, router, "/projects", "Bearer alice-token")
	require.Equal(t, http.StatusOK, w.Code)

	var identity map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &identity))
	assert.Equal(t, map[string]any{"id": float64(1), "username": "alice", "email": "alice@example.com"}, identity)
}

func TestProjectOwnerMiddleware(t *testing.T) {
	projects := &fakeProjects{projects: map[uint]models.Project{
		10: {ID: 10, Name: "Website", UserID: alice.ID},
	}}
	router := newRouter(projects)

	t.Run("owner passes and project is attached", func(t *testing.T) {
		w, _ := perform(t, router, "/projects/10", "Bearer alice-token")
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"id":10,"name":"Website"}`, w.Body.String())
	})

	t.Run("other user is forbidden", func(t *testing.T) {
		w, body := perform(t, router, "/projects/10", "Bearer bob-token")
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Equal(t, "You are not authorized to access this project", body.text(t))
	})

	t.Run("nested routes share the guard", func(t *testing.T) {
		w, _ := perform(t, router, "/projects/10/tasks", "Bearer bob-token")
		assert.Equal(t, http.StatusForbidden, w.Code)

		w, _ = perform(t, router, "/projects/10/tasks", "Bearer alice-token")
		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("missing project is 404 for everyone", func(t *testing.T) {
		for _, token := range []string{"Bearer alice-token", "Bearer bob-token"} {
			w, body := perform(t, router, "/projects/404", token)
			assert.Equal(t, http.StatusNotFound, w.Code)
			assert.Equal(t, "Project not found", body.text(t))
		}
	})

	t.Run("non numeric id is 404", func(t *testing.T) {
		w, body := perform(t, router, "/projects/abc", "Bearer alice-token")
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Project not found", body.text(t))
	})

	t.Run("unauthenticated never reaches the store", func(t *testing.T) {
		before := projects.calls
		w, _ := perform(t, router, "/projects/10", "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, before, projects.calls)
	})
}

func TestProjectOwnerMiddlewareStoreFailure(t *testing.T) {
	router := newRouter(&fakeProjects{err: errors.New("connection refused")})

	w, body := perform(t, router, "/projects/10", "Bearer alice-token")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Internal Server Error", body.text(t))
}

func TestErrorHandler(t *testing.T) {
	router := gin.New()
	router.Use(ErrorHandler())
	router.GET("/validation", func(c *gin.Context) {
		_ = c.Error(apperror.Validation("Task title is required", "Priority must be low, medium, or high"))
	})
	router.GET("/internal", func(c *gin.Context) {
		_ = c.Error(errors.New("pq: relation does not exist"))
	})
	router.GET("/written", func(c *gin.Context) {
		c.JSON(http.StatusAccepted, gin.H{"ok": true})
		_ = c.Error(apperror.NotFound("ignored"))
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/validation", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"status":"error","message":["Task title is required","Priority must be low, medium, or high"]}`, w.Body.String())

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/internal", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"status":"error","message":"Internal Server Error"}`, w.Body.String())
	assert.NotContains(t, w.Body.String(), "relation")

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/written", nil))
	assert.Equal(t, http.StatusAccepted, w.Code)
	assert.JSONEq(t, `{"ok":true}`, w.Body.String())
}

func TestParseID(t *testing.T) {
	id, ok := ParseID("42")
	assert.True(t, ok)
	assert.Equal(t, uint(42), id)

	for _, raw := range []string{"", "0", "-1", "1.5", "abc", "99999999999999999999"} {
		_, ok := ParseID(raw)
		assert.False(t, ok, raw)
	}
}
