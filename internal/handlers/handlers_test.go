package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/workdeck-dev/workdeck/db"
	"github.com/workdeck-dev/workdeck/internal/auth"
	"github.com/workdeck-dev/workdeck/internal/models"
	"github.com/workdeck-dev/workdeck/internal/router"
	"github.com/workdeck-dev/workdeck/internal/store"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)

	t.Setenv("JWT_SECRET", "test-secret")
	require.NoError(t, auth.InitJWTSecret())

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, gdb.AutoMigrate(&models.User{}, &models.Workspace{}, &models.Todo{}))

	db.DB = gdb

	return router.NewRouter()
}

func performRequest(r http.Handler, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer

	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			panic(err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()

	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

// createTestUser writes a user straight to the database, skipping the
// register endpoint, and returns it with a valid bearer token.
func createTestUser(t *testing.T, email, password string) (models.User, string) {
	t.Helper()

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	require.NoError(t, err)

	user := models.User{
		Name:         "test",
		Email:        email,
		PasswordHash: string(passwordHash),
		IsActive:     true,
	}
	require.NoError(t, db.DB.Create(&user).Error)

	token, err := auth.GenerateJWT(user.ID, user.Email)
	require.NoError(t, err)

	return user, token
}

func createTestWorkspace(t *testing.T, ownerID uint, title string) models.Workspace {
	t.Helper()

	workspace := models.Workspace{Title: title, OwnerID: ownerID}
	require.NoError(t, store.CreateWorkspace(db.DB, &workspace))

	return workspace
}

func createTestTodo(t *testing.T, ownerID uint, workspaceID uuid.UUID, title string) models.Todo {
	t.Helper()

	todo := models.Todo{
		Title:       title,
		Description: "Test todo description",
		OwnerID:     ownerID,
		WorkspaceID: workspaceID,
	}
	require.NoError(t, store.CreateTodo(db.DB, &todo))

	return todo
}
