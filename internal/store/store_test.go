package store

import (
	"errors"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/workdeck-dev/workdeck/internal/models"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, gdb.AutoMigrate(&models.User{}, &models.Workspace{}, &models.Todo{}))

	return gdb
}

func createUser(t *testing.T, gdb *gorm.DB, email string) models.User {
	t.Helper()

	user := models.User{
		Name:         "test",
		Email:        email,
		PasswordHash: "irrelevant",
		IsActive:     true,
	}
	require.NoError(t, gdb.Create(&user).Error)

	return user
}

func createWorkspace(t *testing.T, gdb *gorm.DB, ownerID uint, title string) models.Workspace {
	t.Helper()

	workspace := models.Workspace{Title: title, OwnerID: ownerID}
	require.NoError(t, CreateWorkspace(gdb, &workspace))

	return workspace
}

func createTodo(t *testing.T, gdb *gorm.DB, ownerID uint, workspaceID uuid.UUID, title string) models.Todo {
	t.Helper()

	todo := models.Todo{Title: title, OwnerID: ownerID, WorkspaceID: workspaceID}
	require.NoError(t, CreateTodo(gdb, &todo))

	return todo
}

func TestWorkspaceDefaultsAndOrdering(t *testing.T) {
	gdb := newTestDB(t)
	user := createUser(t, gdb, "test@gmail.com")

	a := createWorkspace(t, gdb, user.ID, "alpha")
	b := createWorkspace(t, gdb, user.ID, "beta")

	assert.NotEqual(t, uuid.Nil, a.ID)
	assert.NotEqual(t, a.ID, b.ID)

	workspaces, err := ListWorkspaces(gdb, user.ID)
	require.NoError(t, err)
	require.Len(t, workspaces, 2)
	assert.Equal(t, "beta", workspaces[0].Title)
	assert.Equal(t, "alpha", workspaces[1].Title)
}

func TestWorkspaceIsolation(t *testing.T) {
	gdb := newTestDB(t)
	user1 := createUser(t, gdb, "test@gmail.com")
	user2 := createUser(t, gdb, "test2@gmail.com")

	workspace := createWorkspace(t, gdb, user1.ID, "workspace test 1")
	createWorkspace(t, gdb, user2.ID, "workspace test 2")

	workspaces, err := ListWorkspaces(gdb, user1.ID)
	require.NoError(t, err)
	require.Len(t, workspaces, 1)
	assert.Equal(t, workspace.ID, workspaces[0].ID)

	// Another user's workspace behaves as if it did not exist.
	_, err = FindWorkspace(gdb, user2.ID, workspace.ID)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestTodoDefaultPriority(t *testing.T) {
	gdb := newTestDB(t)
	user := createUser(t, gdb, "test@gmail.com")
	workspace := createWorkspace(t, gdb, user.ID, "workspace test 1")

	todo := createTodo(t, gdb, user.ID, workspace.ID, "Test todo 1")

	assert.Equal(t, models.DefaultPriority, todo.Priority)
	assert.NotEqual(t, uuid.Nil, todo.ID)
}

func TestCreateTodoRejectsForeignWorkspace(t *testing.T) {
	gdb := newTestDB(t)
	user1 := createUser(t, gdb, "test@gmail.com")
	user2 := createUser(t, gdb, "test2@gmail.com")
	workspace := createWorkspace(t, gdb, user1.ID, "workspace test 1")

	todo := models.Todo{Title: "sneaky", OwnerID: user2.ID, WorkspaceID: workspace.ID}
	err := CreateTodo(gdb, &todo)
	assert.True(t, errors.Is(err, ErrNotFound))

	todos, err := ListTodos(gdb, user1.ID, nil)
	require.NoError(t, err)
	assert.Empty(t, todos)
}

func TestListTodosWorkspaceFilter(t *testing.T) {
	gdb := newTestDB(t)
	user := createUser(t, gdb, "test@gmail.com")
	workspace1 := createWorkspace(t, gdb, user.ID, "workspace test 1")
	workspace2 := createWorkspace(t, gdb, user.ID, "workspace test 2")

	createTodo(t, gdb, user.ID, workspace1.ID, "Test todo 1")
	createTodo(t, gdb, user.ID, workspace1.ID, "Test todo 2")
	createTodo(t, gdb, user.ID, workspace2.ID, "Test todo 3")

	all, err := ListTodos(gdb, user.ID, nil)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	filtered, err := ListTodos(gdb, user.ID, &workspace1.ID)
	require.NoError(t, err)
	require.Len(t, filtered, 2)
	for _, todo := range filtered {
		assert.Equal(t, workspace1.ID, todo.WorkspaceID)
	}
}

func TestSaveTodoRejectsMoveToForeignWorkspace(t *testing.T) {
	gdb := newTestDB(t)
	user1 := createUser(t, gdb, "test@gmail.com")
	user2 := createUser(t, gdb, "test2@gmail.com")
	workspace1 := createWorkspace(t, gdb, user1.ID, "workspace test 1")
	workspace2 := createWorkspace(t, gdb, user2.ID, "workspace test 2")

	todo := createTodo(t, gdb, user1.ID, workspace1.ID, "Test todo 1")

	todo.WorkspaceID = workspace2.ID
	err := SaveTodo(gdb, &todo)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestDeleteWorkspaceCascades(t *testing.T) {
	gdb := newTestDB(t)
	user := createUser(t, gdb, "test@gmail.com")
	workspace := createWorkspace(t, gdb, user.ID, "workspace test 1")
	keep := createWorkspace(t, gdb, user.ID, "workspace test 2")

	createTodo(t, gdb, user.ID, workspace.ID, "Test todo 1")
	survivor := createTodo(t, gdb, user.ID, keep.ID, "Test todo 2")

	require.NoError(t, DeleteWorkspace(gdb, user.ID, workspace.ID))

	_, err := FindWorkspace(gdb, user.ID, workspace.ID)
	assert.True(t, errors.Is(err, ErrNotFound))

	todos, err := ListTodos(gdb, user.ID, nil)
	require.NoError(t, err)
	require.Len(t, todos, 1)
	assert.Equal(t, survivor.ID, todos[0].ID)
}

func TestDeleteWorkspaceScoped(t *testing.T) {
	gdb := newTestDB(t)
	user1 := createUser(t, gdb, "test@gmail.com")
	user2 := createUser(t, gdb, "test2@gmail.com")
	workspace := createWorkspace(t, gdb, user1.ID, "workspace test 1")

	err := DeleteWorkspace(gdb, user2.ID, workspace.ID)
	assert.True(t, errors.Is(err, ErrNotFound))

	_, err = FindWorkspace(gdb, user1.ID, workspace.ID)
	assert.NoError(t, err)
}

func TestDeleteUserCascades(t *testing.T) {
	gdb := newTestDB(t)
	user := createUser(t, gdb, "test@gmail.com")
	other := createUser(t, gdb, "test2@gmail.com")

	workspace := createWorkspace(t, gdb, user.ID, "workspace test 1")
	createTodo(t, gdb, user.ID, workspace.ID, "Test todo 1")

	otherWorkspace := createWorkspace(t, gdb, other.ID, "workspace test 2")
	createTodo(t, gdb, other.ID, otherWorkspace.ID, "Test todo 2")

	require.NoError(t, DeleteUser(gdb, user.ID))

	var workspaceCount, todoCount int64
	require.NoError(t, gdb.Model(&models.Workspace{}).Where("owner_id = ?", user.ID).Count(&workspaceCount).Error)
	require.NoError(t, gdb.Model(&models.Todo{}).Where("owner_id = ?", user.ID).Count(&todoCount).Error)
	assert.Zero(t, workspaceCount)
	assert.Zero(t, todoCount)

	_, err := FindUserByEmail(gdb, "test@gmail.com")
	assert.True(t, errors.Is(err, ErrNotFound))

	// The other account is untouched.
	todos, err := ListTodos(gdb, other.ID, nil)
	require.NoError(t, err)
	assert.Len(t, todos, 1)
}

func TestCreateUserAddsDefaultWorkspace(t *testing.T) {
	gdb := newTestDB(t)

	user := models.User{Name: "test", Email: "test@gmail.com", PasswordHash: "irrelevant", IsActive: true}
	require.NoError(t, CreateUser(gdb, &user))

	workspaces, err := ListWorkspaces(gdb, user.ID)
	require.NoError(t, err)
	require.Len(t, workspaces, 1)
	assert.Equal(t, DefaultWorkspaceTitle, workspaces[0].Title)
}

func TestCreateUserDuplicateEmailError(t *testing.T) {
	gdb := newTestDB(t)

	first := models.User{Name: "test", Email: "test@gmail.com", PasswordHash: "irrelevant", IsActive: true}
	require.NoError(t, CreateUser(gdb, &first))

	// The unique index is the backstop when two registrations race past
	// the existence check; the driver error surfaces translated.
	second := models.User{Name: "test", Email: "test@gmail.com", PasswordHash: "irrelevant", IsActive: true}
	err := CreateUser(gdb, &second)
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func TestPromoteSuperuserCreates(t *testing.T) {
	gdb := newTestDB(t)

	user, err := PromoteSuperuser(gdb, "Admin@Gmail.com", "testpass123", "admin")
	require.NoError(t, err)

	assert.Equal(t, "admin@gmail.com", user.Email)
	assert.True(t, user.IsStaff)
	assert.True(t, user.IsSuperuser)
	assert.NotEqual(t, "testpass123", user.PasswordHash)
}

func TestPromoteSuperuserUpgradesExisting(t *testing.T) {
	gdb := newTestDB(t)
	existing := createUser(t, gdb, "test@gmail.com")
	require.False(t, existing.IsSuperuser)

	user, err := PromoteSuperuser(gdb, "test@gmail.com", "", "")
	require.NoError(t, err)

	assert.Equal(t, existing.ID, user.ID)
	assert.True(t, user.IsStaff)
	assert.True(t, user.IsSuperuser)
	// The existing credential is kept.
	assert.Equal(t, existing.PasswordHash, user.PasswordHash)
}

func TestPromoteSuperuserRequiresEmail(t *testing.T) {
	gdb := newTestDB(t)

	_, err := PromoteSuperuser(gdb, "   ", "testpass123", "admin")
	assert.Error(t, err)
}
