package store

import (
	"github.com/google/uuid"
	"github.com/workdeck-dev/workdeck/internal/models"
	"gorm.io/gorm"
)

// ListTodos returns the caller's todos, optionally narrowed to a single
// workspace when workspaceID is non-nil.
func ListTodos(db *gorm.DB, callerID uint, workspaceID *uuid.UUID) ([]models.Todo, error) {
	query := db.Where("owner_id = ?", callerID)

	if workspaceID != nil {
		query = query.Where("workspace_id = ?", *workspaceID)
	}

	var todos []models.Todo

	err := query.Find(&todos).Error

	return todos, err
}

func FindTodo(db *gorm.DB, callerID uint, id uuid.UUID) (models.Todo, error) {
	var todo models.Todo

	err := db.Where("id = ? AND owner_id = ?", id, callerID).First(&todo).Error

	return todo, err
}

// CreateTodo inserts a todo after resolving its workspace through the
// caller's scope, so a todo can never land in a workspace the caller
// does not own.
func CreateTodo(db *gorm.DB, todo *models.Todo) error {
	if _, err := FindWorkspace(db, todo.OwnerID, todo.WorkspaceID); err != nil {
		return err
	}

	return db.Create(todo).Error
}

// SaveTodo persists an update, re-validating the workspace reference
// against the owner in case the todo was moved.
func SaveTodo(db *gorm.DB, todo *models.Todo) error {
	if _, err := FindWorkspace(db, todo.OwnerID, todo.WorkspaceID); err != nil {
		return err
	}

	return db.Save(todo).Error
}

func DeleteTodo(db *gorm.DB, callerID uint, id uuid.UUID) error {
	todo, err := FindTodo(db, callerID, id)

	if err != nil {
		return err
	}

	return db.Delete(&todo).Error
}
