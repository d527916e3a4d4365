package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/workdeck-dev/workdeck/db"
	"github.com/workdeck-dev/workdeck/internal/models"
	"github.com/workdeck-dev/workdeck/internal/store"
	"github.com/workdeck-dev/workdeck/internal/types"
	"github.com/workdeck-dev/workdeck/internal/utils"
	"gorm.io/gorm"
)

type CreateTodoRequest struct {
	Title       string `json:"title" binding:"required"`
	Workspace   string `json:"workspace" binding:"required,uuid"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
}

// UpdateTodoRequest uses pointers so an omitted field and an explicit
// empty value can be told apart: description may be cleared, title and
// workspace may not.
type UpdateTodoRequest struct {
	Title       *string `json:"title" binding:"omitempty,min=1"`
	Workspace   *string `json:"workspace" binding:"omitempty,uuid"`
	Description *string `json:"description"`
	Priority    *string `json:"priority"`
}

func newTodoResponse(todo models.Todo) types.TodoResponse {
	return types.TodoResponse{
		ID:          todo.ID,
		Title:       todo.Title,
		Description: todo.Description,
		Priority:    todo.Priority,
		WorkspaceID: todo.WorkspaceID,
		OwnerID:     todo.OwnerID,
		CreatedAt:   todo.CreatedAt,
		UpdatedAt:   todo.UpdatedAt,
	}
}

func CreateTodo(ctx *gin.Context) {
	var body CreateTodoRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	workspaceID, err := uuid.Parse(body.Workspace)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid workspace id"})
		return
	}

	todo := models.Todo{
		Title:       body.Title,
		Description: body.Description,
		Priority:    body.Priority,
		OwnerID:     userID,
		WorkspaceID: workspaceID,
	}

	if err := store.CreateTodo(db.DB, &todo); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Workspace not found"})
		} else {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create todo"})
		}
		return
	}

	ctx.JSON(http.StatusCreated, newTodoResponse(todo))
}

func ListTodos(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var workspaceID *uuid.UUID

	if workspaceParam := ctx.Query("workspace"); workspaceParam != "" {
		parsed, err := uuid.Parse(workspaceParam)

		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid workspace id"})
			return
		}

		workspaceID = &parsed
	}

	todos, err := store.ListTodos(db.DB, userID, workspaceID)

	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve todos"})
		return
	}

	response := make([]types.TodoResponse, 0, len(todos))

	for _, todo := range todos {
		response = append(response, newTodoResponse(todo))
	}

	ctx.JSON(http.StatusOK, response)
}

func UpdateTodo(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var body UpdateTodoRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	todoID, err := uuid.Parse(ctx.Param("id"))

	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Todo not found"})
		return
	}

	todo, err := store.FindTodo(db.DB, userID, todoID)

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Todo not found"})
		} else {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve todo"})
		}
		return
	}

	if body.Title != nil {
		todo.Title = *body.Title
	}

	if body.Description != nil {
		todo.Description = *body.Description
	}

	if body.Priority != nil {
		todo.Priority = *body.Priority
	}

	if body.Workspace != nil {
		workspaceID, err := uuid.Parse(*body.Workspace)

		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid workspace id"})
			return
		}

		todo.WorkspaceID = workspaceID
	}

	if err := store.SaveTodo(db.DB, &todo); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Workspace not found"})
		} else {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update todo"})
		}
		return
	}

	ctx.JSON(http.StatusOK, newTodoResponse(todo))
}

func DeleteTodo(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	todoID, err := uuid.Parse(ctx.Param("id"))

	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Todo not found"})
		return
	}

	if err := store.DeleteTodo(db.DB, userID, todoID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Todo not found"})
		} else {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete todo"})
		}
		return
	}

	ctx.Status(http.StatusNoContent)
}
