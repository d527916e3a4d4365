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

type CreateWorkspaceRequest struct {
	Title string `json:"title" binding:"required"`
}

type UpdateWorkspaceRequest struct {
	Title string `json:"title" binding:"required"`
}

func CreateWorkspace(ctx *gin.Context) {
	var body CreateWorkspaceRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	workspace := models.Workspace{
		Title:   body.Title,
		OwnerID: userID,
	}

	if err := store.CreateWorkspace(db.DB, &workspace); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create workspace"})
		return
	}

	ctx.JSON(http.StatusCreated, types.WorkspaceResponse{
		ID:      workspace.ID,
		Title:   workspace.Title,
		OwnerID: workspace.OwnerID,
	})
}

func ListWorkspaces(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	workspaces, err := store.ListWorkspaces(db.DB, userID)

	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve workspaces"})
		return
	}

	response := make([]types.WorkspaceResponse, 0, len(workspaces))

	for _, workspace := range workspaces {
		response = append(response, types.WorkspaceResponse{
			ID:      workspace.ID,
			Title:   workspace.Title,
			OwnerID: workspace.OwnerID,
		})
	}

	ctx.JSON(http.StatusOK, response)
}

// GetWorkspace returns the workspace together with the todos it
// contains, mirroring the list shape of GET /todo.
func GetWorkspace(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	workspaceID, err := uuid.Parse(ctx.Param("id"))

	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Workspace not found"})
		return
	}

	workspace, err := store.FindWorkspace(db.DB, userID, workspaceID)

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Workspace not found"})
		} else {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve workspace"})
		}
		return
	}

	todos, err := store.ListTodos(db.DB, userID, &workspace.ID)

	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve todos"})
		return
	}

	todoResponses := make([]types.TodoResponse, 0, len(todos))

	for _, todo := range todos {
		todoResponses = append(todoResponses, newTodoResponse(todo))
	}

	ctx.JSON(http.StatusOK, gin.H{
		"workspace": types.WorkspaceResponse{
			ID:      workspace.ID,
			Title:   workspace.Title,
			OwnerID: workspace.OwnerID,
		},
		"todos": todoResponses,
	})
}

func UpdateWorkspace(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var body UpdateWorkspaceRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	workspaceID, err := uuid.Parse(ctx.Param("id"))

	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Workspace not found"})
		return
	}

	workspace, err := store.FindWorkspace(db.DB, userID, workspaceID)

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Workspace not found"})
		} else {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve workspace"})
		}
		return
	}

	workspace.Title = body.Title

	if err := store.SaveWorkspace(db.DB, &workspace); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update workspace"})
		return
	}

	ctx.JSON(http.StatusOK, types.WorkspaceResponse{
		ID:      workspace.ID,
		Title:   workspace.Title,
		OwnerID: workspace.OwnerID,
	})
}

func DeleteWorkspace(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	workspaceID, err := uuid.Parse(ctx.Param("id"))

	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Workspace not found"})
		return
	}

	if err := store.DeleteWorkspace(db.DB, userID, workspaceID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Workspace not found"})
		} else {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete workspace"})
		}
		return
	}

	ctx.Status(http.StatusNoContent)
}
