package store

import (
	"github.com/google/uuid"
	"github.com/workdeck-dev/workdeck/internal/models"
	"gorm.io/gorm"
)

func ListWorkspaces(db *gorm.DB, callerID uint) ([]models.Workspace, error) {
	var workspaces []models.Workspace

	err := db.Where("owner_id = ?", callerID).Order("title DESC").Find(&workspaces).Error

	return workspaces, err
}

func FindWorkspace(db *gorm.DB, callerID uint, id uuid.UUID) (models.Workspace, error) {
	var workspace models.Workspace

	err := db.Where("id = ? AND owner_id = ?", id, callerID).First(&workspace).Error

	return workspace, err
}

func CreateWorkspace(db *gorm.DB, workspace *models.Workspace) error {
	return db.Create(workspace).Error
}

func SaveWorkspace(db *gorm.DB, workspace *models.Workspace) error {
	return db.Save(workspace).Error
}

// DeleteWorkspace removes a workspace and everything inside it in one
// transaction. The ownership check rides on FindWorkspace.
func DeleteWorkspace(db *gorm.DB, callerID uint, id uuid.UUID) error {
	return db.Transaction(func(tx *gorm.DB) error {
		workspace, err := FindWorkspace(tx, callerID, id)

		if err != nil {
			return err
		}

		if err := tx.Where("workspace_id = ?", workspace.ID).Delete(&models.Todo{}).Error; err != nil {
			return err
		}

		return tx.Delete(&workspace).Error
	})
}
