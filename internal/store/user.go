package store

import (
	"errors"
	"fmt"
	"strings"

	"github.com/workdeck-dev/workdeck/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// DefaultWorkspaceTitle is the workspace every new account starts with.
const DefaultWorkspaceTitle = "Personal"

func FindUserByEmail(db *gorm.DB, email string) (models.User, error) {
	var user models.User

	err := db.Where("email = ?", email).First(&user).Error

	return user, err
}

// CreateUser persists a new user together with their default workspace
// in one transaction. The caller is responsible for email normalization
// and password hashing.
func CreateUser(db *gorm.DB, user *models.User) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}

		workspace := models.Workspace{
			Title:   DefaultWorkspaceTitle,
			OwnerID: user.ID,
		}

		return tx.Create(&workspace).Error
	})
}

// DeleteUser removes the user's todos, then workspaces, then the user
// row itself in one transaction. The user row is deleted unscoped so
// the email becomes available again.
func DeleteUser(db *gorm.DB, callerID uint) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("owner_id = ?", callerID).Delete(&models.Todo{}).Error; err != nil {
			return err
		}

		if err := tx.Where("owner_id = ?", callerID).Delete(&models.Workspace{}).Error; err != nil {
			return err
		}

		return tx.Unscoped().Delete(&models.User{}, callerID).Error
	})
}

// PromoteSuperuser creates or upgrades an account so it carries both
// staff and superuser privileges.
func PromoteSuperuser(db *gorm.DB, email, password, name string) (models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	if email == "" {
		return models.User{}, fmt.Errorf("email must not be empty")
	}

	user, err := FindUserByEmail(db, email)

	if err == nil {
		user.IsStaff = true
		user.IsSuperuser = true

		if err := db.Save(&user).Error; err != nil {
			return models.User{}, err
		}

		return user, nil
	}

	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.User{}, err
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)

	if err != nil {
		return models.User{}, err
	}

	user = models.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(passwordHash),
		IsStaff:      true,
		IsSuperuser:  true,
	}

	if err := CreateUser(db, &user); err != nil {
		return models.User{}, err
	}

	return user, nil
}
