package types

import (
	"time"

	"github.com/google/uuid"
)

// Wire projections. Write-side request structs live next to their handlers;
// these are the read-side shapes shared across endpoints.

type UserResponse struct {
	ID          uint   `json:"id"`
	Email       string `json:"email"`
	Name        string `json:"name"`
	IsSuperuser bool   `json:"is_superuser"`
}

type WorkspaceResponse struct {
	ID      uuid.UUID `json:"id"`
	Title   string    `json:"title"`
	OwnerID uint      `json:"owner_id"`
}

type TodoResponse struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Priority    string    `json:"priority"`
	WorkspaceID uuid.UUID `json:"workspace_id"`
	OwnerID     uint      `json:"owner_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
