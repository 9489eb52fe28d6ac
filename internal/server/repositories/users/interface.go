package users

import (
	"context"

	"github.com/dmitrijs2005/shopkeeper/internal/server/models"
)

type Repository interface {
	// Create inserts a new directory user. Returns common.ErrorEmailInUse
	// when the email is already registered.
	Create(ctx context.Context, user *models.DirectoryUser) (*models.DirectoryUser, error)

	// GetByEmail returns the user for the normalized email, or
	// common.ErrorNotFound.
	GetByEmail(ctx context.Context, email string) (*models.DirectoryUser, error)
}
