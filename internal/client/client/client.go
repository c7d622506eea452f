package client

import (
	"context"

	"github.com/dmitrijs2005/llmpid-console/internal/client/models"
)

// Client is the console's contract with the LLMPID API.
//
// Implementations never inspect or modify session state; credential
// attachment and 401 handling belong to the transport they are built on.
type Client interface {
	// Login exchanges credentials for an access token. A successful answer
	// without a token yields "" and a nil error.
	Login(ctx context.Context, username, password string) (string, error)
	// ChangePassword rotates the password and returns the new access token.
	ChangePassword(ctx context.Context, username, oldPassword, newPassword string) (string, error)
	// Logout invalidates the current token server-side.
	Logout(ctx context.Context) error

	Classify(ctx context.Context, text string) (*models.ClassificationResult, error)
	ListClassifications(ctx context.Context, q models.ListQuery) ([]models.Classification, error)

	ListExternalSystems(ctx context.Context) ([]models.ExternalSystem, error)
	AddExternalSystem(ctx context.Context, name string) (*models.Registration, error)
	DeleteExternalSystem(ctx context.Context, name string) error
}
