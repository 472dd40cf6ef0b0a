package database

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"

	"github.com/yourusername/shagird-api/internal/config"
)

// NewFirestoreClient создает клиент Firestore по учетным данным сервисного аккаунта.
// Если project_id не задан, он берется из учетных данных.
func NewFirestoreClient(ctx context.Context, cfg config.FirebaseConfig) (*firestore.Client, error) {
	credentials, err := cfg.Credentials()
	if err != nil {
		return nil, err
	}

	projectID := cfg.ProjectID
	if projectID == "" {
		projectID = firestore.DetectProjectID
	}

	client, err := firestore.NewClient(ctx, projectID, credentials)
	if err != nil {
		return nil, fmt.Errorf("failed to create firestore client: %w", err)
	}
	return client, nil
}
