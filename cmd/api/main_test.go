package main

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/yourusername/shagird-api/internal/config"
	"github.com/yourusername/shagird-api/internal/domain/repository"
	apperrors "github.com/yourusername/shagird-api/internal/pkg/errors"
)

func TestOpenStore_MissingSettingsGiveUnavailable(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.Config
	}{
		{
			name: "postgres without database settings",
			cfg:  config.Config{Store: config.StoreConfig{Backend: config.BackendPostgres}},
		},
		{
			name: "firestore without credentials file",
			cfg: config.Config{
				Store:    config.StoreConfig{Backend: config.BackendFirestore},
				Firebase: config.FirebaseConfig{CredentialsFile: filepath.Join(t.TempDir(), "absent.json")},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := openStore(context.Background(), &tt.cfg, zap.NewNop())

			unavailable, ok := store.(repository.Unavailable)
			require.True(t, ok, "expected repository.Unavailable, got %T", store)
			assert.Error(t, unavailable.Cause)

			_, err := store.ListBySubject(context.Background(), "maths")
			assert.True(t, errors.Is(err, apperrors.ErrStoreUnavailable))
		})
	}
}
