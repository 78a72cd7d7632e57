package repository_test

import (
	"testing"

	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teleline/smsgate/internal/models"
	"github.com/teleline/smsgate/internal/repository"
)

func TestSettingsRepository_GetBeforeSave(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := repository.NewSettingsRepository(db)

	settings, err := repo.Get()
	require.NoError(t, err)
	require.NotNil(t, settings)
	assert.Equal(t, int64(1), settings.ID)
	assert.Empty(t, settings.DefaultProvider)
	assert.Empty(t, settings.DefaultSender)
}

func TestSettingsRepository_SaveAndOverwrite(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := repository.NewSettingsRepository(db)

	require.NoError(t, repo.Save(&models.StoreSettings{
		DefaultProvider: "mshastra_kw",
		DefaultSender:   "main",
	}))

	settings, err := repo.Get()
	require.NoError(t, err)
	assert.Equal(t, "mshastra_kw", settings.DefaultProvider)
	assert.Equal(t, "main", settings.DefaultSender)

	// Saving again replaces the singleton, never adds a second row.
	require.NoError(t, repo.Save(&models.StoreSettings{
		DefaultProvider: "mshastra_ae",
	}))

	settings, err = repo.Get()
	require.NoError(t, err)
	assert.Equal(t, "mshastra_ae", settings.DefaultProvider)
	assert.Empty(t, settings.DefaultSender)

	var count int64
	require.NoError(t, db.Get(&count, "SELECT COUNT(*) FROM sms_settings"))
	assert.Equal(t, int64(1), count)
}
