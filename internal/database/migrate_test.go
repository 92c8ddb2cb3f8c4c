package database

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisteredMigrations(t *testing.T) {
	ms := GetMigrations()
	require.NotEmpty(t, ms, "embedded migrations should be registered at init")

	// Sorted ascending, every migration has both scripts.
	last := 0
	for _, m := range ms {
		assert.Greater(t, m.Version, last)
		assert.NotEmpty(t, m.UpScript)
		assert.NotEmpty(t, m.DownScript)
		last = m.Version
	}

	initial := GetMigrationByVersion(1)
	require.NotNil(t, initial)
	assert.Equal(t, "init_schema", initial.Name)
	assert.True(t, strings.Contains(initial.UpScript, "chk_images_single_owner"),
		"initial schema should enforce single image ownership")
	assert.Equal(t, "000001_init_schema", initial.String())
}

func TestGetMigrationByVersion_Unknown(t *testing.T) {
	assert.Nil(t, GetMigrationByVersion(999999))
}

func TestValidateAppliedVersions(t *testing.T) {
	registered := []Migration{{Version: 1, Name: "init_schema"}}

	assert.NoError(t, validateAppliedVersions(nil, registered))
	assert.NoError(t, validateAppliedVersions([]int{1}, registered))

	err := validateAppliedVersions([]int{1, 42}, registered)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "000042")
}
