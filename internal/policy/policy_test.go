package policy

import (
	"testing"

	"inkwell/internal/models"

	"github.com/stretchr/testify/assert"
)

var (
	owner = &models.UserIdentity{UserID: 1, Username: "owner", Role: models.RoleUser}
	other = &models.UserIdentity{UserID: 2, Username: "other", Role: models.RoleUser}
	admin = &models.UserIdentity{UserID: 3, Username: "admin", Role: models.RoleAdmin}
)

func TestCanMutateComment(t *testing.T) {
	t.Parallel()
	comment := &models.Comment{ID: 10, UserID: 1}

	assert.True(t, CanMutateComment(owner, comment))
	assert.False(t, CanMutateComment(other, comment))
	// No admin bypass on comments.
	assert.False(t, CanMutateComment(admin, comment))
	assert.False(t, CanMutateComment(nil, comment))
	assert.False(t, CanMutateComment(owner, nil))
}

func TestCanMutatePost(t *testing.T) {
	t.Parallel()
	post := &models.Post{ID: 10, UserID: 1}

	assert.True(t, CanMutatePost(owner, post))
	assert.False(t, CanMutatePost(other, post))
	assert.True(t, CanMutatePost(admin, post))
	assert.False(t, CanMutatePost(nil, post))
}

func TestCanManageThemes(t *testing.T) {
	t.Parallel()

	assert.False(t, CanManageThemes(owner))
	assert.True(t, CanManageThemes(admin))
	assert.False(t, CanManageThemes(nil))
}

func TestCanMutateProfile(t *testing.T) {
	t.Parallel()
	profile := &models.Profile{ID: 10, UserID: 1}

	assert.True(t, CanMutateProfile(owner, profile))
	assert.False(t, CanMutateProfile(other, profile))
	assert.True(t, CanMutateProfile(admin, profile))
}
