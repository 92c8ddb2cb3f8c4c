// Package policy holds the authorization rules as pure functions over an
// actor identity and a target. It never touches storage; callers resolve
// both sides first.
package policy

import "inkwell/internal/models"

// CanMutateComment reports whether actor may edit or delete the comment.
// Comments are personal speech: only the author may touch them, and admins
// get no bypass.
func CanMutateComment(actor *models.UserIdentity, comment *models.Comment) bool {
	if actor == nil || comment == nil {
		return false
	}
	return actor.UserID == comment.UserID
}

// CanMutatePost reports whether actor may edit or delete the post. The
// author always can; admins can moderate any post.
func CanMutatePost(actor *models.UserIdentity, post *models.Post) bool {
	if actor == nil || post == nil {
		return false
	}
	return actor.UserID == post.UserID || actor.IsAdmin()
}

// CanManageThemes reports whether actor may create, edit, or delete
// themes. Themes are site taxonomy, so this is admin-only.
func CanManageThemes(actor *models.UserIdentity) bool {
	return actor != nil && actor.IsAdmin()
}

// CanMutateProfile reports whether actor may edit the profile. Owners
// manage their own profile; admins can clean up any of them.
func CanMutateProfile(actor *models.UserIdentity, profile *models.Profile) bool {
	if actor == nil || profile == nil {
		return false
	}
	return actor.UserID == profile.UserID || actor.IsAdmin()
}
