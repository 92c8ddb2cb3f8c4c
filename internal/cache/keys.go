package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	UserKeyPrefix  = "user:%d"
	PostKeyPrefix  = "post:%d"
	ThemeKeyPrefix = "theme:%d"
)

const (
	UserTTL  = 5 * time.Minute
	PostTTL  = 10 * time.Minute
	ThemeTTL = 30 * time.Minute
)

func UserKey(userID uint) string {
	return fmt.Sprintf(UserKeyPrefix, userID)
}

func PostKey(postID uint) string {
	return fmt.Sprintf(PostKeyPrefix, postID)
}

func ThemeKey(themeID uint) string {
	return fmt.Sprintf(ThemeKeyPrefix, themeID)
}

func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

func InvalidateUser(ctx context.Context, userID uint) {
	Invalidate(ctx, UserKey(userID))
}

func InvalidatePost(ctx context.Context, postID uint) {
	Invalidate(ctx, PostKey(postID))
}

func InvalidateTheme(ctx context.Context, themeID uint) {
	Invalidate(ctx, ThemeKey(themeID))
}
