package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	ProfileKeyPrefix  = "profile:%d"
	ProfilesListKey   = "profiles:all"
	PostKeyPrefix     = "post:%d"
	PostsListKey      = "posts:all"
	GithubReposPrefix = "github:%s"
)

const (
	ProfileTTL     = 5 * time.Minute
	ProfileListTTL = time.Minute
	PostTTL        = 5 * time.Minute
	PostsListTTL   = 30 * time.Second
	GithubReposTTL = 10 * time.Minute
)

func ProfileKey(userID uint) string {
	return fmt.Sprintf(ProfileKeyPrefix, userID)
}

func PostKey(postID uint) string {
	return fmt.Sprintf(PostKeyPrefix, postID)
}

func GithubReposKey(username string) string {
	return fmt.Sprintf(GithubReposPrefix, username)
}

func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

func InvalidateProfile(ctx context.Context, userID uint) {
	Invalidate(ctx, ProfileKey(userID))
	Invalidate(ctx, ProfilesListKey)
}

func InvalidatePost(ctx context.Context, postID uint) {
	Invalidate(ctx, PostKey(postID))
	Invalidate(ctx, PostsListKey)
}

func InvalidatePostsList(ctx context.Context) {
	Invalidate(ctx, PostsListKey)
}
