package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	UserKeyPrefix            = "user:%d"
	CatalogKeyName           = "skills:catalog"
	RecommendationsKeyPrefix = "recommendations:%d"
)

const (
	UserTTL            = 5 * time.Minute
	CatalogTTL         = 30 * time.Minute
	RecommendationsTTL = time.Minute
)

func UserKey(userID uint) string {
	return fmt.Sprintf(UserKeyPrefix, userID)
}

func CatalogKey() string {
	return CatalogKeyName
}

func RecommendationsKey(userID uint) string {
	return fmt.Sprintf(RecommendationsKeyPrefix, userID)
}

func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

func InvalidateUser(ctx context.Context, userID uint) {
	Invalidate(ctx, UserKey(userID))
	Invalidate(ctx, RecommendationsKey(userID))
}

func InvalidateCatalog(ctx context.Context) {
	Invalidate(ctx, CatalogKey())
}

// InvalidateRecommendations drops cached recommendations for a user. Called
// whenever the user's declared skills or connections change, since both feed
// the candidate pool.
func InvalidateRecommendations(ctx context.Context, userID uint) {
	Invalidate(ctx, RecommendationsKey(userID))
}
