package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"resumatch/resume-matcher/internal/models"
)

// MatchCache is a best-effort cache for match results keyed by the input
// pair. Cache failures are logged and ignored; they never fail a request.
type MatchCache interface {
	Get(ctx context.Context, resumeText, jobDescription string) (*models.MatchResult, bool)
	Set(ctx context.Context, resumeText, jobDescription string, result *models.MatchResult)
}

type redisMatchCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisMatchCache(url string, ttl time.Duration) (MatchCache, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}

	return &redisMatchCache{
		client: redis.NewClient(opts),
		ttl:    ttl,
	}, nil
}

// Get implements MatchCache.
func (c *redisMatchCache) Get(ctx context.Context, resumeText, jobDescription string) (*models.MatchResult, bool) {
	data, err := c.client.Get(ctx, matchCacheKey(resumeText, jobDescription)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.Printf("⚠️ Cache get failed: %v", err)
		}
		return nil, false
	}

	var result models.MatchResult
	if err := json.Unmarshal(data, &result); err != nil {
		log.Printf("⚠️ Cache entry corrupt, ignoring: %v", err)
		return nil, false
	}

	return &result, true
}

// Set implements MatchCache.
func (c *redisMatchCache) Set(ctx context.Context, resumeText, jobDescription string, result *models.MatchResult) {
	data, err := json.Marshal(result)
	if err != nil {
		log.Printf("⚠️ Cache marshal failed: %v", err)
		return
	}

	if err := c.client.Set(ctx, matchCacheKey(resumeText, jobDescription), data, c.ttl).Err(); err != nil {
		log.Printf("⚠️ Cache set failed: %v", err)
	}
}

func matchCacheKey(resumeText, jobDescription string) string {
	sum := sha256.Sum256([]byte(resumeText + "\x00" + jobDescription))
	return "match:" + hex.EncodeToString(sum[:])
}
