package intake

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/kurochkinivan/notice_pipeline/internal/domain"
)

const cacheKeyPrefix = "notice:extraction:"

// CachedExtractor remembers notices extracted from byte-identical input.
// Cache failures only cost a model call.
type CachedExtractor struct {
	log   *slog.Logger
	next  Extractor
	cache Cache
	ttl   time.Duration
}

func NewCachedExtractor(log *slog.Logger, next Extractor, cache Cache, ttl time.Duration) *CachedExtractor {
	return &CachedExtractor{
		log:   log,
		next:  next,
		cache: cache,
		ttl:   ttl,
	}
}

func (c *CachedExtractor) ExtractFromFile(ctx context.Context, file *domain.UploadedFile) (*domain.ExtractedNotice, error) {
	return c.cached(ctx, cacheKey("file", file.Data), func() (*domain.ExtractedNotice, error) {
		return c.next.ExtractFromFile(ctx, file)
	})
}

func (c *CachedExtractor) ExtractFromText(ctx context.Context, text string) (*domain.ExtractedNotice, error) {
	return c.cached(ctx, cacheKey("text", []byte(text)), func() (*domain.ExtractedNotice, error) {
		return c.next.ExtractFromText(ctx, text)
	})
}

func (c *CachedExtractor) cached(
	ctx context.Context,
	key string,
	extract func() (*domain.ExtractedNotice, error),
) (*domain.ExtractedNotice, error) {
	log := c.log.With(slog.String("key", key))

	data, found, err := c.cache.Get(ctx, key)
	switch {
	case err != nil:
		log.WarnContext(ctx, "failed to read extraction cache", slog.String("err", err.Error()))
	case found:
		var notice domain.ExtractedNotice
		if err := json.Unmarshal(data, &notice); err == nil {
			log.DebugContext(ctx, "extraction cache hit")
			return &notice, nil
		}
		log.WarnContext(ctx, "dropping corrupt extraction cache entry")
	}

	notice, err := extract()
	if err != nil {
		return nil, err
	}

	data, err = json.Marshal(notice)
	if err == nil {
		err = c.cache.Set(ctx, key, data, c.ttl)
	}
	if err != nil {
		log.WarnContext(ctx, "failed to write extraction cache", slog.String("err", err.Error()))
	}

	return notice, nil
}

func cacheKey(kind string, payload []byte) string {
	sum := sha256.Sum256(payload)
	return cacheKeyPrefix + kind + ":" + hex.EncodeToString(sum[:])
}
