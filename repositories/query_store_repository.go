package repositories

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/cockroachdb/errors"
	"github.com/redis/go-redis/v9"

	"github.com/tablescope/tablescope-backend/models"
)

const (
	queryKeyPrefix = "query:"
	queryTTL       = 3 * 24 * time.Hour
	digestLength   = 12
)

// redisCmdable is the subset of redis.Client the store uses.
type redisCmdable interface {
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
	Get(ctx context.Context, key string) *redis.StringCmd
}

// QueryStoreRepository persists rule trees content-addressed: the key is a
// short digest of the canonical serialization, so identical trees collapse
// to the same entry and writes are idempotent.
type QueryStoreRepository struct {
	client redisCmdable
}

func NewQueryStoreRepository(client *redis.Client) *QueryStoreRepository {
	return &QueryStoreRepository{client: client}
}

// RuleTreeDigest computes the digest a tree is stored under: SHA-256 of the
// canonical JSON serialization, hex-encoded, truncated to 12 characters.
// The truncation is an address-space tradeoff, not a security boundary.
func RuleTreeDigest(group models.RuleGroup) (digest string, payload []byte, err error) {
	payload, err = models.SerializeRuleGroup(group)
	if err != nil {
		return "", nil, err
	}
	sum := sha256.Sum256(payload)
	return hex.EncodeToString(sum[:])[:digestLength], payload, nil
}

// SaveRuleTree writes the tree under its digest and returns the digest.
// Re-saving an identical tree refreshes the TTL of the existing entry.
func (repo *QueryStoreRepository) SaveRuleTree(ctx context.Context, group models.RuleGroup) (string, error) {
	digest, payload, err := RuleTreeDigest(group)
	if err != nil {
		return "", err
	}

	err = retry.Do(
		func() error {
			return repo.client.Set(ctx, queryKeyPrefix+digest, payload, queryTTL).Err()
		},
		retry.Context(ctx),
		retry.Attempts(3),
		retry.Delay(100*time.Millisecond),
		retry.LastErrorOnly(true),
	)
	if err != nil {
		return "", errors.Wrap(errors.WithDetail(models.StoreError, err.Error()),
			"could not save rule tree")
	}
	return digest, nil
}

// GetRuleTree reads a tree back by digest. A missing key and a corrupt
// payload are both NotFound: a stale URL should reset the filter, not crash
// the page.
func (repo *QueryStoreRepository) GetRuleTree(ctx context.Context, digest string) (models.RuleGroup, error) {
	payload, err := retry.DoWithData(
		func() (string, error) {
			out, err := repo.client.Get(ctx, queryKeyPrefix+digest).Result()
			if errors.Is(err, redis.Nil) {
				return "", retry.Unrecoverable(err)
			}
			return out, err
		},
		retry.Context(ctx),
		retry.Attempts(3),
		retry.Delay(100*time.Millisecond),
		retry.LastErrorOnly(true),
	)
	switch {
	case errors.Is(err, redis.Nil):
		return models.RuleGroup{}, errors.Wrapf(models.NotFoundError, "stored query %q", digest)
	case err != nil:
		return models.RuleGroup{}, errors.Wrap(errors.WithDetail(models.StoreError, err.Error()),
			"could not load rule tree")
	}

	group, err := models.DeserializeRuleGroup([]byte(payload))
	if err != nil {
		return models.RuleGroup{}, errors.Wrapf(models.NotFoundError,
			"stored query %q has a corrupt payload", digest)
	}
	return group, nil
}
