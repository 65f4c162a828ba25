package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tablescope/tablescope-backend/models"
)

// stubRedisClient replays canned command results and counts attempts, so the
// retry behavior of the store can be asserted without a live server.
type stubRedisClient struct {
	entries map[string]string

	getErr error
	setErr error

	getCalls int
	setCalls int

	lastSetKey string
	lastSetTTL time.Duration
}

func newStubRedisClient() *stubRedisClient {
	return &stubRedisClient{entries: map[string]string{}}
}

func (s *stubRedisClient) Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd {
	s.setCalls++
	if s.setErr != nil {
		return redis.NewStatusResult("", s.setErr)
	}
	s.entries[key] = string(value.([]byte))
	s.lastSetKey = key
	s.lastSetTTL = expiration
	return redis.NewStatusResult("OK", nil)
}

func (s *stubRedisClient) Get(ctx context.Context, key string) *redis.StringCmd {
	s.getCalls++
	if s.getErr != nil {
		return redis.NewStringResult("", s.getErr)
	}
	payload, ok := s.entries[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(payload, nil)
}

func TestRuleTreeDigest(t *testing.T) {
	group := models.RuleGroup{
		Combinator: models.CombinatorAnd,
		Rules: []models.RuleNode{
			models.NewRuleNode(models.Rule{Field: "age", Operator: models.OperatorGreater, Value: float64(18)}),
		},
	}

	digest, payload, err := RuleTreeDigest(group)
	require.NoError(t, err)
	assert.Len(t, digest, 12)
	assert.Regexp(t, "^[0-9a-f]{12}$", digest)
	assert.JSONEq(t, `{"combinator":"and","rules":[{"field":"age","operator":">","value":18}]}`, string(payload))
}

func TestRuleTreeDigestIsDeterministic(t *testing.T) {
	group := models.RuleGroup{
		Combinator: models.CombinatorOr,
		Rules: []models.RuleNode{
			models.NewRuleNode(models.Rule{Field: "name", Operator: models.OperatorContains, Value: "li"}),
			models.NewGroupNode(models.RuleGroup{
				Combinator: models.CombinatorAnd,
				Rules: []models.RuleNode{
					models.NewRuleNode(models.Rule{Field: "email", Operator: models.OperatorIsNotNull}),
				},
			}),
		},
	}

	first, _, err := RuleTreeDigest(group)
	require.NoError(t, err)
	second, _, err := RuleTreeDigest(group)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestRuleTreeDigestDiscriminates(t *testing.T) {
	base := models.RuleGroup{
		Combinator: models.CombinatorAnd,
		Rules: []models.RuleNode{
			models.NewRuleNode(models.Rule{Field: "age", Operator: models.OperatorGreater, Value: float64(18)}),
		},
	}
	variant := models.RuleGroup{
		Combinator: models.CombinatorAnd,
		Rules: []models.RuleNode{
			models.NewRuleNode(models.Rule{Field: "age", Operator: models.OperatorGreater, Value: float64(21)}),
		},
	}

	baseDigest, _, err := RuleTreeDigest(base)
	require.NoError(t, err)
	variantDigest, _, err := RuleTreeDigest(variant)
	require.NoError(t, err)
	assert.NotEqual(t, baseDigest, variantDigest)
}

func TestRuleTreeDigestNormalizesEmptyRules(t *testing.T) {
	withNil, _, err := RuleTreeDigest(models.RuleGroup{Combinator: models.CombinatorAnd})
	require.NoError(t, err)
	withEmpty, _, err := RuleTreeDigest(models.EmptyRuleGroup())
	require.NoError(t, err)
	assert.Equal(t, withEmpty, withNil)
}

func TestSaveAndGetRuleTreeRoundTrip(t *testing.T) {
	client := newStubRedisClient()
	repo := &QueryStoreRepository{client: client}
	group := models.RuleGroup{
		Combinator: models.CombinatorAnd,
		Rules: []models.RuleNode{
			models.NewRuleNode(models.Rule{Field: "name", Operator: models.OperatorContains, Value: "li"}),
		},
	}

	digest, err := repo.SaveRuleTree(context.Background(), group)
	require.NoError(t, err)
	assert.Equal(t, queryKeyPrefix+digest, client.lastSetKey)
	assert.Equal(t, 3*24*time.Hour, client.lastSetTTL)

	loaded, err := repo.GetRuleTree(context.Background(), digest)
	require.NoError(t, err)
	assert.Equal(t, group, loaded)
}

func TestGetRuleTreeUnknownDigest(t *testing.T) {
	client := newStubRedisClient()
	repo := &QueryStoreRepository{client: client}

	_, err := repo.GetRuleTree(context.Background(), "abcdef012345")
	require.Error(t, err)
	assert.ErrorIs(t, err, models.NotFoundError)
	// a missing key is definitive, not worth retrying
	assert.Equal(t, 1, client.getCalls)
}

func TestGetRuleTreeCorruptPayload(t *testing.T) {
	client := newStubRedisClient()
	client.entries[queryKeyPrefix+"abcdef012345"] = `{"combinator":`
	repo := &QueryStoreRepository{client: client}

	_, err := repo.GetRuleTree(context.Background(), "abcdef012345")
	require.Error(t, err)
	assert.ErrorIs(t, err, models.NotFoundError)
	assert.NotErrorIs(t, err, models.StoreError)
}

func TestGetRuleTreeStoreOutage(t *testing.T) {
	client := newStubRedisClient()
	client.getErr = errors.New("connection refused")
	repo := &QueryStoreRepository{client: client}

	_, err := repo.GetRuleTree(context.Background(), "abcdef012345")
	require.Error(t, err)
	assert.ErrorIs(t, err, models.StoreError)
	assert.Equal(t, 3, client.getCalls)
}

func TestSaveRuleTreeStoreOutage(t *testing.T) {
	client := newStubRedisClient()
	client.setErr = errors.New("connection refused")
	repo := &QueryStoreRepository{client: client}

	_, err := repo.SaveRuleTree(context.Background(), models.EmptyRuleGroup())
	require.Error(t, err)
	assert.ErrorIs(t, err, models.StoreError)
	assert.Equal(t, 3, client.setCalls)
}
