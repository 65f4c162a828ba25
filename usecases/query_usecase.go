package usecases

import (
	"context"

	"github.com/tablescope/tablescope-backend/models"
)

type queryStoreRepository interface {
	SaveRuleTree(ctx context.Context, group models.RuleGroup) (string, error)
	GetRuleTree(ctx context.Context, digest string) (models.RuleGroup, error)
}

// QueryUseCase persists and recalls the rule trees referenced from listing
// URLs.
type QueryUseCase struct {
	queryStore queryStoreRepository
}

// SaveQuery stores the tree and returns its digest. Saving is idempotent:
// the digest is a content hash, so rapid repeated saves of the same tree are
// safe and cheap.
func (usecase QueryUseCase) SaveQuery(ctx context.Context, group models.RuleGroup) (string, error) {
	return usecase.queryStore.SaveRuleTree(ctx, group)
}

// GetQuery loads the tree stored under digest. Expired, unknown and corrupt
// entries are all NotFoundError.
func (usecase QueryUseCase) GetQuery(ctx context.Context, digest string) (models.RuleGroup, error) {
	return usecase.queryStore.GetRuleTree(ctx, digest)
}
