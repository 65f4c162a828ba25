package usecases

import (
	"context"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tablescope/tablescope-backend/models"
	"github.com/tablescope/tablescope-backend/repositories"
)

type stubListingRepository struct {
	fields models.FieldDescriptors
	users  []models.User
	total  int

	lastPredicate repositories.Predicate
	lastParams    models.ListingParams
}

func (s *stubListingRepository) ResolveTableFields(ctx context.Context,
	exec repositories.Executor, table models.Table,
) (models.FieldDescriptors, error) {
	return s.fields, nil
}

func (s *stubListingRepository) FetchUsers(ctx context.Context, exec repositories.Executor,
	predicate repositories.Predicate, params models.ListingParams,
) ([]models.User, error) {
	s.lastPredicate = predicate
	s.lastParams = params
	return s.users, nil
}

func (s *stubListingRepository) CountUsers(ctx context.Context, exec repositories.Executor,
	predicate repositories.Predicate,
) (int, error) {
	return s.total, nil
}

func (s *stubListingRepository) FetchCompanies(ctx context.Context, exec repositories.Executor,
	predicate repositories.Predicate, params models.ListingParams,
) ([]models.Company, error) {
	return nil, nil
}

func (s *stubListingRepository) CountCompanies(ctx context.Context, exec repositories.Executor,
	predicate repositories.Predicate,
) (int, error) {
	return 0, nil
}

func (s *stubListingRepository) FetchProducts(ctx context.Context, exec repositories.Executor,
	predicate repositories.Predicate, params models.ListingParams,
) ([]models.Product, error) {
	return nil, nil
}

func (s *stubListingRepository) CountProducts(ctx context.Context, exec repositories.Executor,
	predicate repositories.Predicate,
) (int, error) {
	return 0, nil
}

type stubQueryStore struct {
	tree models.RuleGroup
	err  error
}

func (s stubQueryStore) SaveRuleTree(ctx context.Context, group models.RuleGroup) (string, error) {
	return "", nil
}

func (s stubQueryStore) GetRuleTree(ctx context.Context, digest string) (models.RuleGroup, error) {
	return s.tree, s.err
}

func userFields() models.FieldDescriptors {
	return models.FieldDescriptors{
		{Name: "name", DataType: models.FieldTypeText, Operators: models.OperatorsForDataType(models.FieldTypeText)},
		{Name: "age", DataType: models.FieldTypeNumber, Operators: models.OperatorsForDataType(models.FieldTypeNumber)},
	}
}

func TestListUsersWithoutFilter(t *testing.T) {
	repo := &stubListingRepository{
		users: []models.User{{Name: "Alice"}, {Name: "Bob"}},
		total: 5,
	}
	usecase := ListingUseCase{repository: repo, queryStore: stubQueryStore{}}

	page, err := usecase.ListUsers(context.Background(), "",
		models.ListingParams{Page: 1, PageSize: 2})
	require.NoError(t, err)

	assert.Nil(t, repo.lastPredicate)
	assert.Len(t, page.Items, 2)
	assert.True(t, page.IsNext)
	assert.Equal(t, 5, page.Total)
}

func TestListUsersAppliesDefaults(t *testing.T) {
	repo := &stubListingRepository{}
	usecase := ListingUseCase{repository: repo, queryStore: stubQueryStore{}}

	_, err := usecase.ListUsers(context.Background(), "", models.ListingParams{})
	require.NoError(t, err)

	assert.Equal(t, models.DefaultPage, repo.lastParams.Page)
	assert.Equal(t, models.DefaultPageSize, repo.lastParams.PageSize)
}

func TestListUsersLastPageHasNoNext(t *testing.T) {
	repo := &stubListingRepository{
		users: []models.User{{Name: "Eve"}},
		total: 5,
	}
	usecase := ListingUseCase{repository: repo, queryStore: stubQueryStore{}}

	page, err := usecase.ListUsers(context.Background(), "",
		models.ListingParams{Page: 3, PageSize: 2})
	require.NoError(t, err)
	assert.False(t, page.IsNext)
}

func TestListUsersWithFreeTextQuery(t *testing.T) {
	repo := &stubListingRepository{}
	usecase := ListingUseCase{repository: repo, queryStore: stubQueryStore{}}

	_, err := usecase.ListUsers(context.Background(), "",
		models.ListingParams{Query: "alice"})
	require.NoError(t, err)

	require.NotNil(t, repo.lastPredicate)
	sql, args, err := repo.lastPredicate.ToSql()
	require.NoError(t, err)
	assert.Equal(t, "(name ILIKE ? OR email ILIKE ?)", sql)
	assert.Equal(t, []any{"%alice%", "%alice%"}, args)
}

func TestListUsersWithStoredRuleTree(t *testing.T) {
	repo := &stubListingRepository{fields: userFields()}
	store := stubQueryStore{tree: models.RuleGroup{
		Combinator: models.CombinatorAnd,
		Rules: []models.RuleNode{
			models.NewRuleNode(models.Rule{Field: "age", Operator: models.OperatorGreater, Value: float64(18)}),
		},
	}}
	usecase := ListingUseCase{repository: repo, queryStore: store}

	_, err := usecase.ListUsers(context.Background(), "abcdef012345",
		models.ListingParams{Query: "ignored when a digest is present"})
	require.NoError(t, err)

	require.NotNil(t, repo.lastPredicate)
	sql, args, err := repo.lastPredicate.ToSql()
	require.NoError(t, err)
	assert.Equal(t, "(age > ?)", sql)
	assert.Equal(t, []any{float64(18)}, args)
}

func TestListUsersStaleDigestResetsFilter(t *testing.T) {
	repo := &stubListingRepository{fields: userFields()}
	store := stubQueryStore{err: errors.Wrap(models.NotFoundError, "stored query")}
	usecase := ListingUseCase{repository: repo, queryStore: store}

	_, err := usecase.ListUsers(context.Background(), "abcdef012345", models.ListingParams{})
	require.NoError(t, err)
	assert.Nil(t, repo.lastPredicate)
}

func TestListUsersStoreOutageSurfaces(t *testing.T) {
	repo := &stubListingRepository{fields: userFields()}
	store := stubQueryStore{err: errors.Wrap(models.StoreError, "connection refused")}
	usecase := ListingUseCase{repository: repo, queryStore: store}

	_, err := usecase.ListUsers(context.Background(), "abcdef012345", models.ListingParams{})
	require.Error(t, err)
	assert.ErrorIs(t, err, models.StoreError)
}

func TestListUsersInvalidStoredTree(t *testing.T) {
	repo := &stubListingRepository{fields: userFields()}
	store := stubQueryStore{tree: models.RuleGroup{
		Combinator: models.CombinatorAnd,
		Rules: []models.RuleNode{
			models.NewRuleNode(models.Rule{Field: "salary", Operator: models.OperatorEqual, Value: 1}),
		},
	}}
	usecase := ListingUseCase{repository: repo, queryStore: store}

	_, err := usecase.ListUsers(context.Background(), "abcdef012345", models.ListingParams{})
	require.Error(t, err)
	assert.ErrorIs(t, err, models.BadParameterError)
}
