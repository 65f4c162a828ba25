package usecases

import (
	"context"

	"github.com/cockroachdb/errors"
	"golang.org/x/sync/errgroup"

	"github.com/tablescope/tablescope-backend/models"
	"github.com/tablescope/tablescope-backend/repositories"
)

type listingRepository interface {
	schemaRepository
	FetchUsers(ctx context.Context, exec repositories.Executor,
		predicate repositories.Predicate, params models.ListingParams) ([]models.User, error)
	CountUsers(ctx context.Context, exec repositories.Executor,
		predicate repositories.Predicate) (int, error)
	FetchCompanies(ctx context.Context, exec repositories.Executor,
		predicate repositories.Predicate, params models.ListingParams) ([]models.Company, error)
	CountCompanies(ctx context.Context, exec repositories.Executor,
		predicate repositories.Predicate) (int, error)
	FetchProducts(ctx context.Context, exec repositories.Executor,
		predicate repositories.Predicate, params models.ListingParams) ([]models.Product, error)
	CountProducts(ctx context.Context, exec repositories.Executor,
		predicate repositories.Predicate) (int, error)
}

// ListingUseCase produces one filtered, paginated page of a table. The rule
// tree referenced by the digest and the field schema are loaded
// concurrently, then compiled into a predicate; fetch and count also run
// concurrently since both are read-only.
type ListingUseCase struct {
	executorGetter repositories.ExecutorGetter
	repository     listingRepository
	queryStore     queryStoreRepository
}

func (usecase ListingUseCase) ListUsers(ctx context.Context, digest string,
	params models.ListingParams,
) (models.ListingPage[models.User], error) {
	return listTable(ctx, usecase, models.TableUsers, digest, params,
		usecase.repository.FetchUsers, usecase.repository.CountUsers)
}

func (usecase ListingUseCase) ListCompanies(ctx context.Context, digest string,
	params models.ListingParams,
) (models.ListingPage[models.Company], error) {
	return listTable(ctx, usecase, models.TableCompanies, digest, params,
		usecase.repository.FetchCompanies, usecase.repository.CountCompanies)
}

func (usecase ListingUseCase) ListProducts(ctx context.Context, digest string,
	params models.ListingParams,
) (models.ListingPage[models.Product], error) {
	return listTable(ctx, usecase, models.TableProducts, digest, params,
		usecase.repository.FetchProducts, usecase.repository.CountProducts)
}

func listTable[Row any](
	ctx context.Context,
	usecase ListingUseCase,
	tableName models.TableName,
	digest string,
	params models.ListingParams,
	fetch func(context.Context, repositories.Executor, repositories.Predicate, models.ListingParams) ([]Row, error),
	count func(context.Context, repositories.Executor, repositories.Predicate) (int, error),
) (models.ListingPage[Row], error) {
	var page models.ListingPage[Row]

	table, err := models.TableFromName(string(tableName))
	if err != nil {
		return page, err
	}
	params = params.WithDefaults()
	exec := usecase.executorGetter.NewExecutor()

	predicate, err := usecase.buildPredicate(ctx, exec, table, digest, params)
	if err != nil {
		return page, err
	}

	group, groupCtx := errgroup.WithContext(ctx)
	var items []Row
	var total int
	group.Go(func() error {
		var fetchErr error
		items, fetchErr = fetch(groupCtx, exec, predicate, params)
		return fetchErr
	})
	group.Go(func() error {
		var countErr error
		total, countErr = count(groupCtx, exec, predicate)
		return countErr
	})
	if err := group.Wait(); err != nil {
		return page, err
	}

	return models.ListingPage[Row]{
		Items:  items,
		IsNext: params.HasNext(total, len(items)),
		Total:  total,
	}, nil
}

// buildPredicate resolves the filter of a request. The rule tree and the
// free-text query are mutually exclusive: a digest wins, and the query
// string is only applied when no digest is present.
func (usecase ListingUseCase) buildPredicate(ctx context.Context, exec repositories.Executor,
	table models.Table, digest string, params models.ListingParams,
) (repositories.Predicate, error) {
	if digest == "" {
		if params.Query != "" {
			return repositories.FreeTextPredicate(table, params.Query), nil
		}
		return nil, nil
	}

	// No dependency between the schema lookup and the store read, so they
	// run concurrently.
	group, groupCtx := errgroup.WithContext(ctx)
	var fields models.FieldDescriptors
	var tree *models.RuleGroup
	group.Go(func() error {
		var resolveErr error
		fields, resolveErr = resolveTableFields(groupCtx, usecase.repository, exec, table)
		return resolveErr
	})
	group.Go(func() error {
		loaded, loadErr := usecase.queryStore.GetRuleTree(groupCtx, digest)
		if errors.Is(loadErr, models.NotFoundError) {
			// A stale or corrupt digest resets the filter instead of
			// failing the whole listing.
			return nil
		}
		if loadErr != nil {
			return loadErr
		}
		tree = &loaded
		return nil
	})
	if err := group.Wait(); err != nil {
		return nil, err
	}

	if tree == nil {
		return nil, nil
	}
	return repositories.CompileRuleTree(*tree, fields)
}
