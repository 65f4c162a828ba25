package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/cockroachdb/errors"

	"github.com/tablescope/tablescope-backend/models"
	"github.com/tablescope/tablescope-backend/repositories/dbmodels"
)

// FreeTextPredicate is the fallback filter applied when no rule tree is
// supplied: an OR of case-insensitive substring matches over the table's
// searchable columns.
func FreeTextPredicate(table models.Table, query string) squirrel.Sqlizer {
	pattern := "%" + escapeLikePattern(query) + "%"
	matches := make(squirrel.Or, len(table.SearchableColumns))
	for i, column := range table.SearchableColumns {
		matches[i] = squirrel.ILike{column: pattern}
	}
	return matches
}

func (repo *TablescopeDbRepository) FetchUsers(ctx context.Context, exec Executor,
	predicate squirrel.Sqlizer, params models.ListingParams,
) ([]models.User, error) {
	return fetchListing(ctx, exec, dbmodels.TABLE_USERS, dbmodels.SelectUserColumn,
		predicate, params, dbmodels.AdaptUser)
}

func (repo *TablescopeDbRepository) CountUsers(ctx context.Context, exec Executor,
	predicate squirrel.Sqlizer,
) (int, error) {
	return countListing(ctx, exec, dbmodels.TABLE_USERS, predicate)
}

func (repo *TablescopeDbRepository) FetchCompanies(ctx context.Context, exec Executor,
	predicate squirrel.Sqlizer, params models.ListingParams,
) ([]models.Company, error) {
	return fetchListing(ctx, exec, dbmodels.TABLE_COMPANIES, dbmodels.SelectCompanyColumn,
		predicate, params, dbmodels.AdaptCompany)
}

func (repo *TablescopeDbRepository) CountCompanies(ctx context.Context, exec Executor,
	predicate squirrel.Sqlizer,
) (int, error) {
	return countListing(ctx, exec, dbmodels.TABLE_COMPANIES, predicate)
}

func (repo *TablescopeDbRepository) FetchProducts(ctx context.Context, exec Executor,
	predicate squirrel.Sqlizer, params models.ListingParams,
) ([]models.Product, error) {
	return fetchListing(ctx, exec, dbmodels.TABLE_PRODUCTS, dbmodels.SelectProductColumn,
		predicate, params, dbmodels.AdaptProduct)
}

func (repo *TablescopeDbRepository) CountProducts(ctx context.Context, exec Executor,
	predicate squirrel.Sqlizer,
) (int, error) {
	return countListing(ctx, exec, dbmodels.TABLE_PRODUCTS, predicate)
}

func fetchListing[DBModel, Model any](
	ctx context.Context,
	exec Executor,
	relation string,
	columns []string,
	predicate squirrel.Sqlizer,
	params models.ListingParams,
	adapter func(DBModel) (Model, error),
) ([]Model, error) {
	order := string(params.Order())
	query := NewQueryBuilder().
		Select(columns...).
		From(relation).
		OrderBy(
			fmt.Sprintf("created_at %s", order),
			fmt.Sprintf("id %s", order),
		).
		Offset(uint64(params.Offset())).
		Limit(uint64(params.PageSize))

	if predicate != nil {
		query = query.Where(predicate)
	}
	rows, err := SqlToListOfModels(ctx, exec, query, adapter)
	if err != nil {
		return nil, adaptListingError(err)
	}
	return rows, nil
}

// adaptListingError turns errors caused by a schema drift under a stored
// filter into client errors. A rule tree can outlive the column it
// references.
func adaptListingError(err error) error {
	if IsUndefinedColumnError(err) {
		return errors.Wrap(models.BadParameterError,
			"filter references a column that no longer exists")
	}
	if IsUndefinedTableError(err) {
		return errors.Wrap(models.NotFoundError, "table no longer exists")
	}
	return err
}

func countListing(ctx context.Context, exec Executor, relation string, predicate squirrel.Sqlizer) (int, error) {
	query := NewQueryBuilder().
		Select("COUNT(*)").
		From(relation)

	if predicate != nil {
		query = query.Where(predicate)
	}
	count, err := SqlToCountResult(ctx, exec, query)
	if err != nil {
		return 0, adaptListingError(err)
	}
	return count, nil
}
