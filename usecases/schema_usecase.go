package usecases

import (
	"context"

	"github.com/tablescope/tablescope-backend/models"
	"github.com/tablescope/tablescope-backend/repositories"
)

type schemaRepository interface {
	ResolveTableFields(ctx context.Context, exec repositories.Executor,
		table models.Table) (models.FieldDescriptors, error)
}

// SchemaUseCase resolves the filterable field set of a table: generic
// mapping from the live column catalog, then the table's own override.
type SchemaUseCase struct {
	executorGetter repositories.ExecutorGetter
	repository     schemaRepository
}

func (usecase SchemaUseCase) ResolveFields(ctx context.Context, tableName string) (models.FieldDescriptors, error) {
	table, err := models.TableFromName(tableName)
	if err != nil {
		return nil, err
	}
	return resolveTableFields(ctx, usecase.repository, usecase.executorGetter.NewExecutor(), table)
}

func resolveTableFields(ctx context.Context, repository schemaRepository,
	exec repositories.Executor, table models.Table,
) (models.FieldDescriptors, error) {
	fields, err := repository.ResolveTableFields(ctx, exec, table)
	if err != nil {
		return nil, err
	}
	if table.OverrideFields != nil {
		fields = table.OverrideFields(fields)
	}
	return fields, nil
}
