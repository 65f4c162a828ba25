package usecases

import (
	"github.com/tablescope/tablescope-backend/repositories"
)

// Usecases is the dependency container handed to the API layer. Connection
// handles are created once at startup and shared across requests.
type Usecases struct {
	ExecutorGetter repositories.ExecutorGetter
	Repository     *repositories.TablescopeDbRepository
	QueryStore     *repositories.QueryStoreRepository
}

func (usecases Usecases) NewQueryUseCase() QueryUseCase {
	return QueryUseCase{
		queryStore: usecases.QueryStore,
	}
}

func (usecases Usecases) NewSchemaUseCase() SchemaUseCase {
	return SchemaUseCase{
		executorGetter: usecases.ExecutorGetter,
		repository:     usecases.Repository,
	}
}

func (usecases Usecases) NewListingUseCase() ListingUseCase {
	return ListingUseCase{
		executorGetter: usecases.ExecutorGetter,
		repository:     usecases.Repository,
		queryStore:     usecases.QueryStore,
	}
}
