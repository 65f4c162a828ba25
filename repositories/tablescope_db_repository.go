package repositories

// TablescopeDbRepository groups every query against the application database.
type TablescopeDbRepository struct{}

func NewTablescopeDbRepository() *TablescopeDbRepository {
	return &TablescopeDbRepository{}
}
