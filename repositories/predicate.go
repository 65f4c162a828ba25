package repositories

import "github.com/Masterminds/squirrel"

// Predicate is the compiled filter consumed by the listing queries. Callers
// outside this package treat it as opaque.
type Predicate = squirrel.Sqlizer
