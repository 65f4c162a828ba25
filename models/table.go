package models

import "github.com/cockroachdb/errors"

type TableName string

const (
	TableUsers     TableName = "users"
	TableCompanies TableName = "companies"
	TableProducts  TableName = "products"
)

const DefaultTable = TableUsers

// Table is the variant describing one explorable table: its physical
// relation, the columns surfaced in the listing, the columns the free-text
// fallback searches, and a hook narrowing the generically resolved field set.
type Table struct {
	Name     TableName
	Relation string
	// Columns rendered by the listing, in display order.
	Columns []string
	// SearchableColumns receive the free-text ILIKE fallback.
	SearchableColumns []string
	// OverrideFields may narrow operator sets and attach validators. It must
	// not add fields or change a field's data type.
	OverrideFields func(FieldDescriptors) FieldDescriptors
}

// TableFromName maps a table name to its variant. Unknown names are a
// NotFoundError carrying the name, not a fault: an unknown table is a routine
// caller mistake.
func TableFromName(name string) (Table, error) {
	switch TableName(name) {
	case TableUsers:
		return Table{
			Name:              TableUsers,
			Relation:          "users",
			Columns:           []string{"name", "email", "age", "gender", "is_admin", "created_at", "updated_at"},
			SearchableColumns: []string{"name", "email"},
			OverrideFields:    overrideUserFields,
		}, nil
	case TableCompanies:
		return Table{
			Name:              TableCompanies,
			Relation:          "companies",
			Columns:           []string{"name", "industry", "country", "website", "employee_count", "is_active", "created_at", "updated_at"},
			SearchableColumns: []string{"name", "industry", "country"},
			OverrideFields:    requireValueOn("name"),
		}, nil
	case TableProducts:
		return Table{
			Name:              TableProducts,
			Relation:          "products",
			Columns:           []string{"name", "price", "description", "created_at", "updated_at"},
			SearchableColumns: []string{"name", "description"},
			OverrideFields:    requireValueOn("name"),
		}, nil
	}
	return Table{}, errors.Wrapf(NotFoundError, "table %q", name)
}

// RequiredValue rejects absent or blank values. Attached to fields that make
// no sense to filter on with an empty string.
func RequiredValue(value any) bool {
	if value == nil {
		return false
	}
	s, ok := value.(string)
	return !ok || s != ""
}

// overrideUserFields restricts email to value-carrying operators (the column
// is non-null and unique, so null tests would always be false) and requires
// values on the identifying text fields.
func overrideUserFields(fields FieldDescriptors) FieldDescriptors {
	out := make(FieldDescriptors, len(fields))
	for i, f := range fields {
		switch f.Name {
		case "email":
			ops := make([]Operator, 0, len(f.Operators))
			for _, op := range f.Operators {
				if !IsNullOperator(op.Name) {
					ops = append(ops, op)
				}
			}
			f.Operators = ops
			f.Validator = RequiredValue
			f.Placeholder = "user@example.com"
		case "name":
			f.Validator = RequiredValue
		}
		out[i] = f
	}
	return out
}

func requireValueOn(names ...string) func(FieldDescriptors) FieldDescriptors {
	required := make(map[string]struct{}, len(names))
	for _, n := range names {
		required[n] = struct{}{}
	}
	return func(fields FieldDescriptors) FieldDescriptors {
		out := make(FieldDescriptors, len(fields))
		for i, f := range fields {
			if _, ok := required[f.Name]; ok {
				f.Validator = RequiredValue
			}
			out[i] = f
		}
		return out
	}
}
