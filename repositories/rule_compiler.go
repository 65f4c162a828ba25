package repositories

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/tablescope/tablescope-backend/models"
)

// CompileRuleTree lowers a rule tree into a squirrel predicate over the
// table's columns. The lowering is pure: the same (tree, fields) pair always
// compiles to the same predicate. It aborts on the first invalid node, so a
// partial predicate is never produced.
func CompileRuleTree(group models.RuleGroup, fields models.FieldDescriptors) (squirrel.Sqlizer, error) {
	if err := group.Validate(fields); err != nil {
		return nil, err
	}
	return compileGroup(group, fields, "$")
}

// matchAll is the identity predicate an empty group compiles to.
var matchAll = squirrel.Expr("TRUE")

func compileGroup(group models.RuleGroup, fields models.FieldDescriptors, path string) (squirrel.Sqlizer, error) {
	if len(group.Rules) == 0 {
		return matchAll, nil
	}

	predicates := make([]squirrel.Sqlizer, len(group.Rules))
	for i, node := range group.Rules {
		nodePath := fmt.Sprintf("%s.rules[%d]", path, i)
		var err error
		if node.Group != nil {
			predicates[i], err = compileGroup(*node.Group, fields, nodePath)
		} else {
			predicates[i], err = compileRule(*node.Rule, fields, nodePath)
		}
		if err != nil {
			return nil, err
		}
	}

	if group.Combinator == models.CombinatorOr {
		return squirrel.Or(predicates), nil
	}
	return squirrel.And(predicates), nil
}

func compileRule(rule models.Rule, fields models.FieldDescriptors, path string) (squirrel.Sqlizer, error) {
	field, _ := fields.Get(rule.Field)

	// Null tests are legal on every data type and ignore the rule value.
	switch rule.Operator {
	case models.OperatorIsNull:
		return squirrel.Eq{field.Name: nil}, nil
	case models.OperatorIsNotNull:
		return squirrel.NotEq{field.Name: nil}, nil
	}

	switch field.DataType {
	case models.FieldTypeText:
		return compileTextRule(rule, field, path)
	case models.FieldTypeNumber:
		value, err := coerceNumber(rule.Value)
		if err != nil {
			return nil, models.NewRuleValidationError(path, field.Name, err.Error())
		}
		return compileComparison(field, rule.Operator, value, path)
	case models.FieldTypeBoolean:
		value, err := coerceBool(rule.Value)
		if err != nil {
			return nil, models.NewRuleValidationError(path, field.Name, err.Error())
		}
		if rule.Operator == models.OperatorNotEqual {
			return squirrel.NotEq{field.Name: value}, nil
		}
		return squirrel.Eq{field.Name: value}, nil
	case models.FieldTypeDate, models.FieldTypeDatetime, models.FieldTypeTime:
		value, err := coerceTemporal(rule.Value, field.DataType)
		if err != nil {
			return nil, models.NewRuleValidationError(path, field.Name, err.Error())
		}
		return compileComparison(field, rule.Operator, value, path)
	}
	return nil, models.NewRuleValidationError(path, field.Name,
		fmt.Sprintf("unsupported data type %q", field.DataType))
}

func compileTextRule(rule models.Rule, field models.FieldDescriptor, path string) (squirrel.Sqlizer, error) {
	switch rule.Operator {
	case models.OperatorIn, models.OperatorNotIn:
		values, err := coerceTextList(rule.Value)
		if err != nil {
			return nil, models.NewRuleValidationError(path, field.Name, err.Error())
		}
		if rule.Operator == models.OperatorNotIn {
			return squirrel.NotEq{field.Name: values}, nil
		}
		return squirrel.Eq{field.Name: values}, nil
	}

	value, err := coerceText(rule.Value)
	if err != nil {
		return nil, models.NewRuleValidationError(path, field.Name, err.Error())
	}

	switch rule.Operator {
	case models.OperatorEqual:
		return squirrel.Eq{field.Name: value}, nil
	case models.OperatorNotEqual:
		return squirrel.NotEq{field.Name: value}, nil
	case models.OperatorContains:
		return squirrel.ILike{field.Name: "%" + escapeLikePattern(value) + "%"}, nil
	case models.OperatorBeginsWith:
		return squirrel.ILike{field.Name: escapeLikePattern(value) + "%"}, nil
	case models.OperatorEndsWith:
		return squirrel.ILike{field.Name: "%" + escapeLikePattern(value)}, nil
	case models.OperatorNotContains:
		return squirrel.NotILike{field.Name: "%" + escapeLikePattern(value) + "%"}, nil
	case models.OperatorNotBeginsWith:
		return squirrel.NotILike{field.Name: escapeLikePattern(value) + "%"}, nil
	case models.OperatorNotEndsWith:
		return squirrel.NotILike{field.Name: "%" + escapeLikePattern(value)}, nil
	}
	return nil, models.NewRuleValidationError(path, field.Name,
		fmt.Sprintf("operator %q is not supported on text fields", rule.Operator))
}

func compileComparison(field models.FieldDescriptor, operator string, value any, path string) (squirrel.Sqlizer, error) {
	switch operator {
	case models.OperatorEqual:
		return squirrel.Eq{field.Name: value}, nil
	case models.OperatorNotEqual:
		return squirrel.NotEq{field.Name: value}, nil
	case models.OperatorLess:
		return squirrel.Lt{field.Name: value}, nil
	case models.OperatorLessOrEqual:
		return squirrel.LtOrEq{field.Name: value}, nil
	case models.OperatorGreater:
		return squirrel.Gt{field.Name: value}, nil
	case models.OperatorGreaterOrEqual:
		return squirrel.GtOrEq{field.Name: value}, nil
	}
	return nil, models.NewRuleValidationError(path, field.Name,
		fmt.Sprintf("operator %q does not compare values", operator))
}

// escapeLikePattern neutralizes LIKE metacharacters in a user-supplied value
// so that "50%" matches the literal string.
func escapeLikePattern(value string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return replacer.Replace(value)
}

func coerceText(value any) (string, error) {
	switch v := value.(type) {
	case string:
		return v, nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	case bool:
		return strconv.FormatBool(v), nil
	}
	return "", fmt.Errorf("value %v cannot be used as text", value)
}

// coerceTextList accepts both the comma-separated string the UI produces and
// a JSON array of scalars.
func coerceTextList(value any) ([]string, error) {
	var values []string
	switch v := value.(type) {
	case string:
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				values = append(values, part)
			}
		}
	case []any:
		for _, item := range v {
			text, err := coerceText(item)
			if err != nil {
				return nil, err
			}
			values = append(values, text)
		}
	default:
		return nil, fmt.Errorf("value %v is not a value list", value)
	}
	if len(values) == 0 {
		return nil, fmt.Errorf("value list is empty")
	}
	return values, nil
}

func coerceNumber(value any) (float64, error) {
	switch v := value.(type) {
	case float64:
		return v, nil
	case int:
		return float64(v), nil
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, fmt.Errorf("value %q is not a number", v)
		}
		return parsed, nil
	}
	return 0, fmt.Errorf("value %v is not a number", value)
}

func coerceBool(value any) (bool, error) {
	switch v := value.(type) {
	case bool:
		return v, nil
	case string:
		parsed, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return false, fmt.Errorf("value %q is not a boolean", v)
		}
		return parsed, nil
	}
	return false, fmt.Errorf("value %v is not a boolean", value)
}

var (
	dateLayouts = []string{"2006-01-02"}
	// datetime-local inputs emit minute precision without a zone
	datetimeLayouts = []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02T15:04", "2006-01-02"}
	timeLayouts     = []string{"15:04:05", "15:04"}
)

// coerceTemporal validates the value against the layouts of its data type.
// Dates and datetimes are compared as instants; time-of-day values are
// passed through as strings, which postgres casts against time columns.
func coerceTemporal(value any, dataType models.FieldDataType) (any, error) {
	text, ok := value.(string)
	if !ok {
		return nil, fmt.Errorf("value %v is not a %s", value, dataType)
	}

	var layouts []string
	switch dataType {
	case models.FieldTypeDate:
		layouts = dateLayouts
	case models.FieldTypeDatetime:
		layouts = datetimeLayouts
	default:
		layouts = timeLayouts
	}

	for _, layout := range layouts {
		if parsed, err := time.Parse(layout, text); err == nil {
			if dataType == models.FieldTypeTime {
				return text, nil
			}
			return parsed, nil
		}
	}
	return nil, fmt.Errorf("value %q is not a valid %s", text, dataType)
}
