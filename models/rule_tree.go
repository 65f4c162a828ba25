package models

import "fmt"

type RuleCombinator string

const (
	CombinatorAnd RuleCombinator = "and"
	CombinatorOr  RuleCombinator = "or"
)

// Rule is a single field/operator/value leaf of a rule tree. Value is ignored
// for null-test operators; for every other operator its interpretation
// depends on the field's data type.
type Rule struct {
	Field    string
	Operator string
	Value    any
}

// RuleGroup combines an ordered list of rules and sub-groups with a single
// combinator. A group with no rules matches every row.
type RuleGroup struct {
	Combinator RuleCombinator
	Rules      []RuleNode
}

// RuleNode is the tagged union over RuleGroup | Rule. Exactly one of the two
// pointers is set.
type RuleNode struct {
	Group *RuleGroup
	Rule  *Rule
}

func NewGroupNode(group RuleGroup) RuleNode {
	return RuleNode{Group: &group}
}

func NewRuleNode(rule Rule) RuleNode {
	return RuleNode{Rule: &rule}
}

// EmptyRuleGroup is the default filter state of the UI: matches everything.
func EmptyRuleGroup() RuleGroup {
	return RuleGroup{Combinator: CombinatorAnd, Rules: []RuleNode{}}
}

// ValidateShape checks the structural invariants that hold regardless of any
// field set: known combinators and properly tagged nodes. It is the boundary
// check for persisting a tree, where the target table is not yet known.
func (group RuleGroup) ValidateShape() error {
	return group.validateShape("$")
}

func (group RuleGroup) validateShape(path string) error {
	if group.Combinator != CombinatorAnd && group.Combinator != CombinatorOr {
		return NewRuleValidationError(path, "",
			fmt.Sprintf("unknown combinator %q", group.Combinator))
	}
	for i, node := range group.Rules {
		nodePath := fmt.Sprintf("%s.rules[%d]", path, i)
		switch {
		case node.Group != nil:
			if err := node.Group.validateShape(nodePath); err != nil {
				return err
			}
		case node.Rule != nil:
			if node.Rule.Field == "" || node.Rule.Operator == "" {
				return NewRuleValidationError(nodePath, node.Rule.Field,
					"rule needs a field and an operator")
			}
		default:
			return NewRuleValidationError(nodePath, "", "node is neither a group nor a rule")
		}
	}
	return nil
}

// Validate checks well-formedness of the whole tree against a field set:
// known combinators, known fields, operators inside each field's allowed set,
// and values accepted by the field's validator where one is attached. It
// stops at the first offending node and reports its path.
func (group RuleGroup) Validate(fields FieldDescriptors) error {
	return group.validate(fields, "$")
}

func (group RuleGroup) validate(fields FieldDescriptors, path string) error {
	if group.Combinator != CombinatorAnd && group.Combinator != CombinatorOr {
		return NewRuleValidationError(path, "",
			fmt.Sprintf("unknown combinator %q", group.Combinator))
	}
	for i, node := range group.Rules {
		nodePath := fmt.Sprintf("%s.rules[%d]", path, i)
		switch {
		case node.Group != nil:
			if err := node.Group.validate(fields, nodePath); err != nil {
				return err
			}
		case node.Rule != nil:
			if err := node.Rule.validate(fields, nodePath); err != nil {
				return err
			}
		default:
			return NewRuleValidationError(nodePath, "", "node is neither a group nor a rule")
		}
	}
	return nil
}

func (rule Rule) validate(fields FieldDescriptors, path string) error {
	field, ok := fields.Get(rule.Field)
	if !ok {
		return NewRuleValidationError(path, rule.Field, "unknown field")
	}
	if !field.AllowsOperator(rule.Operator) {
		return NewRuleValidationError(path, rule.Field,
			fmt.Sprintf("operator %q is not allowed on a %s field", rule.Operator, field.DataType))
	}
	if IsNullOperator(rule.Operator) {
		return nil
	}
	if field.Validator != nil && !field.Validator(rule.Value) {
		return NewRuleValidationError(path, rule.Field, "value was rejected by the field validator")
	}
	return nil
}
