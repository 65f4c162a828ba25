package models

import (
	"encoding/json"

	"github.com/cockroachdb/errors"
)

// The JSON shape follows the documents the query builder UI produces:
// groups are {"combinator": ..., "rules": [...]}, rules are
// {"field": ..., "operator": ..., "value": ...}. Key order is fixed by the
// shadow structs below, so marshalling the same tree always yields the same
// bytes; the query store digests this serialization.

type groupJSON struct {
	Combinator string     `json:"combinator"`
	Rules      []RuleNode `json:"rules"`
}

type ruleJSON struct {
	Field    string `json:"field"`
	Operator string `json:"operator"`
	Value    any    `json:"value,omitempty"`
}

func (group RuleGroup) MarshalJSON() ([]byte, error) {
	rules := group.Rules
	if rules == nil {
		rules = []RuleNode{}
	}
	return json.Marshal(groupJSON{
		Combinator: string(group.Combinator),
		Rules:      rules,
	})
}

func (group *RuleGroup) UnmarshalJSON(data []byte) error {
	var decoded groupJSON
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}
	group.Combinator = RuleCombinator(decoded.Combinator)
	group.Rules = decoded.Rules
	if group.Rules == nil {
		group.Rules = []RuleNode{}
	}
	return nil
}

func (rule Rule) MarshalJSON() ([]byte, error) {
	return json.Marshal(ruleJSON{
		Field:    rule.Field,
		Operator: rule.Operator,
		Value:    rule.Value,
	})
}

func (rule *Rule) UnmarshalJSON(data []byte) error {
	var decoded ruleJSON
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}
	rule.Field = decoded.Field
	rule.Operator = decoded.Operator
	rule.Value = decoded.Value
	return nil
}

func (node RuleNode) MarshalJSON() ([]byte, error) {
	switch {
	case node.Group != nil:
		return json.Marshal(node.Group)
	case node.Rule != nil:
		return json.Marshal(node.Rule)
	}
	return nil, errors.Wrap(ErrInvalidRuleTree, "rule node is neither a group nor a rule")
}

// UnmarshalJSON discriminates on the presence of a "combinator" key.
func (node *RuleNode) UnmarshalJSON(data []byte) error {
	var probe struct {
		Combinator *string `json:"combinator"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return err
	}
	if probe.Combinator != nil {
		node.Group = &RuleGroup{}
		node.Rule = nil
		return json.Unmarshal(data, node.Group)
	}
	node.Rule = &Rule{}
	node.Group = nil
	return json.Unmarshal(data, node.Rule)
}

// SerializeRuleGroup is the canonical serialization persisted by the query
// store and fed to the digest.
func SerializeRuleGroup(group RuleGroup) ([]byte, error) {
	payload, err := json.Marshal(group)
	if err != nil {
		return nil, errors.Wrap(err, "can't serialize rule tree")
	}
	return payload, nil
}

func DeserializeRuleGroup(payload []byte) (RuleGroup, error) {
	var group RuleGroup
	if err := json.Unmarshal(payload, &group); err != nil {
		return RuleGroup{}, errors.Wrap(ErrInvalidRuleTree, err.Error())
	}
	return group, nil
}
