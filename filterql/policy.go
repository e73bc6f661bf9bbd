package filterql

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/syssam/sqlforge"
)

// Policy is the serializable form of a validation policy, typically
// loaded from a YAML configuration file:
//
//	allowed_fields: [age, status, created_at]
//	denied_operators: [regex, like]
//	allowed_operators: []
//	max_depth: 5
//	max_nodes: 10000
//
// Operator names follow Op.String (eq, ne, gt, gte, lt, lte, in, nin,
// like, ilike, regex, startsWith, endsWith, contains, between). Zero
// limits mean the defaults.
type Policy struct {
	AllowedFields    []string `yaml:"allowed_fields"`
	DeniedOperators  []string `yaml:"denied_operators"`
	AllowedOperators []string `yaml:"allowed_operators"`
	MaxDepth         int      `yaml:"max_depth"`
	MaxNodes         int      `yaml:"max_nodes"`
}

// PolicyFromYAML parses a YAML policy document.
func PolicyFromYAML(data []byte) (*Policy, error) {
	var p Policy
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("sqlforge: parsing filter policy: %w", err)
	}
	return &p, nil
}

// Validator builds a Validator from the policy. Unknown operator names
// are an error.
func (p *Policy) Validator() (*Validator, error) {
	opts := []Option{}
	if len(p.AllowedFields) > 0 {
		opts = append(opts, AllowFields(p.AllowedFields...))
	}
	denied, err := opsFromNames(p.DeniedOperators)
	if err != nil {
		return nil, err
	}
	if len(denied) > 0 {
		opts = append(opts, DenyOps(denied...))
	}
	allowed, err := opsFromNames(p.AllowedOperators)
	if err != nil {
		return nil, err
	}
	if len(allowed) > 0 {
		opts = append(opts, AllowOps(allowed...))
	}
	if p.MaxDepth > 0 {
		opts = append(opts, MaxDepth(p.MaxDepth))
	}
	if p.MaxNodes > 0 {
		opts = append(opts, MaxNodes(p.MaxNodes))
	}
	return NewValidator(opts...), nil
}

func opsFromNames(names []string) ([]sqlforge.Op, error) {
	ops := make([]sqlforge.Op, 0, len(names))
	for _, name := range names {
		op, ok := sqlforge.OpFromName(name)
		if !ok {
			return nil, fmt.Errorf("sqlforge: unknown operator %q in filter policy", name)
		}
		ops = append(ops, op)
	}
	return ops, nil
}
