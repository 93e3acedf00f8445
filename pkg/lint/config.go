package lint

import (
	"slices"
	"strings"

	"github.com/leapstack-labs/curatekit/pkg/core"
)

// Config controls which rules are enabled, their severity and options.
type Config struct {
	// DisabledRules contains rule IDs to skip
	DisabledRules map[string]bool

	// OnlyRules, when non-empty, restricts analysis to these rule IDs
	OnlyRules map[string]bool

	// SeverityOverrides changes the default severity of rules
	SeverityOverrides map[string]Severity

	// RuleOptions holds rule-specific options keyed by rule ID
	RuleOptions map[string]map[string]any
}

// NewConfig creates a default configuration with all rules enabled.
func NewConfig() *Config {
	return &Config{
		DisabledRules:     make(map[string]bool),
		OnlyRules:         make(map[string]bool),
		SeverityOverrides: make(map[string]Severity),
		RuleOptions:       make(map[string]map[string]any),
	}
}

// IsDisabled returns true if the rule should be skipped.
func (c *Config) IsDisabled(ruleID string) bool {
	if c == nil {
		return false
	}
	if len(c.OnlyRules) > 0 && !c.OnlyRules[ruleID] {
		return true
	}
	return c.DisabledRules[ruleID]
}

// GetSeverity returns the severity for a rule, applying any override.
func (c *Config) GetSeverity(ruleID string, defaultSeverity Severity) Severity {
	if c != nil {
		if sev, ok := c.SeverityOverrides[ruleID]; ok {
			return sev
		}
	}
	return defaultSeverity
}

// GetRuleOptions returns the options configured for a rule, or nil.
func (c *Config) GetRuleOptions(ruleID string) map[string]any {
	if c == nil {
		return nil
	}
	return c.RuleOptions[ruleID]
}

// Disable disables a rule by ID.
func (c *Config) Disable(ruleID string) *Config {
	c.DisabledRules[ruleID] = true
	return c
}

// Only restricts analysis to the given rule IDs.
func (c *Config) Only(ruleIDs ...string) *Config {
	for _, id := range ruleIDs {
		c.OnlyRules[id] = true
	}
	return c
}

// SetSeverity overrides the severity for a rule.
func (c *Config) SetSeverity(ruleID string, severity Severity) *Config {
	c.SeverityOverrides[ruleID] = severity
	return c
}

// SetRuleOptions sets rule-specific options.
func (c *Config) SetRuleOptions(ruleID string, opts map[string]any) *Config {
	c.RuleOptions[ruleID] = opts
	return c
}

// Validate checks the configuration against the registered rules. Unknown
// rule IDs and option keys a rule does not declare are rejected.
func (c *Config) Validate() error {
	if c == nil {
		return nil
	}
	check := func(field, id string) (RuleDef, error) {
		rule, ok := GetByID(id)
		if !ok {
			return RuleDef{}, core.NewConfigurationError(field, "unknown rule %q", id)
		}
		return rule, nil
	}
	for _, id := range sortedKeys(c.DisabledRules) {
		if _, err := check("lint.disabled", id); err != nil {
			return err
		}
	}
	for _, id := range sortedKeys(c.OnlyRules) {
		if _, err := check("lint.rule", id); err != nil {
			return err
		}
	}
	for _, id := range sortedKeys(c.SeverityOverrides) {
		if _, err := check("lint.severity", id); err != nil {
			return err
		}
	}
	for _, id := range sortedKeys(c.RuleOptions) {
		rule, err := check("lint.rules", id)
		if err != nil {
			return err
		}
		for _, key := range sortedKeys(c.RuleOptions[id]) {
			if !slices.Contains(rule.ConfigKeys, key) {
				return core.NewConfigurationError("lint.rules."+id, "unknown option %q (accepted: %s)",
					key, strings.Join(rule.ConfigKeys, ", "))
			}
		}
	}
	return nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
