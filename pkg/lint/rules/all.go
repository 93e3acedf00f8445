package rules

// Import all rule subpackages to register them with the global registry.
import (
	_ "github.com/leapstack-labs/curatekit/pkg/lint/rules/definition"
	_ "github.com/leapstack-labs/curatekit/pkg/lint/rules/identifier"
	_ "github.com/leapstack-labs/curatekit/pkg/lint/rules/label"
	_ "github.com/leapstack-labs/curatekit/pkg/lint/rules/table"
)
