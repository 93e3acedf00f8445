package commands

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/curatekit/pkg/core"
)

func TestNewRulesCommand(t *testing.T) {
	cmd := NewRulesCommand()

	assert.Equal(t, "rules [rule-id]", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")
	assert.NotEmpty(t, cmd.Example, "Example should not be empty")

	for _, flag := range []string{"group", "verbose", "format"} {
		assert.NotNil(t, cmd.Flags().Lookup(flag), "flag %q should exist", flag)
	}
}

func TestRulesCommand_ListAll(t *testing.T) {
	out, _, err := execute(t, NewRulesCommand())
	require.NoError(t, err)

	assert.Contains(t, out, "# Validation Rules")
	assert.Contains(t, out, "## Definition")
	assert.Contains(t, out, "## Label")
	assert.Contains(t, out, "## Class-id")
	assert.Contains(t, out, "## Table")
	assert.Contains(t, out, "- **DF03** - definition.genus-differentia (`warning`)")
}

func TestRulesCommand_FilterByGroup(t *testing.T) {
	t.Run("label group", func(t *testing.T) {
		out, _, err := execute(t, NewRulesCommand(), "--group", "label")
		require.NoError(t, err)

		assert.Contains(t, out, "LB01")
		assert.Contains(t, out, "LB02")
		assert.NotContains(t, out, "DF01")
	})

	t.Run("unknown group", func(t *testing.T) {
		_, _, err := execute(t, NewRulesCommand(), "--group", "semantics")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no rules in group")
	})
}

func TestRulesCommand_ShowSpecificRule(t *testing.T) {
	tests := []struct {
		name string
		id   string
	}{
		{"exact id", "DF02"},
		{"lowercase id", "df02"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := execute(t, NewRulesCommand(), tt.id)
			require.NoError(t, err)

			assert.Contains(t, out, "# DF02 - definition.length")
			assert.Contains(t, out, "## Why This Matters")
			assert.Contains(t, out, "Options: `min_length`, `max_length`")
		})
	}
}

func TestRulesCommand_NotFound(t *testing.T) {
	_, _, err := execute(t, NewRulesCommand(), "INVALID99")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestRulesCommand_JSON(t *testing.T) {
	out, _, err := execute(t, NewRulesCommand(), "--format", "json")
	require.NoError(t, err)

	var result RulesJSONOutput
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Len(t, result.Rules, result.Count.Total)
	assert.Equal(t, 7, result.Count.Groups["definition"])
	assert.Equal(t, 2, result.Count.Groups["label"])

	sum := 0
	for _, n := range result.Count.Groups {
		sum += n
	}
	assert.Equal(t, result.Count.Total, sum)
}

func TestRulesCommand_ShowJSON(t *testing.T) {
	out, _, err := execute(t, NewRulesCommand(), "DF05", "-f", "json")
	require.NoError(t, err)

	var info map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &info))
	assert.Equal(t, "DF05", info["id"])
	assert.Equal(t, "warning", info["default_severity"])
}

func TestRulesCommand_TextVerbose(t *testing.T) {
	out, _, err := execute(t, NewRulesCommand(), "--verbose", "--format", "text")
	require.NoError(t, err)

	assert.Contains(t, out, "Validation Rules")
	assert.Contains(t, out, "Why: ")
	assert.Contains(t, out, "curatekit rules <rule-id>")
}

func TestRuleInfos_Sorted(t *testing.T) {
	infos := ruleInfos("")
	require.NotEmpty(t, infos)
	for i := 1; i < len(infos); i++ {
		prev, cur := infos[i-1], infos[i]
		if prev.Group == cur.Group {
			assert.Less(t, prev.ID, cur.ID)
		} else {
			assert.Less(t, prev.Group, cur.Group)
		}
	}
}

func TestGetSeverityStyle(t *testing.T) {
	r := NewCommandContext(NewRulesCommand(), "text").Renderer
	styles := r.Styles()
	assert.Equal(t, styles.Error.Render("x"), getSeverityStyle(styles, core.SeverityError).Render("x"))
	assert.Equal(t, styles.Muted.Render("x"), getSeverityStyle(styles, core.Severity(9)).Render("x"))
}

func TestCapitalizeFirst(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"hello", "Hello"},
		{"WORLD", "WORLD"},
		{"", ""},
		{"a", "A"},
		{"class-id", "Class-id"},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			assert.Equal(t, tc.expected, capitalizeFirst(tc.input))
		})
	}
}

func TestTruncateOneLine(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxLen   int
		expected string
	}{
		{"short", "hello", 10, "hello"},
		{"newlines", "a\nb", 10, "a b"},
		{"truncated", "abcdefghijkl", 8, "abcde..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, truncateOneLine(tt.input, tt.maxLen))
		})
	}
}
