package interpreter

import (
	"fmt"
	"sort"
	"strings"

	"Calcline/internal/eval"
)

// FormatReport renders the three observable outputs of a run: the token
// sequence, the statement forest, and the execution results followed by the
// environment dump.
func FormatReport(report *RunReport) string {
	var sb strings.Builder

	sb.WriteString("Tokens:\n")
	for _, tok := range report.Tokens {
		sb.WriteString(tok.String())
		sb.WriteString("\n")
	}

	sb.WriteString("\nAST:\n")
	for _, stmt := range report.Statements {
		sb.WriteString(stmt.String())
		sb.WriteString("\n")
	}

	sb.WriteString("\nExecution:\n")
	for _, result := range report.Results {
		fmt.Fprintf(&sb, "Result: %s\n", result)
	}
	sb.WriteString(FormatEnv(report.Env))
	sb.WriteString("\n")

	return sb.String()
}

// FormatEnv renders the variable bindings as name = value pairs in sorted
// name order.
func FormatEnv(env map[string]eval.Value) string {
	names := make([]string, 0, len(env))
	for name := range env {
		names = append(names, name)
	}
	sort.Strings(names)

	pairs := make([]string, 0, len(names))
	for _, name := range names {
		pairs = append(pairs, fmt.Sprintf("%s = %s", name, env[name]))
	}

	return "Variables: " + strings.Join(pairs, ", ")
}
