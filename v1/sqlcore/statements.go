package sqlcore

import "strings"

// StoredProcedureStatement returns "EXEC name ?, ?, ..." with one placeholder per argument.
func StoredProcedureStatement(name string, argCount int) string {
	return "EXEC " + name + " " + placeholders(argCount, ", ")
}

// TableValuedFunctionStatement returns "SELECT * FROM name(?,?,...)".
// The parentheses are present even without parameters.
func TableValuedFunctionStatement(name string, paramCount int) string {
	return "SELECT * FROM " + name + "(" + placeholders(paramCount, ",") + ")"
}

func placeholders(n int, sep string) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat("?"+sep, n-1) + "?"
}
