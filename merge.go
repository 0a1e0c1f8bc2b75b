// File: argconf/merge.go
package argconf

// mergeTokens builds the token stream the final match runs against. File
// tokens are inserted between the program name and the real invocation
// tokens; the matcher's last-occurrence-wins rule then makes command-line
// values override file values, and repeatable options see file values before
// command-line values, each in original order.
//
// invocation must be non-empty with the program name in position 0; that
// first token is preserved positionally and never matched as an option.
func mergeTokens(invocation, file []string) []string {
	if len(file) == 0 {
		// Nothing to add, reuse the invocation as-is.
		return invocation
	}

	merged := make([]string, 0, len(invocation)+len(file))
	merged = append(merged, invocation[0])
	merged = append(merged, file...)
	merged = append(merged, invocation[1:]...)
	return merged
}
