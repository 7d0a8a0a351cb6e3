package wee

// Test-only exports for internal functions.
var (
	HeaderKey        = headerKey
	PatternWildcards = patternWildcards
)
