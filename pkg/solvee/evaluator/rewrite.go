package evaluator

import "regexp"

// Percentage sugar is plain text rewriting, applied before parsing. The
// three forms, in order:
//
//	A + N%  ->  A * (1 + N/100)
//	A - N%  ->  A * (1 - N/100)
//	N%      ->  (N/100)
//
// A is any identifier or integer literal (\w+), N an integer literal. Each
// pattern is applied globally before the next, so "100 + 22% - 10%" becomes
// "100 * (1 + 22/100) - (10/100)": the minus form does not fire there
// because after the first rewrite a ')' precedes the minus sign.
var (
	percentPlusRE  = regexp.MustCompile(`(\w+)\s*\+\s*(\d+)%`)
	percentMinusRE = regexp.MustCompile(`(\w+)\s*-\s*(\d+)%`)
	percentBareRE  = regexp.MustCompile(`(\d+)%`)
)

// RewritePercentages expands percentage sugar in a line. Lines without '%'
// pass through untouched.
func RewritePercentages(line string) string {
	line = percentPlusRE.ReplaceAllString(line, `$1 * (1 + $2/100)`)
	line = percentMinusRE.ReplaceAllString(line, `$1 * (1 - $2/100)`)
	line = percentBareRE.ReplaceAllString(line, `($1/100)`)
	return line
}
