package regexfe

import "strings"

// Preprocess inserts the explicit concatenation marker '&' into an
// already-validated regex (spec section 4.1): walking left to right, '&'
// is inserted between a previous character P and current character C
// whenever P is a symbol, '*', or ')', and C is a symbol or '('.
//
// Preprocess assumes expr has already passed Validate; it does not
// re-validate.
func Preprocess(expr string) string {
	var out strings.Builder
	out.Grow(len(expr) * 2)

	var prev byte
	havePrev := false

	for i := 0; i < len(expr); i++ {
		c := expr[i]
		if havePrev {
			prevConcatable := isSymbolChar(prev) || prev == '*' || prev == ')'
			currConcatable := isSymbolChar(c) || c == '('
			if prevConcatable && currConcatable {
				out.WriteByte('&')
			}
		}
		out.WriteByte(c)
		prev = c
		havePrev = true
	}

	return out.String()
}
