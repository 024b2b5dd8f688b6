package regexfe

// precedence implements spec section 4.2's operator ordering: '*' binds
// tightest, then '&' (concatenation), then '|' (union). '*' is
// postfix/unary; it is pushed onto the operator stack like the binary
// operators, and because it has the highest precedence the next operator,
// closing parenthesis, or end of input pops it straight after its operand.
var precedence = map[byte]int{
	'|': 1,
	'&': 2,
	'*': 3,
}

// ToPostfix converts a preprocessed infix expression (one that already has
// explicit '&' concatenation markers, i.e. the output of Preprocess) to
// postfix using Dijkstra's shunting yard algorithm (spec section 4.2).
func ToPostfix(expr string) string {
	var output []byte
	var ops []byte

	for i := 0; i < len(expr); i++ {
		c := expr[i]
		switch {
		case c == '(':
			ops = append(ops, c)
		case c == ')':
			for len(ops) > 0 && ops[len(ops)-1] != '(' {
				output = append(output, ops[len(ops)-1])
				ops = ops[:len(ops)-1]
			}
			if len(ops) > 0 {
				ops = ops[:len(ops)-1] // discard the matching '('
			}
		case isOperator(c):
			for len(ops) > 0 && ops[len(ops)-1] != '(' && precedence[ops[len(ops)-1]] >= precedence[c] {
				output = append(output, ops[len(ops)-1])
				ops = ops[:len(ops)-1]
			}
			ops = append(ops, c)
		default:
			output = append(output, c)
		}
	}

	for len(ops) > 0 {
		output = append(output, ops[len(ops)-1])
		ops = ops[:len(ops)-1]
	}

	return string(output)
}

func isOperator(c byte) bool {
	_, ok := precedence[c]
	return ok
}

// CompileToPostfix is the external `validate_and_compile` operation of
// spec section 6: it validates expr, inserts implicit concatenation, and
// converts the result to postfix, or returns the first *InvalidRegex
// encountered.
func CompileToPostfix(expr string) (string, error) {
	return CompileToPostfixConfig(expr, DefaultConfig())
}

// CompileToPostfixConfig is CompileToPostfix with an explicit Config.
func CompileToPostfixConfig(expr string, cfg Config) (string, error) {
	if err := ValidateConfig(expr, cfg); err != nil {
		return "", err
	}
	return ToPostfix(Preprocess(expr)), nil
}
