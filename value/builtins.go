package value

import "math"

// Reserved word lexemes.
const (
	KwVar    = "var"
	KwAssign = "="
	KwIf     = "if"
	KwFi     = "fi"
	KwDef    = "def"
	KwBegin  = "begin"
	KwEnd    = "end"
	KwCall   = "call"
	KwCend   = "cend"
	KwPrint  = "print"
	KwXPrint = "xprint"
	KwTrue   = "true"
	KwFalse  = "false"
)

// And/Or are binary operators but short-circuit, so the evaluator
// handles them itself instead of going through the function table.
const (
	And = "and"
	Or  = "or"
)

// BinaryFn is the semantic function of a two-operand builtin.
type BinaryFn func(lhs, rhs Value) (Value, error)

// UnaryFn is the semantic function of a one-operand builtin.
type UnaryFn func(v Value) (Value, error)

var keywords = map[string]struct{}{
	KwVar: {}, KwAssign: {}, KwIf: {}, KwFi: {}, KwDef: {}, KwBegin: {},
	KwEnd: {}, KwCall: {}, KwCend: {}, KwPrint: {}, KwXPrint: {},
	KwTrue: {}, KwFalse: {},
}

var constants = map[string]Value{
	"pi":  Num(math.Pi),
	"tau": Num(2 * math.Pi),
	"e":   Num(math.E),
	"phi": Num(math.Phi),
}

var binaryFns = map[string]BinaryFn{
	"+":   numBinary(func(a, b float64) float64 { return a + b }),
	"-":   numBinary(func(a, b float64) float64 { return a - b }),
	"*":   numBinary(func(a, b float64) float64 { return a * b }),
	"/":   numBinary(func(a, b float64) float64 { return a / b }),
	"%":   numBinary(math.Mod),
	"^":   numBinary(math.Pow),
	// max/min propagate NaN.
	"max": numBinary(math.Max),
	"min": numBinary(math.Min),
	"==":  equality(true),
	"!=":  equality(false),
	"<": ordering(
		func(a, b float64) bool { return a < b },
		func(a, b bool) bool { return !a && b }),
	"<=": ordering(
		func(a, b float64) bool { return a <= b },
		func(a, b bool) bool { return !a || b }),
	">": ordering(
		func(a, b float64) bool { return a > b },
		func(a, b bool) bool { return a && !b }),
	">=": ordering(
		func(a, b float64) bool { return a >= b },
		func(a, b bool) bool { return a || !b }),
}

var unaryFns = map[string]UnaryFn{
	"sqrt":  numUnary(math.Sqrt),
	"exp":   numUnary(math.Exp),
	"exp2":  numUnary(math.Exp2),
	"ln":    numUnary(math.Log),
	"log2":  numUnary(math.Log2),
	"log10": numUnary(math.Log10),
	"sin":   numUnary(math.Sin),
	"cos":   numUnary(math.Cos),
	"tan":   numUnary(math.Tan),
	"asin":  numUnary(math.Asin),
	"acos":  numUnary(math.Acos),
	"atan":  numUnary(math.Atan),
	"sinh":  numUnary(math.Sinh),
	"cosh":  numUnary(math.Cosh),
	"tanh":  numUnary(math.Tanh),
	"asinh": numUnary(math.Asinh),
	"acosh": numUnary(math.Acosh),
	"atanh": numUnary(math.Atanh),
	"abs":   numUnary(math.Abs),
	"sign": numUnary(func(f float64) float64 {
		if f < 0 {
			return -1
		}
		return 1
	}),
	"recip": numUnary(func(f float64) float64 { return 1 / f }),
	"fract": numUnary(func(f float64) float64 { return f - math.Trunc(f) }),
	"trunc": numUnary(math.Trunc),
	"ceil":  numUnary(math.Ceil),
	"floor": numUnary(math.Floor),
	"round": numUnary(math.Round),
	"neg":   numUnary(func(f float64) float64 { return -f }),
	"not": func(v Value) (Value, error) {
		b, err := v.Bool()
		if err != nil {
			return Value{}, err
		}
		return Bool(!b), nil
	},
	"asnum": func(v Value) (Value, error) {
		if v.IsNum() {
			return v, nil
		}
		if v.b {
			return Num(1), nil
		}
		return Num(0), nil
	},
	"asbool": func(v Value) (Value, error) {
		if v.IsBool() {
			return v, nil
		}
		return Bool(v.num != 0), nil
	},
}

func numBinary(fn func(a, b float64) float64) BinaryFn {
	return func(lhs, rhs Value) (Value, error) {
		a, err := lhs.Num()
		if err != nil {
			return Value{}, err
		}
		b, err := rhs.Num()
		if err != nil {
			return Value{}, err
		}
		return Num(fn(a, b)), nil
	}
}

func numUnary(fn func(f float64) float64) UnaryFn {
	return func(v Value) (Value, error) {
		f, err := v.Num()
		if err != nil {
			return Value{}, err
		}
		return Num(fn(f)), nil
	}
}

func equality(want bool) BinaryFn {
	return func(lhs, rhs Value) (Value, error) {
		if err := lhs.SameKind(rhs); err != nil {
			return Value{}, err
		}
		return Bool(lhs.Equal(rhs) == want), nil
	}
}

// ordering compares numbers with IEEE semantics and booleans with
// false < true.
func ordering(numCmp func(a, b float64) bool, boolCmp func(a, b bool) bool) BinaryFn {
	return func(lhs, rhs Value) (Value, error) {
		if err := lhs.SameKind(rhs); err != nil {
			return Value{}, err
		}
		if lhs.kind == Number {
			return Bool(numCmp(lhs.num, rhs.num)), nil
		}
		return Bool(boolCmp(lhs.b, rhs.b)), nil
	}
}

// Binary returns the semantic function of a binary operator. And/Or
// are absent on purpose.
func Binary(name string) (BinaryFn, bool) {
	fn, ok := binaryFns[name]
	return fn, ok
}

// Unary returns the semantic function of a unary operator.
func Unary(name string) (UnaryFn, bool) {
	fn, ok := unaryFns[name]
	return fn, ok
}

// Constant returns the value of a builtin constant.
func Constant(name string) (Value, bool) {
	v, ok := constants[name]
	return v, ok
}

// IsBinaryOp reports whether name is a binary operator, including the
// short-circuiting And/Or.
func IsBinaryOp(name string) bool {
	if name == And || name == Or {
		return true
	}
	_, ok := binaryFns[name]
	return ok
}

// IsUnaryOp reports whether name is a unary operator.
func IsUnaryOp(name string) bool {
	_, ok := unaryFns[name]
	return ok
}

// IsOperator reports whether name is any builtin operator.
func IsOperator(name string) bool { return IsBinaryOp(name) || IsUnaryOp(name) }

// IsKeyword reports whether name is a reserved word.
func IsKeyword(name string) bool {
	_, ok := keywords[name]
	return ok
}

// IsConstant reports whether name is a builtin constant.
func IsConstant(name string) bool {
	_, ok := constants[name]
	return ok
}

// IsReserved reports whether name may not be used as a variable,
// parameter or function name.
func IsReserved(name string) bool {
	return IsKeyword(name) || IsConstant(name) || IsOperator(name) || name == "last"
}

// BinaryOps lists the binary operator names in display order.
func BinaryOps() []string {
	return []string{
		"+", "-", "*", "/", "%", "^", "max", "min",
		"==", "!=", "<", "<=", ">", ">=", And, Or,
	}
}

// UnaryOps lists the unary operator names in display order.
func UnaryOps() []string {
	return []string{
		"sqrt", "exp", "exp2", "ln", "log2", "log10",
		"sin", "cos", "tan", "asin", "acos", "atan",
		"sinh", "cosh", "tanh", "asinh", "acosh", "atanh",
		"abs", "sign", "recip", "fract", "trunc", "ceil", "floor", "round",
		"neg", "not", "asnum", "asbool",
	}
}

// ConstantNames lists the builtin constant names in display order.
func ConstantNames() []string { return []string{"pi", "tau", "e", "phi"} }
