package value

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func evalBinary(t *testing.T, op string, lhs, rhs Value) Value {
	t.Helper()
	fn, ok := Binary(op)
	require.True(t, ok, "unknown binary op %q", op)
	v, err := fn(lhs, rhs)
	require.NoError(t, err)
	return v
}

func evalUnary(t *testing.T, op string, operand Value) Value {
	t.Helper()
	fn, ok := Unary(op)
	require.True(t, ok, "unknown unary op %q", op)
	v, err := fn(operand)
	require.NoError(t, err)
	return v
}

func TestBinaryArithmetic(t *testing.T) {
	tests := []struct {
		name     string
		op       string
		lhs, rhs Value
		want     Value
	}{
		{name: "add", op: "+", lhs: Num(1), rhs: Num(2), want: Num(3)},
		{name: "sub", op: "-", lhs: Num(1), rhs: Num(2), want: Num(-1)},
		{name: "mul", op: "*", lhs: Num(3), rhs: Num(4), want: Num(12)},
		{name: "div", op: "/", lhs: Num(9), rhs: Num(2), want: Num(4.5)},
		{name: "mod", op: "%", lhs: Num(9), rhs: Num(4), want: Num(1)},
		{name: "pow", op: "^", lhs: Num(3), rhs: Num(2), want: Num(9)},
		{name: "max", op: "max", lhs: Num(3), rhs: Num(7), want: Num(7)},
		{name: "min", op: "min", lhs: Num(3), rhs: Num(7), want: Num(3)},
		{name: "eq", op: "==", lhs: Num(3), rhs: Num(3), want: Bool(true)},
		{name: "neq", op: "!=", lhs: Num(3), rhs: Num(3), want: Bool(false)},
		{name: "lt", op: "<", lhs: Num(3), rhs: Num(7), want: Bool(true)},
		{name: "le", op: "<=", lhs: Num(7), rhs: Num(7), want: Bool(true)},
		{name: "gt", op: ">", lhs: Num(3), rhs: Num(7), want: Bool(false)},
		{name: "ge", op: ">=", lhs: Num(3), rhs: Num(7), want: Bool(false)},
		{name: "bool eq", op: "==", lhs: Bool(true), rhs: Bool(true), want: Bool(true)},
		{name: "bool lt", op: "<", lhs: Bool(false), rhs: Bool(true), want: Bool(true)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, evalBinary(t, tc.op, tc.lhs, tc.rhs))
		})
	}
}

func TestDivisionByZeroIsIEEE(t *testing.T) {
	v := evalBinary(t, "/", Num(1), Num(0))
	f, err := v.Num()
	require.NoError(t, err)
	assert.True(t, math.IsInf(f, 1))

	v = evalBinary(t, "%", Num(1), Num(0))
	f, err = v.Num()
	require.NoError(t, err)
	assert.True(t, math.IsNaN(f))
}

func TestMaxMinPropagateNaN(t *testing.T) {
	for _, op := range []string{"max", "min"} {
		v := evalBinary(t, op, Num(math.NaN()), Num(1))
		f, err := v.Num()
		require.NoError(t, err)
		assert.True(t, math.IsNaN(f), "%s with NaN operand", op)
	}
}

func TestCrossKindComparisonFails(t *testing.T) {
	for _, op := range []string{"==", "!=", "<", "<=", ">", ">="} {
		fn, ok := Binary(op)
		require.True(t, ok)
		_, err := fn(Num(1), Bool(true))
		assert.Error(t, err, "op %q", op)
	}
}

func TestUnaryOps(t *testing.T) {
	tests := []struct {
		name    string
		op      string
		operand Value
		want    Value
	}{
		{name: "sqrt", op: "sqrt", operand: Num(25), want: Num(5)},
		{name: "abs", op: "abs", operand: Num(-3), want: Num(3)},
		{name: "neg", op: "neg", operand: Num(3), want: Num(-3)},
		{name: "sign negative", op: "sign", operand: Num(-0.5), want: Num(-1)},
		{name: "sign zero", op: "sign", operand: Num(0), want: Num(1)},
		{name: "recip", op: "recip", operand: Num(4), want: Num(0.25)},
		{name: "fract", op: "fract", operand: Num(2.75), want: Num(0.75)},
		{name: "trunc", op: "trunc", operand: Num(2.75), want: Num(2)},
		{name: "ceil", op: "ceil", operand: Num(2.25), want: Num(3)},
		{name: "floor", op: "floor", operand: Num(2.75), want: Num(2)},
		{name: "round half away", op: "round", operand: Num(2.5), want: Num(3)},
		{name: "ln of one", op: "ln", operand: Num(1), want: Num(0)},
		{name: "log2", op: "log2", operand: Num(8), want: Num(3)},
		{name: "exp2", op: "exp2", operand: Num(3), want: Num(8)},
		{name: "not", op: "not", operand: Bool(true), want: Bool(false)},
		{name: "asnum true", op: "asnum", operand: Bool(true), want: Num(1)},
		{name: "asnum false", op: "asnum", operand: Bool(false), want: Num(0)},
		{name: "asnum passthrough", op: "asnum", operand: Num(5), want: Num(5)},
		{name: "asbool zero", op: "asbool", operand: Num(0), want: Bool(false)},
		{name: "asbool nonzero", op: "asbool", operand: Num(-2), want: Bool(true)},
		{name: "asbool passthrough", op: "asbool", operand: Bool(true), want: Bool(true)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, evalUnary(t, tc.op, tc.operand))
		})
	}
}

func TestUnaryTypeMismatch(t *testing.T) {
	fn, ok := Unary("sqrt")
	require.True(t, ok)
	_, err := fn(Bool(true))
	require.EqualError(t, err, "true is not a number")

	fn, ok = Unary("not")
	require.True(t, ok)
	_, err = fn(Num(5))
	require.EqualError(t, err, "5 is not a boolean")
}

func TestConstants(t *testing.T) {
	phi, ok := Constant("phi")
	require.True(t, ok)
	f, err := phi.Num()
	require.NoError(t, err)
	assert.Equal(t, 1.618033988749895, f)

	tau, ok := Constant("tau")
	require.True(t, ok)
	f, err = tau.Num()
	require.NoError(t, err)
	assert.Equal(t, 2*math.Pi, f)

	_, ok = Constant("nope")
	assert.False(t, ok)
}

func TestRegistryClassification(t *testing.T) {
	assert.True(t, IsBinaryOp("+"))
	assert.True(t, IsBinaryOp("and"))
	assert.True(t, IsUnaryOp("sqrt"))
	assert.False(t, IsBinaryOp("sqrt"))
	assert.False(t, IsUnaryOp("and"))

	// And/Or short-circuit in the evaluator, the table has no entry.
	_, ok := Binary("and")
	assert.False(t, ok)

	for _, name := range []string{"var", "pi", "max", "asnum", "last"} {
		assert.True(t, IsReserved(name), "%q should be reserved", name)
	}
	assert.False(t, IsReserved("x"))

	// Display lists stay in sync with the tables.
	for _, name := range BinaryOps() {
		assert.True(t, IsBinaryOp(name), "%q listed but not registered", name)
	}
	for _, name := range UnaryOps() {
		assert.True(t, IsUnaryOp(name), "%q listed but not registered", name)
	}
	assert.Len(t, UnaryOps(), len(unaryFns))
	assert.Len(t, BinaryOps(), len(binaryFns)+2)
	assert.Len(t, ConstantNames(), len(constants))
}
