package asm

import (
	"fmt"
	"math"
)

// evalBinary applies the typed operator table (spec.md §4.5): numeric
// operators compute on the f64 component, bitwise/logical operators act
// on the truncated integer part, string `+` concatenates, and mixing a
// number with a string coerces the number via `%d`/`%g` the way the
// source's `%ld`/`%lf` choice did (integral values print without a
// fractional part).
func (b *Builder) evalBinary(n *Syntax) (Value, error) {
	left, err := b.eval(n.Left)
	if err != nil {
		return Void(), err
	}
	right, err := b.eval(n.Right)
	if err != nil {
		return Void(), err
	}

	if n.Op == "+" && (left.Kind == KindString || right.Kind == KindString) {
		return Str(coerceString(left) + coerceString(right)), nil
	}
	if left.Kind == KindString || right.Kind == KindString {
		return Void(), semErr(n.Pos, "operator %q does not apply to strings", n.Op)
	}

	lf, rf := left.Num(), right.Num()
	li, ri := int64(left.IntPart()), int64(right.IntPart())
	if left.Num() < 0 {
		li = -li
	}
	if right.Num() < 0 {
		ri = -ri
	}

	switch n.Op {
	case "+":
		return Number(lf + rf), nil
	case "-":
		return Number(lf - rf), nil
	case "*":
		return Number(lf * rf), nil
	case "/":
		if rf == 0 {
			return Void(), semErr(n.Pos, "division by zero")
		}
		return Number(lf / rf), nil
	case "%":
		if ri == 0 {
			return Void(), semErr(n.Pos, "modulo by zero")
		}
		return Number(float64(li % ri)), nil
	case "**":
		return Number(math.Pow(lf, rf)), nil
	case "<<":
		return Number(float64(li << uint(ri))), nil
	case ">>":
		return Number(float64(li >> uint(ri))), nil
	case "&":
		return Number(float64(li & ri)), nil
	case "|":
		return Number(float64(li | ri)), nil
	case "^":
		return Number(float64(li ^ ri)), nil
	case "==":
		return boolNumber(lf == rf), nil
	case "!=":
		return boolNumber(lf != rf), nil
	case "<":
		return boolNumber(lf < rf), nil
	case "<=":
		return boolNumber(lf <= rf), nil
	case ">":
		return boolNumber(lf > rf), nil
	case ">=":
		return boolNumber(lf >= rf), nil
	case "&&":
		return boolNumber(li != 0 && ri != 0), nil
	case "||":
		return boolNumber(li != 0 || ri != 0), nil
	default:
		return Void(), semErr(n.Pos, "unknown binary operator %q", n.Op)
	}
}

func (b *Builder) evalUnary(n *Syntax) (Value, error) {
	v, err := b.eval(n.Right)
	if err != nil {
		return Void(), err
	}
	if v.Kind != KindNumber {
		return Void(), semErr(n.Pos, "unary operator %q requires a number", n.Op)
	}
	switch n.Op {
	case "+":
		return v, nil
	case "-":
		return Number(-v.Num()), nil
	case "!":
		return boolNumber(v.Num() == 0), nil
	case "~":
		return Number(float64(^int64(v.IntPart()))), nil
	default:
		return Void(), semErr(n.Pos, "unknown unary operator %q", n.Op)
	}
}

func boolNumber(ok bool) Value {
	if ok {
		return Number(1)
	}
	return Number(0)
}

func coerceString(v Value) string {
	if v.Kind == KindString {
		return v.Str()
	}
	if v.FracPart() == 0 {
		return fmt.Sprintf("%d", int64(v.Num()))
	}
	return fmt.Sprintf("%g", v.Num())
}

func applyCompoundAssign(pos Position, op string, cur, rhs Value) (Value, error) {
	base := op
	if len(op) == 2 && op[1] == '=' {
		base = string(op[0])
	}
	switch base {
	case "+":
		if cur.Kind == KindString || rhs.Kind == KindString {
			return Str(coerceString(cur) + coerceString(rhs)), nil
		}
		return Number(cur.Num() + rhs.Num()), nil
	case "-":
		return Number(cur.Num() - rhs.Num()), nil
	case "*":
		return Number(cur.Num() * rhs.Num()), nil
	case "/":
		if rhs.Num() == 0 {
			return Void(), semErr(pos, "division by zero")
		}
		return Number(cur.Num() / rhs.Num()), nil
	case "%":
		if int64(rhs.IntPart()) == 0 {
			return Void(), semErr(pos, "modulo by zero")
		}
		return Number(float64(int64(cur.IntPart()) % int64(rhs.IntPart()))), nil
	default:
		return Void(), semErr(pos, "unsupported compound assignment %q", op)
	}
}
