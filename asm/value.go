package asm

import (
	"fmt"
	"math"
)

// ValueKind tags the variant held by a Value. Go has no native sum type
// (spec.md §9 Design Notes); this is the idiomatic rendering — a Kind
// enum plus per-kind fields, with accessors that panic on kind mismatch
// the way a match-on-tag would in the source language.
type ValueKind int

const (
	KindVoid ValueKind = iota
	KindNumber
	KindString
)

// Value is the assembler's dynamically-typed expression result
// (spec.md §3.3): Void, Number (double with derived integer/fractional
// parts), or String.
type Value struct {
	Kind ValueKind
	num  float64
	str  string
}

func Void() Value { return Value{Kind: KindVoid} }

func Number(f float64) Value { return Value{Kind: KindNumber, num: f} }

func Str(s string) Value { return Value{Kind: KindString, str: s} }

func (v Value) IsVoid() bool { return v.Kind == KindVoid }

// Num returns the numeric payload; callers must check Kind==KindNumber.
func (v Value) Num() float64 { return v.num }

// IntPart returns the magnitude of a Number's truncated-toward-zero
// integer part (the sign is dropped), matching the source's
// `integerPart:u64` derived field.
func (v Value) IntPart() uint64 {
	if v.num < 0 {
		return uint64(-v.num)
	}
	return uint64(v.num)
}

// FracPart returns the fractional part's representation as an integer,
// matching the source's `fractionalPart:u64` derived field: the digits
// after the decimal point, scaled by 1e9 and truncated.
func (v Value) FracPart() uint64 {
	_, frac := math.Modf(math.Abs(v.num))
	return uint64(frac * 1e9)
}

func (v Value) Str() string { return v.str }

// String renders a Value for diagnostics, such as assertion messages.
func (v Value) String() string {
	switch v.Kind {
	case KindVoid:
		return ""
	case KindNumber:
		if v.FracPart() == 0 {
			return fmt.Sprintf("%d", int64(v.num))
		}
		return fmt.Sprintf("%g", v.num)
	case KindString:
		return v.str
	default:
		return ""
	}
}
