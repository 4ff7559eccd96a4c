package internal

import "math"

type operatorApply func(left, right float64) float64

// binaryOperations follow IEEE-754: division by zero gives ±Inf or NaN and
// MOD has the sign of the dividend, as C fmod does.
var binaryOperations = map[Operator]operatorApply{
	ADD: func(left, right float64) float64 {
		return left + right
	},
	SUB: func(left, right float64) float64 {
		return left - right
	},
	MUL: func(left, right float64) float64 {
		return left * right
	},
	DIV: func(left, right float64) float64 {
		return left / right
	},
	MOD: math.Mod,
}
