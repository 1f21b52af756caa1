// Copyright (c) 2025 Open Swarm Contributors
//
// This software is released under the MIT License.
// See LICENSE file in the repository for details.

// Package calculator provides basic arithmetic on real numbers.
package calculator

import (
	"math"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

// Number is any built-in integer or floating point type.
type Number interface {
	constraints.Integer | constraints.Float
}

// Add returns the sum of a and b as a float64, whatever the operand types.
func Add[A, B Number](a A, b B) float64 {
	return float64(a) + float64(b)
}

// Format renders a result as a real number: integral values keep a ".0"
// suffix and exponent notation is used outside [1e-4, 1e16).
func Format(v float64) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}

	s := shortest(v)
	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}
	return s
}

// FormatOperand renders an input value like Format but without the ".0"
// suffix, so integral operands read as written.
func FormatOperand(v float64) string {
	switch {
	case math.IsNaN(v), math.IsInf(v, 0):
		return Format(v)
	}
	return shortest(v)
}

// shortest returns the shortest round-trip digits of a finite v, in exponent
// form only when the decimal exponent is < -4 or >= 16.
func shortest(v float64) string {
	sci := strconv.FormatFloat(v, 'e', -1, 64)
	if exp := exponent(sci); exp < -4 || exp >= 16 {
		return sci
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func exponent(sci string) int {
	_, exp, ok := strings.Cut(sci, "e")
	if !ok {
		return 0
	}
	n, err := strconv.Atoi(exp)
	if err != nil {
		return 0
	}
	return n
}
