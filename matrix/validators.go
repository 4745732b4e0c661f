// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single source of truth for operand checks used by the multipliers.
//  - Return wrapped sentinels so call sites can add their own tag uniformly.
//
// Note:
//  - Composite validators follow a fixed sequence: NotNil(a) → NotNil(b) → SameN.

package matrix

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return matrixErrorf(tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Returns ErrNilMatrix if m == nil.
func ValidateNotNil(m *Dense) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameN ensures a and b share the dimension n.
// Assumes both are non-nil.
func ValidateSameN(a, b *Dense) error {
	if a.n != b.n {
		return validatorErrorf("ValidateSameN", ErrDimensionMismatch)
	}

	return nil
}

// ValidateMulOperands – Composite: NotNil(a) → NotNil(b) → SameN.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateMulOperands(a, b *Dense) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateMulOperands", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateMulOperands", err)
	}
	if err := ValidateSameN(a, b); err != nil {
		return validatorErrorf("ValidateMulOperands", err)
	}

	return nil
}
