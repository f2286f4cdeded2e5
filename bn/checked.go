// Copyright (c) 2025 The EdgeAI developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package bn provides overflow-checked arithmetic on value amounts.
// Every balance or counter mutation in the module goes through these
// helpers; a false second return value means the operation would wrap.
package bn

import "github.com/holiman/uint256"

// Add returns a+b, reporting whether the sum fits in uint64.
func Add(a, b uint64) (uint64, bool) {
	s := new(uint256.Int).Add(uint256.NewInt(a), uint256.NewInt(b))
	if !s.IsUint64() {
		return 0, false
	}
	return s.Uint64(), true
}

// Sub returns a-b, reporting whether the difference is non-negative.
func Sub(a, b uint64) (uint64, bool) {
	if b > a {
		return 0, false
	}
	return a - b, true
}

// MulDiv returns floor(a*b/denom) with a 256-bit-wide intermediate, so
// the multiply cannot overflow before the divide. It reports false when
// denom is zero or the quotient exceeds uint64.
func MulDiv(a, b, denom uint64) (uint64, bool) {
	if denom == 0 {
		return 0, false
	}
	x := new(uint256.Int).Mul(uint256.NewInt(a), uint256.NewInt(b))
	x.Div(x, uint256.NewInt(denom))
	if !x.IsUint64() {
		return 0, false
	}
	return x.Uint64(), true
}
