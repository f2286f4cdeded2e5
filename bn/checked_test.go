// Copyright (c) 2025 The EdgeAI developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package bn

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdd(t *testing.T) {
	tests := []struct {
		a, b uint64
		want uint64
		ok   bool
	}{
		{0, 0, 0, true},
		{1, 2, 3, true},
		{math.MaxUint64, 0, math.MaxUint64, true},
		{math.MaxUint64, 1, 0, false},
		{math.MaxUint64 / 2, math.MaxUint64/2 + 2, 0, false},
	}
	for _, tt := range tests {
		got, ok := Add(tt.a, tt.b)
		assert.Equal(t, tt.ok, ok)
		assert.Equal(t, tt.want, got)
	}
}

func TestSub(t *testing.T) {
	tests := []struct {
		a, b uint64
		want uint64
		ok   bool
	}{
		{3, 2, 1, true},
		{2, 2, 0, true},
		{2, 3, 0, false},
		{0, 1, 0, false},
	}
	for _, tt := range tests {
		got, ok := Sub(tt.a, tt.b)
		assert.Equal(t, tt.ok, ok)
		assert.Equal(t, tt.want, got)
	}
}

func TestMulDiv(t *testing.T) {
	tests := []struct {
		a, b, denom uint64
		want        uint64
		ok          bool
	}{
		// 5% of 10000
		{10000, 500, 10000, 500, true},
		// floor division
		{3, 333, 10000, 0, true},
		{999, 9999, 10000, 998, true},
		// full share
		{12345, 10000, 10000, 12345, true},
		// wide intermediate does not wrap
		{math.MaxUint64, 10000, 10000, math.MaxUint64, true},
		{math.MaxUint64, 2, 1, 0, false},
		// zero denominator
		{1, 1, 0, 0, false},
	}
	for _, tt := range tests {
		got, ok := MulDiv(tt.a, tt.b, tt.denom)
		assert.Equal(t, tt.ok, ok, "MulDiv(%d,%d,%d)", tt.a, tt.b, tt.denom)
		assert.Equal(t, tt.want, got)
	}
}
