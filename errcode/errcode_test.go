// Copyright (c) 2025 The EdgeAI developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package errcode_test

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"github.com/edgeai-labs/edgeledger/errcode"
)

func TestClassification(t *testing.T) {
	assert.True(t, errcode.Is(errcode.ErrUnauthorized))
	assert.False(t, errcode.Is(errors.New("plain")))

	assert.Equal(t, errcode.CodeUnauthorized, errcode.CodeOf(errcode.ErrUnauthorized))
	assert.Equal(t, errcode.KindUnauthorized, errcode.KindOf(errcode.ErrUnauthorized))
	assert.Equal(t, errcode.Code(0), errcode.CodeOf(errors.New("plain")))
	assert.Equal(t, errcode.Kind(0), errcode.KindOf(errors.New("plain")))

	// classification survives wrapping
	wrapped := errors.Wrap(errcode.ErrOverflow, "stake")
	assert.True(t, errcode.Is(wrapped))
	assert.Equal(t, errcode.CodeOverflow, errcode.CodeOf(wrapped))
	assert.Equal(t, errcode.KindArithmetic, errcode.KindOf(wrapped))
	assert.ErrorIs(t, wrapped, errcode.ErrOverflow)
}

func TestCodesAreDistinct(t *testing.T) {
	all := []*errcode.Error{
		errcode.ErrUnauthorized,
		errcode.ErrInvalidDuration,
		errcode.ErrInvalidAmount,
		errcode.ErrSubscriptionActive,
		errcode.ErrInsufficientFunds,
		errcode.ErrVaultNotInitialized,
		errcode.ErrInvalidAsset,
		errcode.ErrAlreadyExists,
		errcode.ErrNotInitialized,
		errcode.ErrRecordMismatch,
		errcode.ErrOverflow,
	}
	seen := make(map[errcode.Code]bool)
	for _, e := range all {
		assert.GreaterOrEqual(t, uint32(e.Code()), uint32(6000))
		assert.False(t, seen[e.Code()], "duplicate code %d", e.Code())
		seen[e.Code()] = true
	}
}
