// Copyright (c) 2025 The EdgeAI developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package errcode defines the error taxonomy surfaced to instruction
// callers. Every fallible step of a handler aborts with one of these
// errors; the runtime reverts the whole instruction and reports the
// numeric code plus label to the external caller.
package errcode

import "errors"

// Kind groups codes into the coarse taxonomy.
type Kind uint8

const (
	KindUnauthorized Kind = iota + 1
	KindValidation
	KindState
	KindArithmetic
)

// Code numeric error code reported to the caller.
type Code uint32

const (
	CodeUnauthorized Code = 6000 + iota
	CodeInvalidDuration
	CodeSubscriptionActive
	CodeInsufficientFunds
	CodeInvalidAmount
	CodeOverflow
	CodeVaultNotInitialized
	CodeInvalidAsset
	CodeAlreadyExists
	CodeNotInitialized
	CodeRecordMismatch
)

// Error carries the code and a short human-readable label.
type Error struct {
	kind Kind
	code Code
	msg  string
}

func New(kind Kind, code Code, msg string) *Error {
	return &Error{kind: kind, code: code, msg: msg}
}

func (e *Error) Error() string { return e.msg }

// Code returns the numeric code.
func (e *Error) Code() Code { return e.code }

// Kind returns the taxonomy group.
func (e *Error) Kind() Kind { return e.kind }

var (
	ErrUnauthorized        = New(KindUnauthorized, CodeUnauthorized, "unauthorized: caller is not the required authority")
	ErrInvalidDuration     = New(KindValidation, CodeInvalidDuration, "invalid subscription duration")
	ErrInvalidAmount       = New(KindValidation, CodeInvalidAmount, "invalid amount")
	ErrSubscriptionActive  = New(KindState, CodeSubscriptionActive, "subscription already active")
	ErrInsufficientFunds   = New(KindState, CodeInsufficientFunds, "insufficient funds")
	ErrVaultNotInitialized = New(KindState, CodeVaultNotInitialized, "staking vault not initialized")
	ErrInvalidAsset        = New(KindState, CodeInvalidAsset, "invalid asset identity")
	ErrAlreadyExists       = New(KindState, CodeAlreadyExists, "record already exists")
	ErrNotInitialized      = New(KindState, CodeNotInitialized, "record not initialized")
	ErrRecordMismatch      = New(KindState, CodeRecordMismatch, "record does not match its derived address")
	ErrOverflow            = New(KindArithmetic, CodeOverflow, "arithmetic overflow")
)

// Is reports whether err belongs to the taxonomy.
func Is(err error) bool {
	var e *Error
	return errors.As(err, &e)
}

// CodeOf extracts the numeric code, zero when err is outside the
// taxonomy.
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.code
	}
	return 0
}

// KindOf extracts the taxonomy group, zero when err is outside the
// taxonomy.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.kind
	}
	return 0
}
