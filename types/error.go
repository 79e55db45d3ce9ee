// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import "errors"

var (
	ErrAdminCannotEnter  = errors.New("ErrAdminCannotEnter")
	ErrOnlyAdminSelect   = errors.New("ErrOnlyAdminSelect")
	ErrTransactionFailed = errors.New("ErrTransactionFailed")
	ErrReadFailed        = errors.New("ErrReadFailed")
	ErrActionPending     = errors.New("ErrActionPending")
	ErrInvalidEntryFee   = errors.New("ErrInvalidEntryFee")
	ErrInvalidAddress    = errors.New("ErrInvalidAddress")
	ErrInvalidAmount     = errors.New("ErrInvalidAmount")
	ErrTxReverted        = errors.New("ErrTxReverted")
	ErrNoSigner          = errors.New("ErrNoSigner")
	ErrSignerMismatch    = errors.New("ErrSignerMismatch")
	ErrUnknownAction     = errors.New("ErrUnknownAction")
)
