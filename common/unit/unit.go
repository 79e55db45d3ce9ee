// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package unit wei 与 ether 之间的换算
package unit

import (
	"math/big"

	"github.com/33cn/lottery/types"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// ToEther 将最小单位 wei 转换为展示用的 ether 字符串, nil 视为 0
func ToEther(wei *big.Int) string {
	if wei == nil {
		return "0"
	}
	return decimal.NewFromBigInt(wei, -types.EtherDecimals).String()
}

// ParseEther 将 ether 字符串转换为 wei
func ParseEther(s string) (*big.Int, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil, errors.Wrapf(types.ErrInvalidAmount, "parse %q: %v", s, err)
	}
	if d.IsNegative() {
		return nil, errors.Wrapf(types.ErrInvalidAmount, "negative amount %s", s)
	}
	wei := d.Shift(types.EtherDecimals)
	if !wei.Equal(wei.Truncate(0)) {
		return nil, errors.Wrapf(types.ErrInvalidAmount, "%s is below 1 wei precision", s)
	}
	return wei.BigInt(), nil
}

// EntryFee 票价, 每次返回新的副本
func EntryFee() *big.Int {
	return big.NewInt(types.EntryFeeWei)
}

// IsEntryFee 金额是否等于票价
func IsEntryFee(amount *big.Int) bool {
	return amount != nil && amount.Cmp(EntryFee()) == 0
}
