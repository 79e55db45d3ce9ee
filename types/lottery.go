// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import "strings"

// Account 账户地址, 只做比较, 不做修改
type Account = string

// SameAccount 地址比较不区分大小写, 不同层返回的地址大小写可能不一致
func SameAccount(a, b Account) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}

// Role 当前账户在合约中的角色
type Role int32

// 角色, 零值为普通参与者
const (
	RoleParticipant Role = iota
	RoleAdministrator
)

func (r Role) String() string {
	switch r {
	case RoleAdministrator:
		return "administrator"
	case RoleParticipant:
		return "participant"
	}
	return "unknown"
}

// MarshalText json 输出时使用角色名称
func (r Role) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// Action 可触发的写操作
type Action int32

// actions
const (
	ActionEnter Action = iota + 1
	ActionSelectWinner
)

func (a Action) String() string {
	switch a {
	case ActionEnter:
		return "enter"
	case ActionSelectWinner:
		return "selectWinner"
	}
	return "unknown"
}

// coin conversation
const (
	// EtherDecimals wei 到 ether 的精度
	EtherDecimals int32 = 18
	// EntryFeeEther 参与一次的票价, 编译期常量, 不从合约读取
	EntryFeeEther = "0.005"
	// EntryFeeWei 5e15 wei
	EntryFeeWei int64 = 5e15
	// CoinSymbol 展示单位
	CoinSymbol = "ether"
)

// 用户可见的错误信息
const (
	MsgTransactionFailed = "Transaction failed. Check your wallet transactions for more details."
	MsgAdminCannotEnter  = "administrator cannot participate"
	MsgOnlyAdminSelect   = "only administrator may select the winner"
)
