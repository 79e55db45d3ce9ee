// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lottery

import (
	"github.com/33cn/lottery/types"
)

// Gating 本地权限检查模式
type Gating int32

// GatingEnabled 在发送交易之前做角色检查; GatingDisabled 不检查, 由合约拒绝
const (
	GatingEnabled Gating = iota
	GatingDisabled
)

func (g Gating) String() string {
	if g == GatingDisabled {
		return "disabled"
	}
	return "enabled"
}

// RoleViolation 本地拒绝, Reason 直接展示给用户
type RoleViolation struct {
	Action types.Action
	Role   types.Role
	Reason string
	err    error
}

func (e *RoleViolation) Error() string {
	return e.Reason
}

// Cause github.com/pkg/errors 使用
func (e *RoleViolation) Cause() error {
	return e.err
}

// Unwrap errors.Is 使用
func (e *RoleViolation) Unwrap() error {
	return e.err
}

// Gate 纯本地检查, 不访问网络
type Gate struct {
	mode Gating
}

// NewGate new
func NewGate(mode Gating) *Gate {
	return &Gate{mode: mode}
}

// Mode 当前模式
func (g *Gate) Mode() Gating {
	return g.mode
}

// Authorize nil 表示允许, 否则返回 *RoleViolation
func (g *Gate) Authorize(action types.Action, role types.Role) error {
	if action != types.ActionEnter && action != types.ActionSelectWinner {
		return types.ErrUnknownAction
	}
	if g.mode == GatingDisabled {
		return nil
	}
	switch {
	case action == types.ActionEnter && role == types.RoleAdministrator:
		return &RoleViolation{Action: action, Role: role, Reason: types.MsgAdminCannotEnter, err: types.ErrAdminCannotEnter}
	case action == types.ActionSelectWinner && role != types.RoleAdministrator:
		return &RoleViolation{Action: action, Role: role, Reason: types.MsgOnlyAdminSelect, err: types.ErrOnlyAdminSelect}
	}
	return nil
}
