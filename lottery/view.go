// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lottery

import (
	"sync"

	"github.com/33cn/lottery/types"
)

// ErrorKind 用户可见错误的类别
type ErrorKind int32

// error kinds
const (
	ErrorNone ErrorKind = iota
	ErrorTransaction
	ErrorRoleViolation
)

func (k ErrorKind) String() string {
	switch k {
	case ErrorNone:
		return "none"
	case ErrorTransaction:
		return "transactionFailure"
	case ErrorRoleViolation:
		return "roleViolation"
	}
	return "unknown"
}

// MarshalText json
func (k ErrorKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// ErrorState 最近一次写操作的错误, 只读调用的错误不会出现在这里
type ErrorState struct {
	Kind    ErrorKind `json:"kind"`
	Message string    `json:"message,omitempty"`
}

// None 没有错误
func (e ErrorState) None() bool {
	return e.Kind == ErrorNone
}

// Snapshot 展示层读取的视图, 所有字段都是拷贝
type Snapshot struct {
	Account             types.Account   `json:"account"`
	Role                types.Role      `json:"role"`
	Participants        []types.Account `json:"participants"`
	Balance             Balance         `json:"balance"`
	Error               ErrorState      `json:"error"`
	EnterPending        bool            `json:"enterPending"`
	SelectWinnerPending bool            `json:"selectWinnerPending"`
}

// View 最近一次成功读取的结果, 参与者列表和余额只做整体替换
type View struct {
	mu      sync.RWMutex
	account types.Account
	role    types.Role
	list    []types.Account
	balance Balance
	err     ErrorState
	pending map[types.Action]bool
}

// NewView new
func NewView(account types.Account) *View {
	return &View{
		account: account,
		list:    []types.Account{},
		balance: NewBalance(nil),
		pending: make(map[types.Action]bool),
	}
}

// Snapshot 拷贝当前视图
func (v *View) Snapshot() Snapshot {
	v.mu.RLock()
	defer v.mu.RUnlock()
	list := make([]types.Account, len(v.list))
	copy(list, v.list)
	return Snapshot{
		Account:             v.account,
		Role:                v.role,
		Participants:        list,
		Balance:             v.balance.Copy(),
		Error:               v.err,
		EnterPending:        v.pending[types.ActionEnter],
		SelectWinnerPending: v.pending[types.ActionSelectWinner],
	}
}

// Role 当前角色
func (v *View) Role() types.Role {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.role
}

func (v *View) setRole(role types.Role) {
	v.mu.Lock()
	v.role = role
	v.mu.Unlock()
}

func (v *View) setParticipants(list []types.Account) {
	cp := make([]types.Account, len(list))
	copy(cp, list)
	v.mu.Lock()
	v.list = cp
	v.mu.Unlock()
}

func (v *View) setBalance(b Balance) {
	b = b.Copy()
	v.mu.Lock()
	v.balance = b
	v.mu.Unlock()
}

func (v *View) setError(e ErrorState) {
	v.mu.Lock()
	v.err = e
	v.mu.Unlock()
}

func (v *View) clearError() {
	v.setError(ErrorState{})
}

func (v *View) setPending(action types.Action, pending bool) {
	v.mu.Lock()
	if pending {
		v.pending[action] = true
	} else {
		delete(v.pending, action)
	}
	v.mu.Unlock()
}

// tryPending Idle -> Pending, 已经是 Pending 时返回 false
func (v *View) tryPending(action types.Action) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.pending[action] {
		return false
	}
	v.pending[action] = true
	return true
}
