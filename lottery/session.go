// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lottery

import (
	"context"
	"sync"

	"github.com/33cn/lottery/common/log"
	"github.com/33cn/lottery/common/unit"
	"github.com/33cn/lottery/metrics"
	"github.com/33cn/lottery/types"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// SessionConfig 会话参数, 当前账户由外部钱包提供
type SessionConfig struct {
	Account  types.Account
	Contract Contract
	Gating   Gating
	Recorder *metrics.Recorder
}

// Session 一个账户对一个合约的交互会话
type Session struct {
	account  types.Account
	client   *Client
	resolver *RoleResolver
	gate     *Gate
	view     *View
	recorder *metrics.Recorder
	log      log.Logger
}

// NewSession new
func NewSession(cfg SessionConfig) (*Session, error) {
	if cfg.Contract == nil {
		return nil, errors.New("nil contract")
	}
	if cfg.Account == "" {
		return nil, errors.Wrap(types.ErrInvalidAddress, "empty account")
	}
	client := NewClient(cfg.Contract, cfg.Recorder)
	return &Session{
		account:  cfg.Account,
		client:   client,
		resolver: NewRoleResolver(client),
		gate:     NewGate(cfg.Gating),
		view:     NewView(cfg.Account),
		recorder: cfg.Recorder,
		log:      log.New("module", "lottery.session", "account", cfg.Account),
	}, nil
}

// Account 当前账户
func (s *Session) Account() types.Account {
	return s.account
}

// Gate 权限检查
func (s *Session) Gate() *Gate {
	return s.gate
}

// Snapshot 当前视图
func (s *Session) Snapshot() Snapshot {
	return s.view.Snapshot()
}

// Load 会话开始时调用: 判断角色, 读取参与者和余额, 三个只读调用并发执行
func (s *Session) Load(ctx context.Context) Snapshot {
	var wg sync.WaitGroup
	wg.Add(3)
	go func() {
		defer wg.Done()
		s.ResolveRole(ctx)
	}()
	go func() {
		defer wg.Done()
		s.refreshParticipants(ctx)
	}()
	go func() {
		defer wg.Done()
		s.refreshBalance(ctx)
	}()
	wg.Wait()
	return s.view.Snapshot()
}

// ResolveRole 重新判断角色. 会话内不会自动感知账户切换, 由调用方决定何时重新调用
func (s *Session) ResolveRole(ctx context.Context) types.Role {
	role := s.resolver.Resolve(ctx, s.account)
	s.view.setRole(role)
	s.log.Debug("ResolveRole", "role", role)
	return role
}

// Refresh 重新读取参与者和余额, 读取失败只记录日志, 保留之前的快照
func (s *Session) Refresh(ctx context.Context) Snapshot {
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		s.refreshParticipants(ctx)
	}()
	go func() {
		defer wg.Done()
		s.refreshBalance(ctx)
	}()
	wg.Wait()
	return s.view.Snapshot()
}

func (s *Session) refreshParticipants(ctx context.Context) {
	list, err := s.client.ListParticipants(ctx)
	if err != nil {
		s.log.Error("refreshParticipants", "err", err)
		return
	}
	s.view.setParticipants(list)
}

func (s *Session) refreshBalance(ctx context.Context) {
	balance, err := s.client.ReadBalance(ctx)
	if err != nil {
		s.log.Error("refreshBalance", "err", err)
		return
	}
	s.view.setBalance(balance)
}

// Enter 以票价参与. 成功后只重新读取参与者列表
func (s *Session) Enter(ctx context.Context) error {
	return s.trigger(ctx, types.ActionEnter,
		func(ctx context.Context) error {
			return s.client.Enter(ctx, s.account, unit.EntryFee())
		},
		s.refreshParticipants,
	)
}

// SelectWinner 开奖. 成功后重新读取参与者列表和余额
func (s *Session) SelectWinner(ctx context.Context) error {
	return s.trigger(ctx, types.ActionSelectWinner,
		func(ctx context.Context) error {
			return s.client.SelectWinner(ctx, s.account)
		},
		func(ctx context.Context) {
			s.Refresh(ctx)
		},
	)
}

// trigger 写操作的公共流程: 防重复提交, 清除错误, 权限检查, 调用合约, 成功后同步视图
func (s *Session) trigger(ctx context.Context, action types.Action, call func(context.Context) error, reconcile func(context.Context)) error {
	if !s.view.tryPending(action) {
		s.recorder.Mark(action.String(), "pending")
		return errors.Wrapf(types.ErrActionPending, "%s", action)
	}
	defer s.view.setPending(action, false)

	s.view.clearError()
	alog := s.log.New("action", action.String(), "attempt", uuid.New().String())

	if err := s.gate.Authorize(action, s.view.Role()); err != nil {
		s.recorder.Mark(action.String(), "denied")
		if rv, ok := err.(*RoleViolation); ok {
			s.view.setError(ErrorState{Kind: ErrorRoleViolation, Message: rv.Reason})
		}
		alog.Info("action denied", "err", err)
		return err
	}

	if err := call(ctx); err != nil {
		s.view.setError(ErrorState{Kind: ErrorTransaction, Message: types.MsgTransactionFailed})
		alog.Error("action failed", "err", err)
		return err
	}
	alog.Info("action succeeded")
	reconcile(ctx)
	return nil
}
