// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package lottery 抽奖合约的角色判断, 权限检查, 合约调用以及本地视图同步
package lottery

import (
	"context"
	"math/big"
	"time"

	"github.com/33cn/lottery/common/log"
	"github.com/33cn/lottery/common/unit"
	"github.com/33cn/lottery/metrics"
	"github.com/33cn/lottery/types"
	"github.com/pkg/errors"
)

var clog = log.New("module", "lottery.client")

// Balance 合约余额, Wei 为链上原始值, Ether 为展示值
type Balance struct {
	Wei   *big.Int `json:"wei"`
	Ether string   `json:"ether"`
}

// NewBalance 由 wei 构造, nil 视为 0
func NewBalance(wei *big.Int) Balance {
	if wei == nil {
		wei = new(big.Int)
	}
	return Balance{Wei: new(big.Int).Set(wei), Ether: unit.ToEther(wei)}
}

// Copy 深拷贝
func (b Balance) Copy() Balance {
	return NewBalance(b.Wei)
}

// Client 合约调用, 统一返回结果或者分类后的错误, 不做重试
type Client struct {
	contract Contract
	recorder *metrics.Recorder
}

// NewClient recorder 可以为 nil
func NewClient(contract Contract, recorder *metrics.Recorder) *Client {
	return &Client{contract: contract, recorder: recorder}
}

// Enter 支付票价参与, fee 必须等于票价; 任何失败都归为 ErrTransactionFailed
func (c *Client) Enter(ctx context.Context, account types.Account, fee *big.Int) error {
	start := time.Now()
	err := c.enter(ctx, account, fee)
	c.recorder.Observe("enter", start, err)
	if err != nil {
		clog.Error("Enter", "account", account, "err", err)
		return errors.Wrapf(types.ErrTransactionFailed, "enter: %v", err)
	}
	clog.Info("Enter", "account", account, "fee", unit.ToEther(fee))
	return nil
}

func (c *Client) enter(ctx context.Context, account types.Account, fee *big.Int) error {
	if !unit.IsEntryFee(fee) {
		return errors.Wrapf(types.ErrInvalidEntryFee, "fee %s want %s", unit.ToEther(fee), types.EntryFeeEther)
	}
	return protect(func() error {
		return c.contract.Participate(ctx, account, fee)
	})
}

// SelectWinner 开奖, 合约只允许管理员调用; 任何失败都归为 ErrTransactionFailed
func (c *Client) SelectWinner(ctx context.Context, account types.Account) error {
	start := time.Now()
	err := protect(func() error {
		return c.contract.SelectWinner(ctx, account)
	})
	c.recorder.Observe("selectWinner", start, err)
	if err != nil {
		clog.Error("SelectWinner", "account", account, "err", err)
		return errors.Wrapf(types.ErrTransactionFailed, "selectWinner: %v", err)
	}
	clog.Info("SelectWinner", "account", account)
	return nil
}

// ListParticipants 只读, 每次都是完整的快照
func (c *Client) ListParticipants(ctx context.Context) ([]types.Account, error) {
	var list []types.Account
	start := time.Now()
	err := protect(func() (err error) {
		list, err = c.contract.Participants(ctx)
		return err
	})
	c.recorder.Observe("read.participants", start, err)
	if err != nil {
		return nil, errors.Wrapf(types.ErrReadFailed, "getParticipants: %v", err)
	}
	out := make([]types.Account, len(list))
	copy(out, list)
	return out, nil
}

// ReadBalance 只读, 返回值已换算为展示单位
func (c *Client) ReadBalance(ctx context.Context) (Balance, error) {
	var wei *big.Int
	start := time.Now()
	err := protect(func() (err error) {
		wei, err = c.contract.Balance(ctx)
		return err
	})
	if err == nil && wei != nil && wei.Sign() < 0 {
		err = errors.Wrapf(types.ErrInvalidAmount, "negative balance %s", wei)
	}
	c.recorder.Observe("read.balance", start, err)
	if err != nil {
		return Balance{}, errors.Wrapf(types.ErrReadFailed, "getContractBalance: %v", err)
	}
	return NewBalance(wei), nil
}

// ReadAdmin 只读, 合约部署时设置的管理员地址
func (c *Client) ReadAdmin(ctx context.Context) (types.Account, error) {
	var admin types.Account
	start := time.Now()
	err := protect(func() (err error) {
		admin, err = c.contract.Admin(ctx)
		return err
	})
	c.recorder.Observe("read.admin", start, err)
	if err != nil {
		return "", errors.Wrapf(types.ErrReadFailed, "admin: %v", err)
	}
	return admin, nil
}

// protect 把合约层的 panic 转换为错误返回
func protect(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("panic: %v", r)
		}
	}()
	return fn()
}

// IsTransactionFailure 写调用失败
func IsTransactionFailure(err error) bool {
	return errors.Cause(err) == types.ErrTransactionFailed
}

// IsReadFailure 只读调用失败
func IsReadFailure(err error) bool {
	return errors.Cause(err) == types.ErrReadFailed
}
