// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lottery

import (
	"context"
	"math/big"

	"github.com/33cn/lottery/contract"
	"github.com/33cn/lottery/types"
	"github.com/33cn/lottery/wallet"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	ethcommon "github.com/ethereum/go-ethereum/common"
	ethtypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/pkg/errors"
)

// Contract 部署在链上的抽奖合约, 只读调用和写调用都是阻塞的
type Contract interface {
	Admin(ctx context.Context) (types.Account, error)
	Participants(ctx context.Context) ([]types.Account, error)
	Balance(ctx context.Context) (*big.Int, error)
	Participate(ctx context.Context, from types.Account, value *big.Int) error
	SelectWinner(ctx context.Context, from types.Account) error
}

// EthBackend ethclient.Client 满足该接口
type EthBackend interface {
	bind.ContractBackend
	bind.DeployBackend
}

// EthOption 可选参数
type EthOption func(*EthContract)

// WithWaitMined 写调用是否等待回执
func WithWaitMined(wait bool) EthOption {
	return func(c *EthContract) {
		c.waitMined = wait
	}
}

// WithGasLimit 0 表示由节点估算
func WithGasLimit(gas uint64) EthOption {
	return func(c *EthContract) {
		c.gasLimit = gas
	}
}

// EthContract 通过 go-ethereum 绑定访问合约
type EthContract struct {
	address   ethcommon.Address
	binding   *contract.Lottery
	backend   EthBackend
	signer    wallet.Signer
	waitMined bool
	gasLimit  uint64
}

// NewEthContract signer 为 nil 时只能做只读调用
func NewEthContract(address string, backend EthBackend, signer wallet.Signer, opts ...EthOption) (*EthContract, error) {
	if !ethcommon.IsHexAddress(address) {
		return nil, errors.Wrapf(types.ErrInvalidAddress, "contract %s", address)
	}
	addr := ethcommon.HexToAddress(address)
	binding, err := contract.NewLottery(addr, backend)
	if err != nil {
		return nil, errors.Wrap(err, "NewLottery")
	}
	c := &EthContract{
		address:   addr,
		binding:   binding,
		backend:   backend,
		signer:    signer,
		waitMined: true,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Address 合约地址
func (c *EthContract) Address() types.Account {
	return c.address.Hex()
}

// Admin admin()
func (c *EthContract) Admin(ctx context.Context) (types.Account, error) {
	admin, err := c.binding.Admin(&bind.CallOpts{Context: ctx})
	if err != nil {
		return "", err
	}
	return admin.Hex(), nil
}

// Participants getParticipants(), 顺序与链上一致
func (c *EthContract) Participants(ctx context.Context) ([]types.Account, error) {
	addrs, err := c.binding.GetParticipants(&bind.CallOpts{Context: ctx})
	if err != nil {
		return nil, err
	}
	list := make([]types.Account, 0, len(addrs))
	for _, addr := range addrs {
		list = append(list, addr.Hex())
	}
	return list, nil
}

// Balance getContractBalance(), 单位 wei
func (c *EthContract) Balance(ctx context.Context) (*big.Int, error) {
	return c.binding.GetContractBalance(&bind.CallOpts{Context: ctx})
}

// Participate participate(), value 随交易转入合约
func (c *EthContract) Participate(ctx context.Context, from types.Account, value *big.Int) error {
	opts, err := c.transactOpts(ctx, from)
	if err != nil {
		return err
	}
	opts.Value = new(big.Int).Set(value)
	tx, err := c.binding.Participate(opts)
	if err != nil {
		return errors.Wrap(err, "participate")
	}
	return c.wait(ctx, tx)
}

// SelectWinner selectWinner()
func (c *EthContract) SelectWinner(ctx context.Context, from types.Account) error {
	opts, err := c.transactOpts(ctx, from)
	if err != nil {
		return err
	}
	tx, err := c.binding.SelectWinner(opts)
	if err != nil {
		return errors.Wrap(err, "selectWinner")
	}
	return c.wait(ctx, tx)
}

func (c *EthContract) transactOpts(ctx context.Context, from types.Account) (*bind.TransactOpts, error) {
	if c.signer == nil {
		return nil, types.ErrNoSigner
	}
	if !types.SameAccount(from, c.signer.Account()) {
		return nil, errors.Wrapf(types.ErrSignerMismatch, "from %s signer %s", from, c.signer.Account())
	}
	opts, err := c.signer.TransactOpts(ctx)
	if err != nil {
		return nil, err
	}
	opts.GasLimit = c.gasLimit
	return opts, nil
}

func (c *EthContract) wait(ctx context.Context, tx *ethtypes.Transaction) error {
	clog.Debug("transaction sent", "hash", tx.Hash().Hex(), "nonce", tx.Nonce())
	if !c.waitMined {
		return nil
	}
	receipt, err := bind.WaitMined(ctx, c.backend, tx)
	if err != nil {
		return errors.Wrapf(err, "wait %s", tx.Hash().Hex())
	}
	if receipt.Status != ethtypes.ReceiptStatusSuccessful {
		return errors.Wrapf(types.ErrTxReverted, "tx %s block %v", tx.Hash().Hex(), receipt.BlockNumber)
	}
	clog.Debug("transaction mined", "hash", tx.Hash().Hex(), "block", receipt.BlockNumber, "gasUsed", receipt.GasUsed)
	return nil
}
