// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wallet

import (
	"context"
	"io"
	"math/big"
	"os"
	"strings"

	lotterylog "github.com/33cn/lottery/common/log"
	"github.com/33cn/lottery/types"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"
)

var walletlog = lotterylog.New("module", "lottery.wallet")

// Signer 为当前账户提供交易签名参数
type Signer interface {
	Account() types.Account
	TransactOpts(ctx context.Context) (*bind.TransactOpts, error)
}

type keySigner struct {
	opts *bind.TransactOpts
}

// NewKeySigner 使用十六进制私钥签名
func NewKeySigner(hexKey string, chainID *big.Int) (Signer, error) {
	key, err := crypto.HexToECDSA(strings.TrimPrefix(strings.TrimSpace(hexKey), "0x"))
	if err != nil {
		return nil, errors.Wrap(err, "HexToECDSA")
	}
	opts, err := bind.NewKeyedTransactorWithChainID(key, chainID)
	if err != nil {
		return nil, errors.Wrap(err, "NewKeyedTransactorWithChainID")
	}
	return &keySigner{opts: opts}, nil
}

// NewKeyStoreSigner 使用 keystore json 文件签名
func NewKeyStoreSigner(keyjson io.Reader, password string, chainID *big.Int) (Signer, error) {
	opts, err := bind.NewTransactorWithChainID(keyjson, password, chainID)
	if err != nil {
		return nil, errors.Wrap(err, "NewTransactorWithChainID")
	}
	return &keySigner{opts: opts}, nil
}

// NewSigner 根据配置选择私钥或 keystore, 配置了 Account 时必须与签名地址一致
func NewSigner(cfg *types.Wallet, chainID *big.Int) (Signer, error) {
	var (
		signer Signer
		err    error
	)
	switch {
	case cfg == nil:
		return nil, types.ErrNoSigner
	case cfg.PrivateKey != "":
		signer, err = NewKeySigner(cfg.PrivateKey, chainID)
	case cfg.KeyStoreFile != "":
		var f *os.File
		f, err = os.Open(cfg.KeyStoreFile)
		if err != nil {
			return nil, errors.Wrapf(err, "open keystore %s", cfg.KeyStoreFile)
		}
		defer f.Close()
		signer, err = NewKeyStoreSigner(f, cfg.Password, chainID)
	default:
		return nil, types.ErrNoSigner
	}
	if err != nil {
		return nil, err
	}
	if cfg.Account != "" && !types.SameAccount(cfg.Account, signer.Account()) {
		walletlog.Error("NewSigner", "account", cfg.Account, "signer", signer.Account())
		return nil, errors.Wrapf(types.ErrSignerMismatch, "account %s signer %s", cfg.Account, signer.Account())
	}
	return signer, nil
}

func (s *keySigner) Account() types.Account {
	return s.opts.From.Hex()
}

// TransactOpts 每次返回副本, 调用方可以修改 Value 等字段
func (s *keySigner) TransactOpts(ctx context.Context) (*bind.TransactOpts, error) {
	opts := *s.opts
	opts.Context = ctx
	return &opts, nil
}
