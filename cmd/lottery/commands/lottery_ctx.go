// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math/big"

	"github.com/33cn/lottery/common/log"
	"github.com/33cn/lottery/lottery"
	"github.com/33cn/lottery/metrics"
	"github.com/33cn/lottery/types"
	"github.com/33cn/lottery/wallet"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var clilog = log.New("module", "lottery.cli")

// ChainBackend ethclient.Client 满足该接口
type ChainBackend interface {
	lottery.EthBackend
	ChainID(ctx context.Context) (*big.Int, error)
	Close()
}

// Dial 连接节点, 测试中可以替换
var Dial = func(ctx context.Context, rawurl string) (ChainBackend, error) {
	client, err := ethclient.DialContext(ctx, rawurl)
	if err != nil {
		return nil, err
	}
	return client, nil
}

// LotteryCtx 一次命令执行需要的配置和连接
type LotteryCtx struct {
	Cfg      *types.Config
	Contract lottery.Contract
	Signer   wallet.Signer
	Recorder *metrics.Recorder

	backend ChainBackend
}

// LoadConfig 读取配置文件并应用命令行参数
func LoadConfig(cmd *cobra.Command) (*types.Config, error) {
	path, _ := cmd.Flags().GetString("conf")
	var cfg *types.Config
	var err error
	if path == "" {
		cfg, err = types.InitCfgString(types.GetDefaultCfgstring())
	} else {
		cfg, err = types.InitCfg(path)
	}
	if err != nil {
		return nil, err
	}
	if rpcAddr, _ := cmd.Flags().GetString("rpc_laddr"); rpcAddr != "" {
		cfg.Chain.RPCAddr = rpcAddr
	}
	if account, _ := cmd.Flags().GetString("account"); account != "" {
		cfg.Wallet.Account = account
	}
	if f := cmd.Flags().Lookup("gate"); f != nil && f.Changed {
		cfg.Gate.Enabled, _ = cmd.Flags().GetBool("gate")
	}
	if err := cfg.Check(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// NewLotteryCtx 连接节点并创建合约访问对象, 没有配置签名私钥时只能做只读调用
func NewLotteryCtx(ctx context.Context, cfg *types.Config) (*LotteryCtx, error) {
	log.SetFileLog(&cfg.Log)
	backend, err := Dial(ctx, cfg.Chain.RPCAddr)
	if err != nil {
		return nil, errors.Wrapf(err, "dial %s", cfg.Chain.RPCAddr)
	}
	chainID := big.NewInt(cfg.Chain.ChainID)
	if cfg.Chain.ChainID == 0 {
		chainID, err = backend.ChainID(ctx)
		if err != nil {
			backend.Close()
			return nil, errors.Wrap(err, "ChainID")
		}
	}

	signer, err := wallet.NewSigner(&cfg.Wallet, chainID)
	if err != nil && errors.Cause(err) != types.ErrNoSigner {
		backend.Close()
		return nil, err
	}
	c, err := lottery.NewEthContract(cfg.Chain.ContractAddr, backend, signer,
		lottery.WithWaitMined(cfg.Chain.WaitMined),
		lottery.WithGasLimit(cfg.Chain.GasLimit))
	if err != nil {
		backend.Close()
		return nil, err
	}

	recorder := metrics.NewRecorder(nil)
	metrics.StartMetrics(ctx, &cfg.Metrics, recorder)
	clilog.Debug("NewLotteryCtx", "rpc", cfg.Chain.RPCAddr, "chainID", chainID, "contract", c.Address(), "signer", signer != nil)
	return &LotteryCtx{
		Cfg:      cfg,
		Contract: c,
		Signer:   signer,
		Recorder: recorder,
		backend:  backend,
	}, nil
}

// Account 当前账户, 优先使用配置, 其次使用签名私钥的地址
func (c *LotteryCtx) Account() (types.Account, error) {
	if c.Cfg.Wallet.Account != "" {
		return c.Cfg.Wallet.Account, nil
	}
	if c.Signer != nil {
		return c.Signer.Account(), nil
	}
	return "", errors.Wrap(types.ErrInvalidAddress, "no account configured")
}

// Gating 命令行 --gate 或者配置 gate.enabled
func (c *LotteryCtx) Gating() lottery.Gating {
	if c.Cfg.Gate.Enabled {
		return lottery.GatingEnabled
	}
	return lottery.GatingDisabled
}

// Session 为当前账户创建会话
func (c *LotteryCtx) Session() (*lottery.Session, error) {
	account, err := c.Account()
	if err != nil {
		return nil, err
	}
	return lottery.NewSession(lottery.SessionConfig{
		Account:  account,
		Contract: c.Contract,
		Gating:   c.Gating(),
		Recorder: c.Recorder,
	})
}

// Client 不需要账户的只读调用
func (c *LotteryCtx) Client() *lottery.Client {
	return lottery.NewClient(c.Contract, c.Recorder)
}

// Close 断开节点连接
func (c *LotteryCtx) Close() {
	if c.backend != nil {
		c.backend.Close()
	}
}

func printJSON(w io.Writer, result interface{}) error {
	data, err := json.MarshalIndent(result, "", "    ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

// runWithCtx 读配置, 建立连接, 执行 fn 并输出结果. 写操作失败时仍输出视图, 同时返回错误
func runWithCtx(cmd *cobra.Command, fn func(context.Context, *LotteryCtx) (interface{}, error)) error {
	cfg, err := LoadConfig(cmd)
	if err != nil {
		return err
	}
	parent := cmd.Context()
	if parent == nil {
		parent = context.Background()
	}
	ctx, cancel := context.WithCancel(parent)
	defer cancel()
	lctx, err := NewLotteryCtx(ctx, cfg)
	if err != nil {
		return err
	}
	defer lctx.Close()

	result, err := fn(ctx, lctx)
	if result != nil {
		if perr := printJSON(cmd.OutOrStdout(), result); perr != nil && err == nil {
			err = perr
		}
	}
	return err
}
