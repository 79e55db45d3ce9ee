// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"io/ioutil"
	"strings"

	tml "github.com/BurntSushi/toml"
	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
)

// Config 客户端配置
type Config struct {
	Title   string  `json:"title,omitempty"`
	Log     Log     `json:"log"`
	Chain   Chain   `json:"chain"`
	Wallet  Wallet  `json:"wallet"`
	Gate    Gate    `json:"gate"`
	Metrics Metrics `json:"metrics"`
}

// Log 日志配置
type Log struct {
	// 日志级别，支持debug(dbug)/info/warn/error(eror)/crit
	Loglevel        string `json:"loglevel,omitempty"`
	LogConsoleLevel string `json:"logConsoleLevel,omitempty"`
	// 日志文件名，可带目录，所有生成的日志文件都放到此目录下
	LogFile string `json:"logFile,omitempty"`
	// 单个日志文件的最大值（单位：兆）
	MaxFileSize uint32 `json:"maxFileSize,omitempty"`
	// 最多保存的历史日志文件个数
	MaxBackups uint32 `json:"maxBackups,omitempty"`
	// 最多保存的历史日志消息（单位：天）
	MaxAge uint32 `json:"maxAge,omitempty"`
	// 日志文件名是否使用本地事件（否则使用UTC时间）
	LocalTime bool `json:"localTime,omitempty"`
	// 历史日志文件是否压缩（压缩格式为gz）
	Compress bool `json:"compress,omitempty"`
	// 是否打印调用源文件和行号
	CallerFile bool `json:"callerFile,omitempty"`
	// 是否打印调用方法
	CallerFunction bool `json:"callerFunction,omitempty"`
}

// Chain 节点和合约配置
type Chain struct {
	RPCAddr      string `json:"rpcAddr,omitempty"`
	ContractAddr string `json:"contractAddr,omitempty"`
	// 0 表示从节点查询
	ChainID int64 `json:"chainID,omitempty"`
	// 写操作是否等待回执
	WaitMined bool `json:"waitMined"`
	// 0 表示由节点估算
	GasLimit uint64 `json:"gasLimit,omitempty"`
}

// Wallet 签名配置, PrivateKey 与 KeyStoreFile 二选一
type Wallet struct {
	Account      string `json:"account,omitempty"`
	PrivateKey   string `json:"-"`
	KeyStoreFile string `json:"keyStoreFile,omitempty"`
	Password     string `json:"-"`
}

// Gate 本地权限检查开关
type Gate struct {
	Enabled bool `json:"enabled"`
}

// Metrics 统计配置
type Metrics struct {
	EnableMetrics bool `json:"enableMetrics,omitempty"`
	// 日志输出间隔, 单位秒
	Duration int64 `json:"duration,omitempty"`
}

// NewConfig 默认配置
func NewConfig() *Config {
	return &Config{
		Title: "lottery",
		Log: Log{
			Loglevel:        "info",
			LogConsoleLevel: "error",
			MaxFileSize:     300,
			MaxBackups:      100,
			MaxAge:          28,
			LocalTime:       true,
			Compress:        true,
		},
		Chain: Chain{
			RPCAddr:   "http://localhost:8545",
			WaitMined: true,
		},
		Gate:    Gate{Enabled: true},
		Metrics: Metrics{Duration: 60},
	}
}

// InitCfg 从文件加载配置
func InitCfg(path string) (*Config, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read config %s", path)
	}
	return InitCfgString(string(data))
}

// InitCfgString 在默认配置上覆盖配置字符串中出现的字段
func InitCfgString(cfgstring string) (*Config, error) {
	cfg := NewConfig()
	md, err := tml.Decode(cfgstring, cfg)
	if err != nil {
		return nil, errors.Wrap(err, "decode config")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return nil, errors.Errorf("unknown config keys: %s", strings.Join(keys, ", "))
	}
	if err := cfg.Check(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Check 校验地址格式
func (c *Config) Check() error {
	if c.Chain.ContractAddr != "" && !ethcommon.IsHexAddress(c.Chain.ContractAddr) {
		return errors.Wrapf(ErrInvalidAddress, "contractAddr %s", c.Chain.ContractAddr)
	}
	if c.Wallet.Account != "" && !ethcommon.IsHexAddress(c.Wallet.Account) {
		return errors.Wrapf(ErrInvalidAddress, "account %s", c.Wallet.Account)
	}
	if c.Chain.ChainID < 0 {
		return errors.Errorf("invalid chainID %d", c.Chain.ChainID)
	}
	return nil
}
