// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

var cfgstring = `
Title="lottery"

[log]
# 日志级别，支持debug(dbug)/info/warn/error(eror)/crit
loglevel = "info"
logConsoleLevel = "error"
# 日志文件名，可带目录，所有生成的日志文件都放到此目录下
logFile = "logs/lottery.log"
# 单个日志文件的最大值（单位：兆）
maxFileSize = 300
# 最多保存的历史日志文件个数
maxBackups = 100
# 最多保存的历史日志消息（单位：天）
maxAge = 28
# 日志文件名是否使用本地事件（否则使用UTC时间）
localTime = true
# 历史日志文件是否压缩（压缩格式为gz）
compress = true
# 是否打印调用源文件和行号
callerFile = false
# 是否打印调用方法
callerFunction = false

[chain]
rpcAddr = "http://localhost:8545"
contractAddr = "0xa259a7B95f7FF9515095a5DB39C5E45C0a9947c5"
# 0 表示从节点查询
chainID = 0
waitMined = true
gasLimit = 0

[wallet]
# 与 privateKey 或 keyStoreFile 对应的地址, 为空时由签名私钥推导
account = ""
privateKey = ""
keyStoreFile = ""
password = ""

[gate]
# 关闭后不做本地角色检查, 由合约拒绝
enabled = true

[metrics]
enableMetrics = false
duration = 60
`

// GetDefaultCfgstring 获取默认配置
func GetDefaultCfgstring() string {
	return cfgstring
}
