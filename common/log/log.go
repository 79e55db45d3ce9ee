// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package log 日志相关接口以及函数
package log

import (
	"io"
	"os"
	"sync"

	"github.com/33cn/lottery/types"
	log15 "github.com/ethereum/go-ethereum/log"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger log15 风格的 key/value 日志接口
type Logger = log15.Logger

var (
	mu sync.Mutex
	// 保存日志处理器的引用，方便后续调整日志信息，而不重新初始化
	fileHandler log15.Handler
	fileCloser  io.Closer
	console     io.Writer = colorable.NewColorableStdout()
	useColor    bool      = isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
)

func init() {
	SetLogLevel("error")
}

//SetLogLevel 设置控制台日志输出级别
func SetLogLevel(logLevel string) {
	mu.Lock()
	defer mu.Unlock()
	log15.Root().SetHandler(getConsoleLogHandler(logLevel))
}

//SetFileLog 设置文件日志和控制台日志信息
func SetFileLog(log *types.Log) {
	if log == nil {
		log = &types.Log{LogFile: "logs/lottery.log"}
	}
	if log.LogFile == "" {
		SetLogLevel(log.LogConsoleLevel)
		return
	}
	resetLog(log)
}

// SetOutput 替换控制台输出, 主要用于测试
func SetOutput(w io.Writer, logLevel string) {
	mu.Lock()
	defer mu.Unlock()
	console = w
	useColor = false
	log15.Root().SetHandler(getConsoleLogHandler(logLevel))
}

// Close 关闭文件日志
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	fileHandler = nil
	if fileCloser == nil {
		return nil
	}
	err := fileCloser.Close()
	fileCloser = nil
	return err
}

// 清空原来所有的日志Handler，根据配置文件信息重置文件和控制台日志
func resetLog(log *types.Log) {
	mu.Lock()
	defer mu.Unlock()
	fillDefaultValue(log)
	log15.Root().SetHandler(log15.MultiHandler(getConsoleLogHandler(log.LogConsoleLevel), getFileLogHandler(log)))
}

// 保证默认性况下为error级别，防止打印太多日志
func fillDefaultValue(log *types.Log) {
	if log.Loglevel == "" {
		log.Loglevel = log15.LvlError.String()
	}
	if log.LogConsoleLevel == "" {
		log.LogConsoleLevel = log15.LvlError.String()
	}
}

// 控制台是终端时输出彩色日志, windows 下由 colorable 转换
func getConsoleLogHandler(logLevel string) log15.Handler {
	return log15.LvlFilterHandler(
		getLevel(logLevel),
		log15.StreamHandler(console, log15.TerminalFormat(useColor)),
	)
}

func getFileLogHandler(log *types.Log) log15.Handler {
	if fileHandler != nil {
		return fileHandler
	}

	rotateLogger := &lumberjack.Logger{
		Filename:   log.LogFile,
		MaxSize:    int(log.MaxFileSize),
		MaxBackups: int(log.MaxBackups),
		MaxAge:     int(log.MaxAge),
		LocalTime:  log.LocalTime,
		Compress:   log.Compress,
	}

	fileh := log15.LvlFilterHandler(
		getLevel(log.Loglevel),
		log15.StreamHandler(rotateLogger, log15.LogfmtFormat()),
	)

	// 增加打印调用源文件、方法和代码行的判断
	if log.CallerFile {
		fileh = log15.CallerFileHandler(fileh)
	}
	if log.CallerFunction {
		fileh = log15.CallerFuncHandler(fileh)
	}

	fileHandler = fileh
	fileCloser = rotateLogger
	return fileh
}

func getLevel(lvlString string) log15.Lvl {
	lvl, err := log15.LvlFromString(lvlString)
	if err != nil {
		// 日志级别配置不正确时默认为error级别
		return log15.LvlError
	}
	return lvl
}

//New new
func New(ctx ...interface{}) Logger {
	return log15.Root().New(ctx...)
}
