// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package metrics 合约调用的统计
package metrics

import (
	"context"
	"time"

	lotterylog "github.com/33cn/lottery/common/log"
	"github.com/33cn/lottery/types"
	go_metrics "github.com/rcrowley/go-metrics"
)

var (
	log = lotterylog.New("module", "lottery.metrics")
)

// Namespace 所有指标名的前缀
var Namespace = "lottery"

// Recorder 记录每个操作的成功失败次数和耗时, nil Recorder 不做任何记录
type Recorder struct {
	registry go_metrics.Registry
}

// NewRecorder registry 为 nil 时使用 go-metrics 默认 registry
func NewRecorder(registry go_metrics.Registry) *Recorder {
	if registry == nil {
		registry = go_metrics.DefaultRegistry
	}
	return &Recorder{registry: registry}
}

// Registry 底层 registry
func (r *Recorder) Registry() go_metrics.Registry {
	if r == nil {
		return nil
	}
	return r.registry
}

// Observe 记录一次操作结果
func (r *Recorder) Observe(op string, start time.Time, err error) {
	if r == nil {
		return
	}
	go_metrics.GetOrRegisterTimer(Name(op, "time"), r.registry).UpdateSince(start)
	if err != nil {
		go_metrics.GetOrRegisterCounter(Name(op, "fail"), r.registry).Inc(1)
		return
	}
	go_metrics.GetOrRegisterCounter(Name(op, "ok"), r.registry).Inc(1)
}

// Mark 记录一次没有耗时的事件, 例如本地拒绝
func (r *Recorder) Mark(op, event string) {
	if r == nil {
		return
	}
	go_metrics.GetOrRegisterCounter(Name(op, event), r.registry).Inc(1)
}

// Count 读取计数器
func (r *Recorder) Count(op, event string) int64 {
	if r == nil {
		return 0
	}
	c, ok := r.registry.Get(Name(op, event)).(go_metrics.Counter)
	if !ok {
		return 0
	}
	return c.Count()
}

// Name 指标名 lottery.<op>.<event>
func Name(op, event string) string {
	return Namespace + "." + op + "." + event
}

//StartMetrics 根据配置文件相关参数启动统计输出, ctx 结束时退出
func StartMetrics(ctx context.Context, cfg *types.Metrics, r *Recorder) {
	if cfg == nil || !cfg.EnableMetrics || r == nil {
		log.Info("Metrics data is not enabled to emit")
		return
	}
	duration := time.Duration(cfg.Duration) * time.Second
	if duration <= 0 {
		duration = time.Minute
	}
	log.Info("StartMetrics with log reporter", "duration", duration)
	go report(ctx, r.registry, duration)
}

func report(ctx context.Context, registry go_metrics.Registry, duration time.Duration) {
	ticker := time.NewTicker(duration)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			emit(registry)
		}
	}
}

func emit(registry go_metrics.Registry) {
	registry.Each(func(name string, i interface{}) {
		switch m := i.(type) {
		case go_metrics.Counter:
			log.Info("metrics", "name", name, "count", m.Count())
		case go_metrics.Timer:
			t := m.Snapshot()
			log.Info("metrics", "name", name, "count", t.Count(),
				"mean", time.Duration(t.Mean()), "max", time.Duration(t.Max()))
		}
	})
}
