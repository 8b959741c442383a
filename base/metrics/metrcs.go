/*
Package metrics records counters and timings to a datadog agent, or to the debug log when
datadog_host is empty. Naming convention:
- Internal process time: *.time
- Error: *.err
- Warning: *.warn
Tags are passed as key, value pairs.
*/
package metrics

import (
	"strings"
	"time"

	"github.com/x-xyz/nftwizard/base/log"
)

// Ender provides interface for BumpTime
type Ender interface {
	End()
}

// Service provides interface for metrics
type Service interface {
	BumpAvg(key string, val float64, tags ...string)
	BumpSum(key string, val float64, tags ...string)
	BumpHistogram(key string, val float64, tags ...string)

	BumpTime(key string, tags ...string) Ender
}

const sampleRate = 1.0

// New creates a metric client prefixing every key with pkgName
func New(pkgName string) Service {
	return &Metrics{pkgName: pkgName}
}

type Metrics struct {
	pkgName string
}

// record runs fn against the shared client. A bad tag list must not take the caller down,
// so panics are turned into a <typ>.panic counter.
func (mt *Metrics) record(typ, key string, tags []string, fn func(cli statsCli, name string, tags []string) error) {
	name := mt.pkgName + "." + key
	defer func() {
		if r := recover(); r != nil {
			_ = current().Count(typ+".panic", 1, []string{"tag:" + name + "#" + strings.Join(tags, "#")}, sampleRate)
		}
	}()
	if err := fn(current(), name, parseTag(tags)); err != nil {
		log.Log().WithFields(log.Fields{"err": err, "key": name, "type": typ}).Error("Bump fail")
	}
}

// BumpAvg bumps the average for the given key, as a gauge
func (mt *Metrics) BumpAvg(key string, val float64, tags ...string) {
	mt.record("bumpavg", key, tags, func(cli statsCli, name string, tags []string) error {
		return cli.Gauge(name, val, tags, sampleRate)
	})
}

// BumpSum bumps the sum for the given key.
func (mt *Metrics) BumpSum(key string, val float64, tags ...string) {
	mt.record("bumpsum", key, tags, func(cli statsCli, name string, tags []string) error {
		return cli.Count(name, int64(val), tags, sampleRate)
	})
}

func (mt *Metrics) BumpHistogram(key string, val float64, tags ...string) {
	mt.record("bumphistogram", key, tags, func(cli statsCli, name string, tags []string) error {
		return cli.Histogram(name, val, tags, sampleRate)
	})
}

// BumpTime starts a timer, End() records it:
//
//	defer s.BumpTime("submit.time").End()
func (mt *Metrics) BumpTime(key string, tags ...string) Ender {
	return &timeTracker{mt: mt, key: key, tags: tags, start: time.Now()}
}

type timeTracker struct {
	mt    *Metrics
	key   string
	tags  []string
	start time.Time
}

func (t *timeTracker) End() {
	dur := float64(time.Since(t.start)) / float64(time.Millisecond)
	t.mt.record("bumptime", t.key, t.tags, func(cli statsCli, name string, tags []string) error {
		return cli.TimeInMilliseconds(name, dur, tags, sampleRate)
	})
}
