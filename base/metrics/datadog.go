package metrics

import (
	"fmt"
	"sync"

	"github.com/DataDog/datadog-go/statsd"
	"github.com/spf13/viper"

	"github.com/x-xyz/nftwizard/base/log"
)

// DdPort is the statsd port of the datadog agent
var DdPort = 8125

type statsCli interface {
	Gauge(name string, value float64, tags []string, rate float64) error
	Count(name string, value int64, tags []string, rate float64) error
	Histogram(name string, value float64, tags []string, rate float64) error
	TimeInMilliseconds(name string, value float64, tags []string, rate float64) error
	Close() error
}

var (
	clientMu sync.Mutex
	client   statsCli
)

// globalTags are attached to every metric by the client itself
func globalTags() []string {
	tags := []string{"network:" + viper.GetString("activeNetwork")}
	if env := viper.GetString("env_name"); len(env) > 0 {
		tags = append(tags, "env:"+env)
	}
	return tags
}

func newClient() statsCli {
	host := viper.GetString("datadog_host")
	if len(host) == 0 {
		return &LogClient{}
	}

	addr := fmt.Sprintf("%s:%d", host, DdPort)
	namespace := viper.GetString("app_name")
	if len(namespace) == 0 {
		namespace = "nftwizard"
	}
	cli, err := statsd.New(addr,
		statsd.WithNamespace(namespace+"."),
		statsd.WithTags(globalTags()),
	)
	if err != nil {
		log.Log().WithFields(log.Fields{"addr": addr, "err": err}).Warn("can't talk to datadog agent, metrics go to log")
		return &LogClient{}
	}
	return cli
}

// current lazily builds the process-wide client, so config is read after the cli parsed it
func current() statsCli {
	clientMu.Lock()
	defer clientMu.Unlock()
	if client == nil {
		client = newClient()
	}
	return client
}

// Close flushes buffered metrics. The cli calls it before exiting.
func Close() {
	clientMu.Lock()
	defer clientMu.Unlock()
	if client == nil {
		return
	}
	if err := client.Close(); err != nil {
		log.Log().WithField("err", err).Warn("statsd.Close failed")
	}
	client = nil
}

func parseTag(tags []string) []string {
	if tags == nil {
		return nil
	}
	if len(tags)%2 != 0 {
		log.Log().WithField("tags", tags).Panic("tag length needs to be multiple of 2")
	}
	arr := make([]string, len(tags)/2)
	for i := 0; i < len(tags); i += 2 {
		arr[i/2] = tags[i] + ":" + tags[i+1]
	}
	return arr
}
