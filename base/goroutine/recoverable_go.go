package goroutine

import (
	"runtime/debug"

	"github.com/x-xyz/nftwizard/base/log"
)

type PanicEvent struct {
	Panic interface{}
	Stack []byte
}

type options struct {
	logger         log.Logger
	afterRecovered func(panic interface{}, stack []byte)
}

type Option func(*options)

// WithLogger reports the recovered panic through l instead of the package logger
func WithLogger(l log.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithAfterRecovered runs f after a panic was logged, before the event is delivered
func WithAfterRecovered(f func(panic interface{}, stack []byte)) Option {
	return func(o *options) {
		o.afterRecovered = f
	}
}

// RecoverableGo runs f in a goroutine. The returned channel receives the panic, if any,
// and is closed otherwise.
func RecoverableGo(f func(), opts ...Option) <-chan *PanicEvent {
	o := options{logger: log.Log()}
	for _, opt := range opts {
		opt(&o)
	}

	panicChan := make(chan *PanicEvent, 1)
	go func() {
		defer func() {
			p := recover()
			if p == nil {
				close(panicChan)
				return
			}

			stack := debug.Stack()
			o.logger.WithFields(log.Fields{
				"err":   p,
				"stack": string(stack),
			}).Error("panic")
			if o.afterRecovered != nil {
				o.afterRecovered(p, stack)
			}
			panicChan <- &PanicEvent{p, stack}
		}()

		f()
	}()
	return panicChan
}
