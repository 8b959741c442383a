package main

import (
	"os"

	"github.com/x-xyz/nftwizard/base/metrics"
)

func main() {
	err := newRootCmd().Execute()
	metrics.Close()
	if err != nil {
		os.Exit(1)
	}
}
