// Command nearfixctl runs operator tasks against a marketplace deployment.
package main

import (
	"os"

	"github.com/sirupsen/logrus"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logrus.WithError(err).Error("nearfixctl failed")
		os.Exit(1)
	}
}
