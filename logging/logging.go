package logging

import "github.com/sirupsen/logrus"

var log = logrus.StandardLogger().WithField("module", "doc-signer")

// Log returns a logger entry scoped to the doc-signer module
func Log() *logrus.Entry {
	return log
}
