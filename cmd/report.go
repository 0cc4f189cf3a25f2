package cmd

import (
	"github.com/getsentry/raven-go"

	"github.com/go-imsto/imresize/config"
)

func reportError(err error, tags map[string]string) {
	if config.Current.SentryDSN == "" {
		return
	}
	if e := raven.SetDSN(config.Current.SentryDSN); e != nil {
		logger().Warnw("sentry dsn fail", "err", e)
		return
	}
	if tags == nil {
		tags = map[string]string{}
	}
	tags["ver"] = config.Version
	raven.CaptureErrorAndWait(err, tags)
}
