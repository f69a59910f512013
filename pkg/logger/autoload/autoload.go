// Package autoload initializes the global logger from the LOG_* environment
// on import:
//
//	import _ "github.com/tanpawarit/telecom-support-agent/pkg/logger/autoload"
package autoload

import (
	configx "github.com/tanpawarit/telecom-support-agent/pkg/config"
	logx "github.com/tanpawarit/telecom-support-agent/pkg/logger"
)

func init() {
	logx.Init(*configx.MustNew[logx.Config]("LOG"))
}
