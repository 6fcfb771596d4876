package sulidd

import (
	"github.com/sulidio/sulid/internal/lg"
)

type Logger lg.Logger

func (s *SULIDd) logf(level lg.LogLevel, f string, args ...interface{}) {
	lg.Logf(s.opts.Logger, s.opts.logLevel, level, f, args...)
}
