package appflags

import (
	// Stdlib
	"flag"
	"strings"

	// Internal
	flags "github.com/salsaflow/make-release/flag"
	"github.com/salsaflow/make-release/log"
)

var FlagLog = flags.NewStringEnumFlag(log.LevelStrings(), log.MustLevelToString(log.Info))

func RegisterGlobalFlags(flags *flag.FlagSet) {
	flags.Var(FlagLog, "log",
		"set logging verbosity; {"+strings.Join(log.LevelStrings(), "|")+"}")
}
