package app

import (
	// Stdlib
	"os"

	// Internal
	"github.com/salsaflow/make-release/app/appflags"
	"github.com/salsaflow/make-release/log"

	// Vendor
	"golang.org/x/term"
)

// Init applies the global flags. It is to be called from command actions,
// after the flags have been parsed.
func Init() {
	log.SetV(log.MustStringToLevel(appflags.FlagLog.Value()))

	if !term.IsTerminal(int(os.Stderr.Fd())) {
		log.DisableColor()
	}
}
