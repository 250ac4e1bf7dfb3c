package main

import (
	// Stdlib
	"os"

	// Internal
	"github.com/salsaflow/make-release/app"
	"github.com/salsaflow/make-release/app/appflags"
	"github.com/salsaflow/make-release/errs"
	"github.com/salsaflow/make-release/prompt"
	"github.com/salsaflow/make-release/releases/commands"

	// Vendor
	"gopkg.in/tchap/gocli.v2"
)

const version = "1.0.0"

func main() {
	// Initialise the application.
	release := gocli.NewApp("make-release")
	release.UsageLine = "make-release [-log LEVEL]"
	release.Short = "walk through the release checklist"
	release.Version = version
	release.Long = `
  make-release asks you, one item at a time, whether the manual steps
  of the release process have been taken care of.

  Type Y or y to confirm an item. Anything else stops the release and
  the items confirmed so far are listed in reverse order so that you
  know what needs to be undone.`
	release.Action = run

	// Register global flags.
	appflags.RegisterGlobalFlags(&release.Flags)

	// Run the application.
	release.Run(os.Args[1:])
}

func run(cmd *gocli.Command, args []string) {
	if len(args) != 0 {
		cmd.Usage()
		os.Exit(2)
	}

	app.Init()

	if _, err := commands.Checklist(prompt.Stdio()); err != nil {
		errs.Fatal(err)
	}
}
