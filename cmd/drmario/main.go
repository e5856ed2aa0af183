package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	GlobalFlags `embed:""`

	Version kong.VersionFlag `short:"v" help:"Show version"`
	Console ConsoleCmd       `cmd:"" default:"1" help:"Play the line protocol on stdin/stdout (default)"`
	TUI     TUICmd           `cmd:"tui" help:"Play in the terminal with a drop timer"`
	GUI     GUICmd           `cmd:"gui" help:"Play in a desktop window"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("drmario"),
		kong.Description("Falling-capsule puzzle engine with console, terminal and desktop front ends"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
		kong.Bind(&cli.GlobalFlags),
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
