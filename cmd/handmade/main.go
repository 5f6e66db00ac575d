// handmade - 2D collision sandbox
//
// Subcommands:
//
//	run [scene.yaml]    Open a window and simulate the scene
//	check [scene.yaml]  Load the scene headless and print colliding pairs
//	version             Print the version
//
// Controls while running:
//
//	Space  - Pause/resume
//	B      - Toggle bound outlines
//	N      - Single step while paused
//	Esc    - Quit
package main

import (
	"context"
	"os"
	"os/signal"

	"handmade/internal/cli"
)

var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := cli.Execute(ctx, cli.NewRootCommand(version, runGame), version)
	stop()
	os.Exit(code)
}
