package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var cli struct {
		Run    RunCmd    `kong:"cmd,default='1',help='Shows onboarding if it has not been completed.'"`
		Status StatusCmd `kong:"cmd,help='Shows the persisted onboarding record.'"`
		Reset  ResetCmd  `kong:"cmd,help='Clears the persisted onboarding record so onboarding shows again.'"`
	}

	parser := kong.Must(&cli,
		kong.Description("Runs the first-launch onboarding flow."),
		kong.BindTo(ctx, (*context.Context)(nil)),
		kong.UsageOnError())

	app, parseErr := parser.Parse(os.Args[1:])
	parser.FatalIfErrorf(parseErr)

	appErr := app.Run()
	app.FatalIfErrorf(appErr)
}
