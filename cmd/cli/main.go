package main

import (
	"context"
	"fmt"
	"os"

	"notekeeper/internal/buildinfo"
	"notekeeper/internal/client/cli"
	"notekeeper/internal/client/config"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	app := cli.NewApp(cfg)

	fmt.Println("Notekeeper CLI (type 'help' for commands)")
	app.Run(ctx)

}
