package main

import (
	"context"
	"log"
	"os"

	"notekeeper/internal/buildinfo"
	"notekeeper/internal/server"
	"notekeeper/internal/server/config"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := server.NewApp(ctx, cfg)

	if err != nil {
		log.Printf("%v", err)
		return
	}

	app.Run(ctx)

}
