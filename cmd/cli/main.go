package main

import (
	"context"
	"log"
	"os"

	"github.com/tailorapp898-afk/tailorsync/internal/buildinfo"
	"github.com/tailorapp898-afk/tailorsync/internal/client/cli"
	"github.com/tailorapp898-afk/tailorsync/internal/client/config"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := cli.NewApp(cfg)

	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
