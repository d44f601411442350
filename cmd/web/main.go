package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/formsclient/internal/client/config"
	"github.com/dmitrijs2005/formsclient/internal/client/web"
)

func main() {

	ctx := context.Background()
	cfg, err := config.LoadConfig(os.Args[1:])
	if err != nil {
		log.Fatalf("%v", err)
	}

	app, err := web.NewApp(cfg)
	if err != nil {
		log.Printf("%v", err)
		return
	}
	defer app.Close()

	if err := app.Run(ctx); err != nil {
		log.Printf("%v", err)
	}

}
