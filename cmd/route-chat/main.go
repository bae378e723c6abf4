package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"

	routechat "github.com/theoremus-urban-solutions/route-chat"
	"github.com/theoremus-urban-solutions/route-chat/catalog"
	"github.com/theoremus-urban-solutions/route-chat/config"
)

func main() {
	configPath := flag.String("config", "", "configuration file (defaults to config.yml)")
	dataset := flag.String("dataset", "", "route dataset CSV path (overrides config)")
	port := flag.Int("port", 0, "listen port (overrides config)")
	ask := flag.String("ask", "", "answer one message on stdout and exit instead of serving")
	flag.Parse()

	routechat.InitLogging()

	var err error
	if *configPath != "" {
		err = config.LoadAppConfigFrom(*configPath)
	} else {
		err = config.LoadAppConfig()
	}
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if *dataset != "" {
		config.Config.Dataset.Path = *dataset
		config.Config.Dataset.URL = ""
	}
	if *port > 0 {
		config.Config.Server.Port = *port
	}

	cat, err := loadCatalog(config.Config.Dataset)
	if err != nil {
		log.Fatalf("dataset: %v", err)
	}

	srv := routechat.NewServer(config.Config, cat)

	if *ask != "" {
		resp := srv.Answer(context.Background(), *ask)
		buf, err := json.MarshalIndent(resp, "", "  ")
		if err != nil {
			log.Fatalf("encode answer: %v", err)
		}
		fmt.Println(string(buf))
		return
	}

	srv.Start()
	srv.HandleGracefulShutdown()
}

func loadCatalog(ds config.DatasetConfig) (*catalog.Catalog, error) {
	if ds.Path != "" {
		return catalog.LoadFile(ds.Path)
	}
	return catalog.LoadURL(ds.URL, ds.TimeoutMS)
}
