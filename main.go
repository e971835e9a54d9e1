package main

import (
	"flag"
	"log"

	"acsd/internal/di"
	"acsd/internal/structures"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the yaml config file")
	debug := flag.Bool("debug", false, "duplicate logs to stderr")
	flag.Parse()

	_, err := di.InitApp(&structures.CliFlags{
		ConfigPath: *configPath,
		DebugMode:  *debug,
	})
	if err != nil {
		log.Fatal(err)
	}
}
