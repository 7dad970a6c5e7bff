package main

import (
	"flag"
	"listing-portal/internal"
	"log"
)

func main() {
	envFile := flag.String("env", "", "path to .env file (default: ./.env)")
	flag.Parse()

	var envPath []string
	if *envFile != "" {
		envPath = append(envPath, *envFile)
	}

	portal, err := internal.NewApp(envPath...)
	if err != nil {
		log.Fatalf("listing-portal: init failed: %v", err)
	}
	if err := portal.Run(); err != nil {
		log.Fatalf("listing-portal: %v", err)
	}
}
