package main

import (
	"log"
	"os"

	"github.com/viant/autofill/cmd"
)

var Version = "dev"

func main() {
	if err := cmd.RunApp(Version, os.Args[1:], os.Stdout); err != nil {
		log.Fatal(err)
	}
}
