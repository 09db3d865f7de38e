package main

import (
	"fmt"
	"os"

	"fastauth/cmd"
)

func main() {
	if len(os.Args) > 1 && os.Args[1] == "client" {
		var configPath string
		if len(os.Args) > 2 {
			configPath = os.Args[2]
		}
		if err := cmd.StartClient(configPath); err != nil {
			fmt.Printf("client run into an error: %s\n", err)
			os.Exit(1)
		}
		return
	}

	if err := cmd.Start(); err != nil {
		fmt.Printf("server run into an error: %s\n", err)
		os.Exit(1)
	}
}
