package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/stuartshay/swagger-enrich/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		if errors.Is(err, cli.ErrUsage) {
			fmt.Fprintln(os.Stderr, err)
		} else {
			fmt.Fprintf(os.Stderr, "Error processing swagger file: %v\n", err)
		}
		os.Exit(1)
	}
}
