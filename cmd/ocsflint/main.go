package main

import (
	"errors"
	"fmt"
	"os"
)

func main() {
	if err := NewRootCmd().Execute(); err != nil {
		if !errors.Is(err, errExitWithFindings) {
			fmt.Fprintln(os.Stderr, "ocsflint:", err)
		}
		os.Exit(1)
	}
}
