package main

import (
	"fmt"
	"os"

	"github.com/ranjithg298/matrimony-sub001/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
