// Command slidearchive serves the Slide Deck Archive dashboard.
//
// @title Slide Deck Archive API
// @version 1.0
// @description Archive and list Google Slides decks.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a token from `slidearchive token`.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
