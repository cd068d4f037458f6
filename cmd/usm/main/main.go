package main

import (
	"fmt"
	"os"

	"github.com/adamnew123456/usm/cmd/usm"
	"github.com/adamnew123456/usm/pkg/style"
)

func main() {
	rootCmd := usm.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, style.Render(style.ErrorStyle, fmt.Sprintf("Error: %v", err)))
		os.Exit(1)
	}
}
