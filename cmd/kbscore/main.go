// main is the entry point for the kbscore CLI.
package main

import (
	"github.com/lumenkit/kbscore/cmd"
	"github.com/lumenkit/kbscore/internal/contract"
)

func main() {
	err := cmd.Execute()
	cmd.CloseStore()
	if err != nil {
		contract.LogFatal("Command failed", err)
	}
}
