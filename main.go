// main is the entry point for the metaboscore CLI.
package main

import (
	"github.com/metaboscore/metaboscore/cmd"
	"github.com/metaboscore/metaboscore/internal/contract"
)

func main() {
	err := cmd.Execute()
	if stopErr := cmd.StopProfiling(); stopErr != nil {
		contract.LogWarn("Cannot stop profiling", stopErr)
	}
	if err != nil {
		contract.LogFatal("Command failed", err)
	}
}
