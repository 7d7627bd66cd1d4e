// Command helloworld greets a name and computes stationary distributions of
// small Markov chains.
//
//	helloworld Gopher
//	helloworld markov --matrix "0.2,0.6,0.2;0.1,0.5,0.4;0.3,0.3,0.4" --vector "1,0,0"
//	helloworld markov --config chain.yaml --time
package main

import (
	"errors"
	"os"

	"github.com/katalvlaran/helloworld/greeting"
	"github.com/katalvlaran/helloworld/internal/config"
	"github.com/katalvlaran/helloworld/internal/log"
)

// exitFailure is the status for every error other than a missing name.
// It currently equals greeting.ExitNoArguments, so every failure exits 1;
// exitCode keeps the two mapped separately.
const exitFailure = 1

func main() {
	if err := config.LoadDotEnv(""); err != nil {
		log.ErrorMsg("%v", err)
	}

	root := newRootCmd(os.Stdout, os.Stderr)
	if err := root.Execute(); err != nil {
		log.ErrorMsg("%v", err)
		os.Exit(exitCode(err))
	}
}

func exitCode(err error) int {
	if errors.Is(err, greeting.ErrNoArguments) {
		return greeting.ExitNoArguments
	}

	return exitFailure
}
