package main

import (
	"os"
	"runtime/debug"

	"github.com/cinderchain/cinder/cmd"
	"github.com/cinderchain/cinder/logx"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			_ = logx.Errorf("CLI CRASHED: %v\n%s", r, debug.Stack())
			os.Exit(1)
		}
	}()

	cmd.Execute()
}
