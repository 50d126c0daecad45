//go:build !(js && wasm)

package main

import (
	"os"

	"github.com/MobRulesGames/css3d/cmd/css3ddemo/gen"
	"github.com/MobRulesGames/css3d/logging"
)

func main() {
	logging.Error("css3ddemo only runs in a browser; build it with GOOS=js GOARCH=wasm", "version", gen.Version())
	os.Exit(1)
}
