package main

import (
	"github.com/buildbeaver/yamato/cmd/yamato-gen/commands"
	_ "github.com/buildbeaver/yamato/cmd/yamato-gen/commands/packagetest"
)

func main() {
	commands.Execute()
}
