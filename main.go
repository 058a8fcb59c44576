package main

import (
	"github.com/dbmrq/spoons/cmd"

	_ "github.com/dbmrq/spoons/internal/platform/darwin"
)

func main() {
	cmd.Execute()
}
