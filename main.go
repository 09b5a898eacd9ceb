package main

import (
	"github.com/mj1618/axsearch/cmd"

	_ "github.com/mj1618/axsearch/internal/platform/file"
)

func main() {
	cmd.Execute()
}
