package main

import (
	"os"

	"github.com/abhcs/bap-taint/cmd"
)

func main() {
	code := cmd.Execute()
	os.Exit(code)
}
