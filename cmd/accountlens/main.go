package main

import (
	"github.com/accountlens/accountlens/internal/cmd"
)

func main() {
	cmd.Execute()
}
