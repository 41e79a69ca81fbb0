// The main package for the enrich executable.
package main

import (
	"github.com/leadscout/enrich/cmd"
)

func main() {
	cmd.Execute()
}
