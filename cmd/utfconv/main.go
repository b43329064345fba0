// utfconv validates and converts text between the Unicode encoding forms.
package main

import (
	"os"

	"github.com/oy3o/transcode/cmd/utfconv/command"
)

func main() {
	if err := command.Root.Execute(); err != nil {
		os.Exit(1)
	}
}
