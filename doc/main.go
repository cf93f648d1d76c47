// Command doc writes a markdown page for every vmmtool command.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/brian1917/vmmtool/cmd"
	"github.com/spf13/cobra/doc"
)

func main() {
	dir := flag.String("dir", "./docs", "directory for the generated markdown files.")
	flag.Parse()

	if err := os.MkdirAll(*dir, 0755); err != nil {
		log.Fatal(err)
	}
	cmd.RootCmd.DisableAutoGenTag = true
	if err := doc.GenMarkdownTree(cmd.RootCmd, *dir); err != nil {
		log.Fatal(err)
	}
}
