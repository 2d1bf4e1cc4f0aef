package commands

import (
	"embed"
	"io/fs"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/filesort/pkg/cobrax/topics"
)

//go:embed docs
var docsFS embed.FS

func newTopicsCmd() *cobra.Command {
	sub, err := fs.Sub(docsFS, "docs")
	if err != nil {
		// Embedded docs are part of the binary; this cannot fail at runtime
		panic(err)
	}

	var renderer topics.Renderer = &topics.PlainRenderer{}
	if isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		renderer = topics.NewGlamourRenderer()
	}

	tm, err := topics.New(sub, topics.Options{Renderer: renderer})
	if err != nil {
		panic(err)
	}

	return tm.Command()
}
