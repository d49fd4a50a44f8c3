// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

// Program jgram checks whether its input files are valid JSON documents.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/creachadair/jgram"
	"github.com/spf13/cobra"
	"github.com/tailscale/hujson"
)

var flags struct {
	quiet       bool
	standardize bool
	comments    bool
	trailing    bool
	maxDepth    int
	credits     bool
}

func main() {
	root := &cobra.Command{
		Use:   "jgram [flags] <file>...",
		Short: "Check whether files contain valid JSON documents",
		Long: `Check whether files contain valid JSON documents.

Each argument is validated against the JSON grammar. A valid document must
have an object or array at its root. On success, jgram reports the root type
and echoes the document; on failure it reports where the input went wrong.
Use "-" to read from standard input.`,
		Args:    cobra.ArbitraryArgs,
		Version: "0.2.0",
		RunE:    runCheck,

		SilenceUsage:  true,
		SilenceErrors: true,
	}
	fs := root.Flags()
	fs.BoolVarP(&flags.quiet, "quiet", "q", false, "report via exit status only")
	fs.BoolVar(&flags.standardize, "standardize", false, "convert JWCC input to standard JSON before checking")
	fs.BoolVar(&flags.comments, "allow-comments", false, "permit line and block comments")
	fs.BoolVar(&flags.trailing, "allow-trailing-commas", false, "permit trailing commas in objects and arrays")
	fs.IntVar(&flags.maxDepth, "max-depth", 0, "maximum nesting depth (0 uses the default)")
	fs.BoolVar(&flags.credits, "credits", false, "show project credits and exit")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func runCheck(cmd *cobra.Command, args []string) error {
	if flags.credits {
		fmt.Println("jgram: a validating JSON parser")
		fmt.Println("https://github.com/creachadair/jgram")
		return nil
	}
	if len(args) == 0 {
		return cmd.Help()
	}

	p := jgram.Parser{
		MaxDepth:            flags.maxDepth,
		AllowComments:       flags.comments,
		AllowTrailingCommas: flags.trailing,
	}
	ok := true
	for _, path := range args {
		if err := checkFile(p, path); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
			ok = false
		}
	}
	if !ok {
		return errors.New("not all inputs are valid")
	}
	return nil
}

func checkFile(p jgram.Parser, path string) error {
	data, err := readInput(path)
	if err != nil {
		return err
	}
	if flags.standardize {
		std, err := hujson.Standardize(data)
		if err != nil {
			return fmt.Errorf("standardize: %w", err)
		}
		data = std
	}

	if flags.quiet {
		if !p.IsValid(string(data)) {
			return errors.New("invalid JSON")
		}
		return nil
	}
	doc, err := p.Parse(string(data))
	if err != nil {
		return err
	}
	fmt.Printf("%s: valid JSON, root type %s\n", path, doc.Root)
	fmt.Println(doc.Content)
	return nil
}

func readInput(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}
