package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vagran/dxfmatch/gramdef"
)

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <grammar.dxg>",
		Short: "Compile and validate a grammar description",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read grammar: %w", err)
			}

			g, err := gramdef.ParseString(filepath.Base(args[0]), string(src))
			if err != nil {
				return err
			}

			fmt.Printf("%s: ok, %d grammar nodes\n", args[0], g.NodeCount())
			return nil
		},
	}
}
