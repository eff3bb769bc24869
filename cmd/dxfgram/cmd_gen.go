package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"unicode"

	"github.com/spf13/cobra"

	"github.com/vagran/dxfmatch/gramdef"
)

func newGenCmd() *cobra.Command {
	var outName, pkgName, varName string

	cmd := &cobra.Command{
		Use:   "gen <grammar.dxg>",
		Short: "Generate a Go source file embedding a grammar description",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read grammar: %w", err)
			}

			name := filepath.Base(args[0])
			g, err := gramdef.ParseString(name, string(src))
			if err != nil {
				return err
			}

			if outName == "" {
				ext := filepath.Ext(args[0])
				outName = args[0][:len(args[0])-len(ext)] + ".go"
			}
			if pkgName == "" {
				dir, e := filepath.Abs(filepath.Dir(outName))
				if e != nil {
					return e
				}
				pkgName = identifier(filepath.Base(dir), false)
			}
			if varName == "" {
				// the root rule is the first child of the built root sequence
				varName = identifier(g.Root().Children()[0].Name(), true) + "Grammar"
			}

			var buf bytes.Buffer
			fmt.Fprintf(&buf, "// Code generated by dxfgram; DO NOT EDIT.\n\n")
			fmt.Fprintf(&buf, "package %s\n\n", pkgName)
			fmt.Fprintf(&buf, "import \"github.com/vagran/dxfmatch/gramdef\"\n\n")
			fmt.Fprintf(&buf, "var %s = gramdef.MustParse(%q, %s)\n", varName, name, strconv.Quote(string(src)))

			return os.WriteFile(outName, buf.Bytes(), 0o666)
		},
	}

	cmd.Flags().StringVarP(&outName, "out", "o", "", "output file name, default is the grammar file with a .go suffix")
	cmd.Flags().StringVarP(&pkgName, "package", "p", "", "Go package name, default is the output directory name")
	cmd.Flags().StringVar(&varName, "var", "", "Go variable name, default is derived from the root rule name")

	return cmd
}

func identifier(s string, export bool) string {
	var sb strings.Builder
	up := export
	for _, r := range s {
		switch {
		case unicode.IsLetter(r) || (unicode.IsDigit(r) && sb.Len() > 0):
			if up {
				r = unicode.ToUpper(r)
				up = false
			}
			sb.WriteRune(r)
		default:
			up = true
		}
	}
	if sb.Len() == 0 {
		return "generated"
	}
	return sb.String()
}
