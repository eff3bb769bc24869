package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	"github.com/vagran/dxfmatch"
	"github.com/vagran/dxfmatch/gramdef"
	"github.com/vagran/dxfmatch/matcher"
)

func newMatchCmd() *cobra.Command {
	var tipLimit int

	cmd := &cobra.Command{
		Use:   "match <grammar.dxg> <stream.dxt[.gz|.zst]>",
		Short: "Match a tag stream against a grammar and print the committed parse",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := commonlog.GetLogger("dxfgram.match")
			diags := dxfmatch.DiagFunc(func(e *dxfmatch.Error) {
				log.Warningf("%s", e.Message)
			})

			src, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read grammar: %w", err)
			}
			g, err := gramdef.ParseString(filepath.Base(args[0]), string(src))
			if err != nil {
				return err
			}

			in, err := openStream(args[1])
			if err != nil {
				return fmt.Errorf("open stream: %w", err)
			}
			defer in.Close()

			streamName := filepath.Base(args[1])
			tokens, err := readTags(streamName, in, diags)
			if err != nil {
				return err
			}
			log.Infof("%s: %d tokens", streamName, len(tokens))

			m := matcher.New(g)
			m.Stream = streamName
			m.TipLimit = tipLimit
			for _, t := range tokens {
				if err = m.Feed(t); err != nil {
					return err
				}
				log.Debugf("fed %s, %d live interpretations", t, m.Tips())
			}

			result, err := m.Finish()
			if err != nil {
				return err
			}

			for _, p := range result.Pairs() {
				node := g.NodeById(p.NodeId)
				fmt.Printf("%-20s %s\n", node.Ref(), p.Tok)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&tipLimit, "limit", 0, "fail when live interpretations exceed this count, 0 for no limit")

	return cmd
}
