package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
)

func main() {
	var verbosity int

	rootCmd := &cobra.Command{
		Use:   "dxfgram",
		Short: "Check record grammars and match tag streams against them",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			commonlog.Configure(verbosity, nil)
		},
	}
	rootCmd.PersistentFlags().IntVarP(&verbosity, "verbose", "v", 0, "log verbosity")

	rootCmd.AddCommand(newCheckCmd())
	rootCmd.AddCommand(newMatchCmd())
	rootCmd.AddCommand(newGenCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
