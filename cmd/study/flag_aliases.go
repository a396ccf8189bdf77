package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// aliasBudgetFlag lets --budget stand in for --hours.
func aliasBudgetFlag(cmd *cobra.Command) {
	flags := cmd.Flags()
	normalize := flags.GetNormalizeFunc()
	flags.SetNormalizeFunc(func(f *pflag.FlagSet, name string) pflag.NormalizedName {
		if name == "budget" {
			name = "hours"
		}
		return normalize(f, name)
	})
}
