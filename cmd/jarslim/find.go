package main

import (
	"fmt"

	"github.com/edward-ap/jarslim/pkg/slim"
	"github.com/spf13/cobra"
)

var (
	classpath []string
	srcMode   bool
	clsMode   bool
)

func createFindCmd() *cobra.Command {
	findCmd := &cobra.Command{
		Use:   "find [--cp <path>]... [--src | --cls] <path>...",
		Short: "List the target-library classes referenced by compiled code",
		Long: `Analyze directories or archives of compiled classes and print every
target-library class they reference, one relative path per line. The output
is undecorated so it can be redirected straight into a file for minimize.

Examples:
  jarslim find --cls ./build/classes > deps.txt
  jarslim find --src --cp ./lib/api.jar ./build/classes`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			cfg := loadConfig()
			slimmer := slim.NewSlim(slim.NewSlimParams{Config: cfg})
			slimmer.SetLogger(progressLogger())

			mode := slim.ModeClass
			if srcMode {
				mode = slim.ModeSource
			}

			paths, err := slimmer.FindDependencies(slim.FindParams{
				Paths:     args,
				Classpath: classpath,
				Mode:      mode,
			})
			if err != nil {
				return err
			}

			for _, path := range paths {
				fmt.Println(path)
			}
			return nil
		},
	}

	findCmd.Flags().StringArrayVar(&classpath, "cp", nil, "Additional classpath entry (repeatable)")
	findCmd.Flags().BoolVar(&srcMode, "src", false, "Print source-file paths, omitting nested classes")
	findCmd.Flags().BoolVar(&clsMode, "cls", false, "Print class-file paths (default)")
	findCmd.MarkFlagsMutuallyExclusive("src", "cls")

	return findCmd
}
