package main

import (
	"github.com/edward-ap/jarslim/pkg/slim"
	"github.com/spf13/cobra"
)

func createMinimizeCmd() *cobra.Command {
	minimizeCmd := &cobra.Command{
		Use:   "minimize <library-archive> <class-list-file>",
		Short: "Build a minimized copy of the library archive",
		Long: `Reduce a library archive to the classes named in the list file plus
their transitive dependencies within the library. The result is written next
to the original as <archive-basename>-min.<ext>; an existing file there is
never overwritten.

Examples:
  jarslim minimize lib/guava.jar deps.txt`,
		Args: cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			cfg := loadConfig()
			slimmer := slim.NewSlim(slim.NewSlimParams{Config: cfg})
			slimmer.SetLogger(progressLogger())

			_, err := slimmer.Minimize(slim.MinimizeParams{
				ArchivePath:   args[0],
				ClassListPath: args[1],
			})
			return err
		},
	}

	return minimizeCmd
}
