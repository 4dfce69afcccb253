package main

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/prayer-loadouts/internal/repositories/loadouts"
)

var repairYes bool

var repairCmd = &cobra.Command{
	Use:   "repair",
	Short: "Find and remove loadout keys that no loadout can read",
	Args:  cobra.NoArgs,
	RunE: withApp(func(ctx context.Context, cmd *cobra.Command, a *app, _ []string) error {
		out := cmd.OutOrStdout()

		found, err := a.repo.FindOrphans(ctx)
		if err != nil {
			return err
		}

		fmt.Fprintf(out, "Checked %d keys, found %d orphaned entries\n", found.Checked, len(found.Orphans))
		if len(found.Orphans) == 0 {
			return nil
		}

		keys := make([]string, len(found.Orphans))
		for i, o := range found.Orphans {
			keys[i] = o.Key
			fmt.Fprintf(out, "  - %s (%s)\n", o.Key, o.Reason)
		}

		if !repairYes {
			fmt.Fprint(out, "\nDelete these entries? (yes/no): ")
			answer, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
			if strings.TrimSpace(answer) != "yes" {
				fmt.Fprintln(out, "Aborted, no changes made")
				return nil
			}
		}

		removed, err := a.repo.RemoveKeys(ctx, loadouts.RemoveKeysInput{Keys: keys})
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Removed %d keys\n", removed.Removed)
		return nil
	}),
}

func init() {
	repairCmd.Flags().BoolVar(&repairYes, "yes", false, "delete without asking")
	rootCmd.AddCommand(repairCmd)
}
