package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

var importFile string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved loadouts",
	Args:  cobra.NoArgs,
	RunE: withApp(func(ctx context.Context, cmd *cobra.Command, a *app, _ []string) error {
		active, _ := a.handler.ActiveLoadoutName(ctx)
		last, _ := a.handler.LastLoadoutName(ctx)

		out := cmd.OutOrStdout()
		for _, name := range a.handler.LoadoutNames(ctx) {
			marker := ""
			switch name {
			case active:
				marker = " (active)"
			case last:
				marker = " (last used)"
			}
			fmt.Fprintf(out, "%s%s\n", name, marker)
		}
		return nil
	}),
}

var activeCmd = &cobra.Command{
	Use:   "active",
	Short: "Show the loadout matching the current prayer state",
	Args:  cobra.NoArgs,
	RunE: withApp(func(ctx context.Context, cmd *cobra.Command, a *app, _ []string) error {
		name, found := a.handler.ActiveLoadoutName(ctx)
		if !found {
			fmt.Fprintln(cmd.OutOrStdout(), "none")
			return nil
		}
		fmt.Fprintln(cmd.OutOrStdout(), name)
		return nil
	}),
}

var saveCmd = &cobra.Command{
	Use:   "save NAME",
	Short: "Save the current prayerbook's state under NAME",
	Args:  cobra.ExactArgs(1),
	RunE: withApp(func(ctx context.Context, cmd *cobra.Command, a *app, args []string) error {
		if !a.handler.SaveLoadout(ctx, args[0]) {
			return fmt.Errorf("could not save loadout %q", args[0])
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Saved %s\n", args[0])
		return nil
	}),
}

var loadCmd = &cobra.Command{
	Use:   "load NAME",
	Short: "Apply NAME to the current prayerbook",
	Args:  cobra.ExactArgs(1),
	RunE: withApp(func(ctx context.Context, cmd *cobra.Command, a *app, args []string) error {
		if !a.handler.LoadLoadout(ctx, args[0]) {
			return fmt.Errorf("could not load loadout %q", args[0])
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Loaded %s\n", args[0])
		return nil
	}),
}

var deleteCmd = &cobra.Command{
	Use:   "delete NAME",
	Short: "Delete a saved loadout",
	Args:  cobra.ExactArgs(1),
	RunE: withApp(func(ctx context.Context, cmd *cobra.Command, a *app, args []string) error {
		if !a.handler.DeleteLoadout(ctx, args[0]) {
			return fmt.Errorf("could not delete loadout %q", args[0])
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", args[0])
		return nil
	}),
}

var renameCmd = &cobra.Command{
	Use:   "rename OLD NEW",
	Short: "Rename a saved loadout",
	Args:  cobra.ExactArgs(2),
	RunE: withApp(func(ctx context.Context, cmd *cobra.Command, a *app, args []string) error {
		if !a.handler.RenameLoadout(ctx, args[0], args[1]) {
			return fmt.Errorf("could not rename loadout %q to %q", args[0], args[1])
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Renamed %s to %s\n", args[0], args[1])
		return nil
	}),
}

var exportCmd = &cobra.Command{
	Use:   "export NAME",
	Short: "Copy a loadout to the clipboard and print it",
	Args:  cobra.ExactArgs(1),
	RunE: withApp(func(ctx context.Context, cmd *cobra.Command, a *app, args []string) error {
		if !a.handler.ExportLoadout(ctx, args[0]) {
			return fmt.Errorf("could not export loadout %q", args[0])
		}

		text, err := a.clipboard.ReadText(ctx)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), text)
		return nil
	}),
}

var importCmd = &cobra.Command{
	Use:   "import [NAME]",
	Short: "Save the loadout on the clipboard, optionally under a new name",
	Args:  cobra.MaximumNArgs(1),
	RunE: withApp(func(ctx context.Context, cmd *cobra.Command, a *app, args []string) error {
		if importFile != "" {
			text, err := readImportFile(cmd, importFile)
			if err != nil {
				return err
			}
			if err := a.clipboard.WriteText(ctx, text); err != nil {
				return err
			}
		}

		name := ""
		if len(args) == 1 {
			name = args[0]
		}
		if !a.handler.ImportLoadout(ctx, name) {
			return fmt.Errorf("could not import loadout")
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Imported")
		return nil
	}),
}

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore the default prayer order, hidden prayers and filters",
	Args:  cobra.NoArgs,
	RunE: withApp(func(ctx context.Context, cmd *cobra.Command, a *app, _ []string) error {
		if !a.handler.ResetToDefaults(ctx) {
			return fmt.Errorf("could not reset prayers")
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Reset to defaults")
		return nil
	}),
}

func readImportFile(cmd *cobra.Command, path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		return string(data), err
	}
	data, err := os.ReadFile(path) // #nosec G304 -- path comes from the operator
	return string(data), err
}

func init() {
	importCmd.Flags().StringVar(&importFile, "file", "", "copy this file (or - for stdin) to the clipboard first")

	rootCmd.AddCommand(listCmd, activeCmd, saveCmd, loadCmd, deleteCmd, renameCmd, exportCmd, importCmd, resetCmd)
}
