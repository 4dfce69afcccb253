package main

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/prayer-loadouts/internal/entities/loadout"
	"github.com/KirkDiggler/prayer-loadouts/internal/executor"
	"github.com/KirkDiggler/prayer-loadouts/internal/host"
)

var hostCmd = &cobra.Command{
	Use:   "host",
	Short: "Inspect and drive the simulated client state",
}

var hostStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the live prayer state",
	Args:  cobra.NoArgs,
	RunE: withApp(func(ctx context.Context, cmd *cobra.Command, a *app, _ []string) error {
		book, err := a.state.Book(ctx)
		if err != nil {
			return err
		}
		loggedIn, err := a.state.SessionActive(ctx)
		if err != nil {
			return err
		}
		enabled, err := a.state.FeatureEnabled(ctx)
		if err != nil {
			return err
		}
		filters, err := host.ReadFilters(ctx, a.state)
		if err != nil {
			return err
		}
		value, ok, err := a.state.Order(ctx, book)
		if err != nil {
			return err
		}
		hidden, err := a.state.HiddenItems(ctx, book)
		if err != nil {
			return err
		}

		items := make([]string, 0, len(hidden))
		for item, v := range hidden {
			items = append(items, item+"="+v)
		}
		sort.Strings(items)

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "book:      %d\n", book)
		fmt.Fprintf(out, "logged in: %t\n", loggedIn)
		fmt.Fprintf(out, "enabled:   %t\n", enabled)
		fmt.Fprintf(out, "order:     %s\n", loadout.OrderFromLive(value, ok))
		fmt.Fprintf(out, "filters:   %s\n", loadout.FilterFingerprint(filters))
		fmt.Fprintf(out, "hidden:    %s\n", strings.Join(items, ","))
		return nil
	}),
}

var hostLoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in and auto-load the last used loadout",
	Args:  cobra.NoArgs,
	RunE: withApp(func(ctx context.Context, cmd *cobra.Command, a *app, _ []string) error {
		if err := a.state.SetSessionActive(ctx, true); err != nil {
			return err
		}
		a.handler.OnSessionChanged(ctx, true)
		a.handler.Wait()

		fmt.Fprintln(cmd.OutOrStdout(), "Logged in")
		return nil
	}),
}

var hostLogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Log out",
	Args:  cobra.NoArgs,
	RunE: withApp(func(ctx context.Context, cmd *cobra.Command, a *app, _ []string) error {
		if err := a.state.SetSessionActive(ctx, false); err != nil {
			return err
		}
		a.handler.OnSessionChanged(ctx, false)

		fmt.Fprintln(cmd.OutOrStdout(), "Logged out")
		return nil
	}),
}

var hostEnableCmd = &cobra.Command{
	Use:   "enable",
	Short: "Turn prayer reordering on",
	Args:  cobra.NoArgs,
	RunE:  withApp(setFeature(true)),
}

var hostDisableCmd = &cobra.Command{
	Use:   "disable",
	Short: "Turn prayer reordering off",
	Args:  cobra.NoArgs,
	RunE:  withApp(setFeature(false)),
}

var hostBookCmd = &cobra.Command{
	Use:   "book N",
	Short: "Switch the active prayerbook",
	Args:  cobra.ExactArgs(1),
	RunE: withApp(func(ctx context.Context, cmd *cobra.Command, a *app, args []string) error {
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid book %q: %w", args[0], err)
		}
		if err := a.state.SetBook(ctx, loadout.BookID(n)); err != nil {
			return err
		}
		return a.await(ctx, a.handler.OnVarbitChanged(ctx, host.BookVarbit))
	}),
}

var hostFilterCmd = &cobra.Command{
	Use:   "filter FIELD VALUE",
	Short: "Set a prayer filter flag",
	Args:  cobra.ExactArgs(2),
	RunE: withApp(func(ctx context.Context, cmd *cobra.Command, a *app, args []string) error {
		field, ok := loadout.ParseFilterField(args[0])
		if !ok {
			names := make([]string, len(loadout.FilterFields))
			for i, f := range loadout.FilterFields {
				names[i] = string(f)
			}
			return fmt.Errorf("unknown filter %q, want one of %s", args[0], strings.Join(names, ", "))
		}
		value, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid value %q: %w", args[1], err)
		}
		if err := a.state.SetFilterFlag(ctx, field, value); err != nil {
			return err
		}
		return a.await(ctx, a.handler.OnVarbitChanged(ctx, string(field)))
	}),
}

var hostOrderCmd = &cobra.Command{
	Use:   "order BOOK SPEC|DEFAULT",
	Short: "Set a book's custom prayer order",
	Args:  cobra.ExactArgs(2),
	RunE: withApp(func(ctx context.Context, _ *cobra.Command, a *app, args []string) error {
		book, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid book %q: %w", args[0], err)
		}
		if loadout.OrderSpec(args[1]).IsDefault() {
			return a.state.ClearOrder(ctx, loadout.BookID(book))
		}
		return a.state.SetOrder(ctx, loadout.BookID(book), args[1])
	}),
}

var hostHideCmd = &cobra.Command{
	Use:   "hide BOOK ITEM VALUE",
	Short: "Hide a prayer in a book",
	Args:  cobra.ExactArgs(3),
	RunE: withApp(func(ctx context.Context, _ *cobra.Command, a *app, args []string) error {
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid book %q: %w", args[0], err)
		}
		book := loadout.BookID(n)

		items, err := a.state.HiddenItems(ctx, book)
		if err != nil {
			return err
		}
		items[args[1]] = args[2]
		return a.state.ReplaceHiddenItems(ctx, book, items)
	}),
}

func setFeature(enabled bool) func(context.Context, *cobra.Command, *app, []string) error {
	return func(ctx context.Context, cmd *cobra.Command, a *app, _ []string) error {
		if err := a.state.SetFeatureEnabled(ctx, enabled); err != nil {
			return err
		}
		a.handler.OnFeatureChanged(ctx)

		fmt.Fprintf(cmd.OutOrStdout(), "Prayer reordering enabled: %t\n", enabled)
		return nil
	}
}

// await waits for a submitted cache refresh so the process does not stop
// the executor under it
func (a *app) await(ctx context.Context, f *executor.Future) error {
	if f == nil {
		return nil
	}
	return f.Await(ctx, a.cfg.Executor.AwaitTimeout)
}

func init() {
	hostCmd.AddCommand(
		hostStatusCmd,
		hostLoginCmd,
		hostLogoutCmd,
		hostEnableCmd,
		hostDisableCmd,
		hostBookCmd,
		hostFilterCmd,
		hostOrderCmd,
		hostHideCmd,
	)
	rootCmd.AddCommand(hostCmd)
}
