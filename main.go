// Package main provides the devicecard command-line tool, which gathers
// device information (network address, storage, location, device class and
// OS/model) and shows it as a themed card.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	tea "github.com/charmbracelet/bubbletea"

	"devicecard/logger"
	"devicecard/sysinfo"
	"devicecard/ui"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes one invocation and returns the process exit code. Lookup
// failures never fail the run; only configuration errors do.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := parseConfig(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}

	closer, err := logger.Init(cfg.logConfig())
	if err != nil {
		fmt.Fprintf(stderr, "Error initializing logger: %v\n", err)
		return 2
	}
	defer func() { _ = closer.Close() }()

	scheme, err := ui.ParseScheme(cfg.Theme)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}

	// The interactive screen owns the terminal input, so a prompt policy
	// cannot ask there and resolves to undetermined.
	var promptIn io.Reader = stdin
	if cfg.TUI {
		promptIn = nil
	}
	authority, err := sysinfo.NewPolicyAuthority(cfg.Location, promptIn, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}

	locator, err := cfg.locator()
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	store := sysinfo.NewStore()
	defer store.Close()

	log := logger.WithComponent("aggregator").With().Str("mount_id", store.ID()).Logger()

	agg := sysinfo.NewAggregator(log, sysinfo.Providers{
		Permissions: authority,
		Network:     sysinfo.NewHostNetwork(),
		Storage:     sysinfo.NewHostStorage(cfg.StoragePath),
		Location:    locator,
		Metadata:    sysinfo.NewHostMetadata(),
	})

	opts := ui.DefaultCardOptions()
	opts.Compact = cfg.Compact
	opts.Gap = cfg.Gap

	if cfg.TUI {
		model := ui.NewModel(ctx, logger.WithComponent("ui"), agg, store, ui.NewTheme(scheme), opts)
		if _, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
			fmt.Fprintf(stderr, "Error running screen: %v\n", err)
			return 1
		}
		return 0
	}

	store.Mount(ctx, agg)
	record := store.Snapshot()

	if cfg.JSON {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(record); err != nil {
			fmt.Fprintf(stderr, "Error encoding record: %v\n", err)
			return 1
		}
		return 0
	}

	fmt.Fprintln(stdout, ui.RenderCard(record, ui.NewTheme(scheme), opts))

	return 0
}
