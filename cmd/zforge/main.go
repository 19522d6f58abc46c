package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/zarlcorp/core/pkg/zapp"
	"github.com/zarlcorp/zforge/internal/cli"
	"github.com/zarlcorp/zforge/internal/tui"
	"github.com/zarlcorp/zforge/internal/wordlist"
)

// version is set at build time via ldflags.
var version = "dev"

// CLI defines the command-line interface. Running with no arguments starts
// the interactive TUI instead.
type CLI struct {
	MinLen    int  `help:"Minimum password length." default:"6"`
	MaxLen    int  `help:"Maximum password length." default:"20"`
	NoLeet    bool `help:"Disable leetspeak variations."`
	NoSpecial bool `help:"Disable special character variations."`
	NoNumbers bool `help:"Disable number suffix variations."`
	NoModern  bool `help:"Disable modern term variations."`

	Improve  improveCmd  `cmd:"" help:"Enhance an existing wordlist with case, leet, year, special and number variants."`
	Merge    mergeCmd    `cmd:"" help:"Merge wordlist files into one deduplicated list."`
	Download downloadCmd `cmd:"" help:"Download a reference common-passwords list."`
	Profiles profilesCmd `cmd:"" help:"List saved target profiles."`
	Forget   forgetCmd   `cmd:"" help:"Delete a saved profile."`
	Version  versionCmd  `cmd:"" help:"Print version."`

	ctx context.Context
}

// config translates the global flags into a generation policy.
func (c *CLI) config() wordlist.Config {
	cfg := wordlist.DefaultConfig()
	cfg.MinLength = c.MinLen
	cfg.MaxLength = c.MaxLen
	cfg.UseLeet = !c.NoLeet
	cfg.UseSpecialChars = !c.NoSpecial
	cfg.UseNumbers = !c.NoNumbers
	cfg.UseModernTerms = !c.NoModern
	return cfg
}

type improveCmd struct {
	Input  string `arg:"" help:"Wordlist file to enhance."`
	Output string `short:"o" help:"Output path (defaults to <input>.enhanced.txt)."`
}

func (c *improveCmd) Run(root *CLI) error {
	cli.CmdImprove(c.Input, c.Output, root.config())
	return nil
}

type mergeCmd struct {
	Inputs []string `arg:"" help:"Wordlist files to merge."`
	Output string   `short:"o" default:"merged_wordlist.txt" help:"Output path."`
}

func (c *mergeCmd) Run(root *CLI) error {
	cli.CmdMerge(c.Inputs, c.Output, root.config())
	return nil
}

type downloadCmd struct {
	Output string `short:"o" default:"common_passwords.txt" help:"Output path."`
}

func (c *downloadCmd) Run(root *CLI) error {
	cli.CmdDownload(root.ctx, c.Output)
	return nil
}

type profilesCmd struct{}

func (c *profilesCmd) Run(*CLI) error {
	cli.CmdProfiles()
	return nil
}

type forgetCmd struct {
	ID string `arg:"" help:"Profile ID to delete."`
}

func (c *forgetCmd) Run(*CLI) error {
	cli.CmdForget(c.ID)
	return nil
}

type versionCmd struct{}

func (c *versionCmd) Run(*CLI) error {
	fmt.Printf("zforge %s\n", version)
	return nil
}

func main() {
	app := zapp.New(zapp.WithName("zforge"))

	ctx, cancel := zapp.SignalContext(context.Background())
	defer cancel()

	if len(os.Args) > 1 {
		runCLI(ctx)
		_ = app.Close()
		return
	}

	if err := runTUI(); err != nil {
		slog.Error("tui", "err", err)
		_ = app.Close()
		os.Exit(1)
	}

	if err := app.Close(); err != nil {
		slog.Error("shutdown", "err", err)
		os.Exit(1)
	}
}

func runCLI(ctx context.Context) {
	var flags CLI
	kctx := kong.Parse(&flags,
		kong.Name("zforge"),
		kong.Description("Targeted password wordlist generator."),
		kong.UsageOnError(),
		kong.Bind(&flags),
	)
	flags.ctx = ctx

	if err := kctx.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "zforge: %v\n", err)
		os.Exit(1)
	}
}

func runTUI() error {
	dataDir := cli.DataDir()
	firstRun := cli.IsFirstRun(dataDir)

	m := tui.New(version, dataDir, wordlist.DefaultConfig(), firstRun)
	p := tea.NewProgram(m)
	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	if fm, ok := finalModel.(tui.Model); ok {
		fm.Close()
	}

	return nil
}
