// Package cli implements zforge's command-line subcommands.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"syscall"
	"time"

	"github.com/zarlcorp/core/pkg/zfilesystem"
	"github.com/zarlcorp/zforge/internal/seclist"
	"github.com/zarlcorp/zforge/internal/store"
	"github.com/zarlcorp/zforge/internal/wordfile"
	"github.com/zarlcorp/zforge/internal/wordlist"
	"golang.org/x/term"
)

// DataDir returns the default data directory for zforge.
func DataDir() string {
	if d := os.Getenv("XDG_DATA_HOME"); d != "" {
		return d + "/zforge"
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".zforge"
	}
	return home + "/.local/share/zforge"
}

// ReadPassword prompts for a password on stderr and reads it without echo.
func ReadPassword(prompt string, w io.Writer) (string, error) {
	fmt.Fprint(w, prompt)
	b, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Fprintln(w)
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	return string(b), nil
}

// ReadNewPassword prompts for a new password with confirmation.
func ReadNewPassword(w io.Writer) (string, error) {
	pass, err := ReadPassword("master password: ", w)
	if err != nil {
		return "", err
	}
	confirm, err := ReadPassword("confirm password: ", w)
	if err != nil {
		return "", err
	}
	if pass != confirm {
		return "", fmt.Errorf("passwords do not match")
	}
	return pass, nil
}

// IsFirstRun checks whether the store has been initialized.
func IsFirstRun(dir string) bool {
	_, err := os.Stat(dir + "/salt")
	return err != nil
}

// OpenStore prompts for a master password and opens the profile store.
func OpenStore(dir string) (*store.Store, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	var pass string
	var err error
	if IsFirstRun(dir) {
		pass, err = ReadNewPassword(os.Stderr)
	} else {
		pass, err = ReadPassword("master password: ", os.Stderr)
	}
	if err != nil {
		return nil, err
	}

	fsys := zfilesystem.NewOSFileSystem(dir)
	return store.Open(fsys, []byte(pass))
}

// CmdImprove enhances an existing wordlist file with case, leet, year,
// special-character and number variants.
func CmdImprove(path, output string, cfg wordlist.Config) {
	words, err := wordfile.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "zforge: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("loaded %d words from %s\n", len(words), path)

	if len(words) > cfg.Threshold {
		fmt.Fprintf(os.Stderr, "warning: large wordlist (%d words), this may generate many combinations\n", len(words))
		if !confirm("continue? (y/N): ") {
			return
		}
	}

	enhanced := wordlist.Improve(words, cfg)
	fmt.Printf("enhanced: %d -> %d passwords\n", len(words), enhanced.Len())

	if output == "" {
		output = path + ".enhanced.txt"
	}
	writeTXTFile(output, enhanced)
}

// CmdMerge unions multiple wordlist files. Unreadable inputs are skipped
// with a warning.
func CmdMerge(paths []string, output string, cfg wordlist.Config) {
	var lists [][]string
	for _, path := range paths {
		words, err := wordfile.ReadFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: skipping %s: %v\n", path, err)
			continue
		}
		fmt.Printf("loaded %d words from %s\n", len(words), path)
		lists = append(lists, words)
	}

	merged := wordlist.Merge(cfg, lists...)
	fmt.Printf("merged total: %d unique passwords\n", merged.Len())

	writeTXTFile(output, merged)
}

// CmdDownload fetches the reference common-password list.
func CmdDownload(ctx context.Context, output string) {
	fmt.Println("downloading common passwords list...")

	lines, err := seclist.NewClient().Fetch(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "zforge: %v\n", err)
		os.Exit(1)
	}

	f, err := os.Create(output)
	if err != nil {
		fmt.Fprintf(os.Stderr, "zforge: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	if _, err := f.WriteString(strings.Join(lines, "\n") + "\n"); err != nil {
		fmt.Fprintf(os.Stderr, "zforge: write %s: %v\n", output, err)
		os.Exit(1)
	}
	fmt.Printf("downloaded %d passwords to %s\n", len(lines), output)
}

// CmdProfiles lists saved target profiles.
func CmdProfiles() {
	s, err := OpenStore(DataDir())
	if err != nil {
		fmt.Fprintf(os.Stderr, "zforge: %v\n", err)
		os.Exit(1)
	}
	defer s.Close()

	records, err := s.List()
	if err != nil {
		fmt.Fprintf(os.Stderr, "zforge: list: %v\n", err)
		os.Exit(1)
	}

	if len(records) == 0 {
		fmt.Println("no saved profiles")
		return
	}

	for _, rec := range records {
		name := strings.TrimSpace(rec.Profile.Name + " " + rec.Profile.Surname)
		fmt.Printf("  %-36s %-25s %s\n", rec.ID, name, rec.CreatedAt.Format(time.DateOnly))
	}
}

// CmdForget deletes a saved profile by ID.
func CmdForget(id string) {
	s, err := OpenStore(DataDir())
	if err != nil {
		fmt.Fprintf(os.Stderr, "zforge: %v\n", err)
		os.Exit(1)
	}
	defer s.Close()

	if err := s.Delete(id); err != nil {
		fmt.Fprintf(os.Stderr, "zforge: forget: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("deleted %s\n", id)
}

func writeTXTFile(path string, tokens wordlist.Set) {
	f, err := os.Create(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "zforge: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	if err := wordfile.WriteTXT(f, tokens); err != nil {
		fmt.Fprintf(os.Stderr, "zforge: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("saved to %s (%d passwords)\n", path, tokens.Len())
}

func confirm(prompt string) bool {
	fmt.Fprint(os.Stderr, prompt)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}
	return strings.EqualFold(strings.TrimSpace(line), "y")
}
