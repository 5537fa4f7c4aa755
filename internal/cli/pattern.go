package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/barokit/baro/internal/config"
	"github.com/barokit/baro/internal/errors"
	"github.com/barokit/baro/internal/ui"
)

// patternCmd groups the pattern management subcommands.
var patternCmd = &cobra.Command{
	Use:   "pattern",
	Short: "Manage stored extraction patterns",
	Long: `Manage the named regular expressions the dashboard extracts numbers with.

Stored patterns live in the config file and are selected at run time with
--pattern. Capture group i of a pattern feeds chart i.`,
}

// patternAddCmd stores a named pattern, prompting for missing arguments.
var patternAddCmd = &cobra.Command{
	Use:   "add [name] [regex]",
	Short: "Store a named extraction pattern",
	Long: `Store a regular expression under a name for later use with --pattern.

The regex must have at least one capture group; each group feeds one chart.
Missing arguments are collected interactively when running in a terminal.

Examples:
  baro pattern add latency 'took ([0-9.]+)ms'
  baro pattern add sizes 'in=(\d+) out=(\d+)'
  baro pattern add`,
	Args: cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		var name, regex string
		if len(args) > 0 {
			name = args[0]
		}
		if len(args) > 1 {
			regex = args[1]
		}
		return patternAdd(name, regex)
	},
}

// patternRemoveCmd deletes a stored pattern, with a picker when no name is
// given.
var patternRemoveCmd = &cobra.Command{
	Use:   "remove [name]",
	Short: "Delete a stored pattern",
	Long: `Delete a stored pattern by name.

Without a name, an interactive picker lists what is stored.

Examples:
  baro pattern remove latency
  baro pattern remove`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var name string
		if len(args) > 0 {
			name = args[0]
		}
		return patternRemove(name)
	},
}

// patternListCmd shows the stored patterns.
var patternListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show stored patterns",
	RunE: func(cmd *cobra.Command, args []string) error {
		return patternList()
	},
}

func init() {
	patternCmd.AddCommand(patternAddCmd)
	patternCmd.AddCommand(patternRemoveCmd)
	patternCmd.AddCommand(patternListCmd)
	rootCmd.AddCommand(patternCmd)
}

// patternAdd validates and persists a named pattern.
func patternAdd(name, regex string) error {
	if name == "" || regex == "" {
		if !stdinIsTerminal() {
			return errors.New(errors.ErrConfig,
				"Pattern name and regex are required",
				"Usage: baro pattern add <name> <regex>")
		}
		if err := promptPattern(&name, &regex); err != nil {
			return err
		}
	}

	if err := config.ValidatePattern(name, regex); err != nil {
		return err
	}

	path, err := patternConfigPath()
	if err != nil {
		return err
	}

	replaced, err := config.UpsertPattern(path, name, regex)
	if err != nil {
		return err
	}

	verb := "Added"
	if replaced {
		verb = "Updated"
	}
	fmt.Printf("%s %s pattern '%s'\n", ui.SymbolSuccess, verb, name)
	fmt.Printf("  Use it with: <producer> | baro --pattern %s\n", name)
	return nil
}

// patternRemove deletes the named pattern, or asks which one when the name
// is missing and a terminal is attached.
func patternRemove(name string) error {
	cfg, err := config.LoadOrDefault(config.ExpandTilde(configFlag))
	if err != nil {
		return err
	}

	if len(cfg.Patterns) == 0 {
		return errors.New(errors.ErrConfig,
			"No patterns stored",
			"Nothing to remove.")
	}

	if name == "" {
		if !stdinIsTerminal() {
			return errors.New(errors.ErrConfig,
				"Pattern name is required",
				"Usage: baro pattern remove <name>")
		}

		options := make([]huh.Option[string], len(cfg.Patterns))
		for i, p := range cfg.Patterns {
			options[i] = huh.NewOption(p.Name+" - "+p.Regex, p.Name)
		}

		form := huh.NewForm(
			huh.NewGroup(
				huh.NewSelect[string]().
					Title("Select pattern to remove").
					Options(options...).
					Value(&name),
			),
		)
		if err := form.Run(); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Couldn't get your selection",
				"Try again or use: baro pattern remove <name>")
		}
	}

	if _, ok := cfg.FindPattern(name); !ok {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Pattern '%s' not found", name),
			"Stored patterns: "+strings.Join(cfg.PatternNames(), ", "))
	}

	// Scripted removals shouldn't hang on a prompt.
	if stdinIsTerminal() {
		var confirm bool
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title(fmt.Sprintf("Remove pattern '%s'?", name)).
					Description("This cannot be undone").
					Value(&confirm),
			),
		)
		if err := form.Run(); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Couldn't get your input",
				"Try again or edit the config file directly.")
		}
		if !confirm {
			fmt.Println("Cancelled.")
			return nil
		}
	}

	path, err := patternConfigPath()
	if err != nil {
		return err
	}

	removed, err := config.DeletePattern(path, name)
	if err != nil {
		return err
	}
	if !removed {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Pattern '%s' not found", name),
			"Stored patterns: "+strings.Join(cfg.PatternNames(), ", "))
	}

	fmt.Printf("%s Removed pattern '%s'\n", ui.SymbolSuccess, name)
	return nil
}

// patternList prints the stored patterns.
func patternList() error {
	cfg, err := config.LoadOrDefault(config.ExpandTilde(configFlag))
	if err != nil {
		return err
	}
	fmt.Print(renderPatternList(cfg))
	return nil
}

// renderPatternList formats the stored patterns as a name-over-regex tree.
func renderPatternList(cfg *config.Config) string {
	if len(cfg.Patterns) == 0 {
		return "No patterns stored.\n\nAdd one with: baro pattern add\n"
	}

	nameStyle := lipgloss.NewStyle().Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(ui.ColorMuted)

	var b strings.Builder
	for _, p := range cfg.Patterns {
		b.WriteString(nameStyle.Render(p.Name))
		b.WriteString("\n")
		b.WriteString("  " + dimStyle.Render("└─ "+p.Regex))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Run one with: <producer> | baro --pattern <name>"))
	b.WriteString("\n")
	return b.String()
}

// promptPattern collects a pattern name and regex interactively. Values
// already supplied on the command line pre-fill the form.
func promptPattern(name, regex *string) error {
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Pattern name").
				Description("A short word you pass to --pattern").
				Placeholder("latency").
				Value(name).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("pattern name is required")
					}
					if strings.ContainsAny(s, " \t") {
						return fmt.Errorf("pattern name cannot contain whitespace")
					}
					return nil
				}),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Regular expression").
				Description("Wrap each number you want charted in a capture group").
				Placeholder(`took ([0-9.]+)ms`).
				Value(regex).
				Validate(func(s string) error {
					re, err := regexp.Compile(s)
					if err != nil {
						return fmt.Errorf("doesn't compile: %v", err)
					}
					if re.NumSubexp() < 1 {
						return fmt.Errorf("needs at least one capture group")
					}
					return nil
				}),
		),
	)
	if err := form.Run(); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to get user input",
			"Try again or use: baro pattern add <name> <regex>")
	}
	return nil
}

// patternConfigPath returns the file pattern edits apply to: the explicit
// --config path, the config found on the search path, or the default
// location when none exists yet.
func patternConfigPath() (string, error) {
	if configFlag != "" {
		return config.ExpandTilde(configFlag), nil
	}
	path, err := config.Find("")
	if err != nil {
		return "", err
	}
	if path == "" {
		path = filepath.Join(config.Dir(), config.ConfigFileName)
	}
	return path, nil
}

// stdinIsTerminal reports whether stdin is an interactive terminal rather
// than a pipe or a test harness.
func stdinIsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}
