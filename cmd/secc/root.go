package main

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/bjaus/secc"
	"github.com/bjaus/secc/internal/clipboard"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var version = "1.0.0"

const examples = `  secc "New Section"
  secc "Database Setup" -w 80 -c "=" -s left
  secc "API Routes" --width 120 --style right
  secc "Debug Section" --no-clipboard
  SECC_WIDTH=80 secc "Handlers" -o json`

// command holds what one invocation needs. Config values are read through
// viper so flags win over SECC_* environment variables.
type command struct {
	cfg    *viper.Viper
	stdout io.Writer
	stderr io.Writer
	copier clipboard.Copier
	log    *slog.Logger
}

func newRootCmd(stdout, stderr io.Writer, copier clipboard.Copier) *cobra.Command {
	c := &command{
		cfg:    viper.New(),
		stdout: stdout,
		stderr: stderr,
		copier: copier,
	}

	cmd := &cobra.Command{
		Use:           "secc <text>",
		Short:         "Generate formatted section comments for code",
		Example:       examples,
		Version:       version,
		Args:          cobra.ExactArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(_ *cobra.Command, args []string) error {
			c.log = newLogger(stderr, c.cfg.GetBool("verbose"))
			return c.run(args[0])
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	flags := cmd.Flags()
	flags.StringP("width", "w", strconv.Itoa(secc.DefaultWidth), "Width of the comment block")
	flags.StringP("char", "c", string(secc.DefaultChar), "Character to use for borders")
	flags.StringP("style", "s", secc.DefaultStyle.String(), "Text alignment (center|left|right)")
	flags.StringP("output", "o", secc.Plain.String(), "Output format (plain|json|yaml|go-template=<tmpl>)")
	flags.Bool("no-clipboard", false, "Don't copy to clipboard")
	flags.BoolP("verbose", "v", false, "Log debug details to stderr")

	flags.VisitAll(func(f *pflag.Flag) {
		if err := c.cfg.BindPFlag(f.Name, f); err != nil {
			panic(err)
		}
	})
	c.cfg.SetEnvPrefix("secc")
	c.cfg.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	c.cfg.AutomaticEnv()

	return cmd
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func (c *command) run(text string) error {
	req, format, err := c.request(text)
	if err != nil {
		return err
	}

	block, err := secc.Render(req)
	if err != nil {
		return err
	}
	c.log.Debug("rendered section comment",
		"width", block.Width, "char", block.Char, "style", block.Style, "output", format)
	if cols := block.Columns(); cols > block.Width {
		c.log.Warn("block is wider on screen than requested", "width", block.Width, "columns", cols)
	}

	if err := secc.Write(c.stdout, format, block); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	if c.cfg.GetBool("no-clipboard") {
		c.log.Debug("clipboard disabled")
		return nil
	}
	if err := c.copy(block.String()); err != nil {
		c.log.Debug("clipboard copy failed", "error", err)
		fmt.Fprintf(c.stderr, "⚠ Warning: Failed to copy to clipboard: %v\n", err)
		fmt.Fprintln(c.stdout, "\n⚠ Printed to terminal (clipboard copy failed)")
		return nil
	}
	fmt.Fprintln(c.stdout, "\n✓ Copied to clipboard!")
	return nil
}

// request validates the configured options in order: width, char, style,
// output format. The parsed values are checked again as a whole through
// [secc.Request.Validate].
func (c *command) request(text string) (secc.Request, secc.Format, error) {
	req := secc.DefaultRequest(text)

	var err error
	if req.Width, err = secc.ParseWidth(c.cfg.GetString("width")); err != nil {
		return secc.Request{}, "", err
	}
	if req.Char, err = secc.ParseChar(c.cfg.GetString("char")); err != nil {
		return secc.Request{}, "", err
	}
	if req.Style, err = secc.ParseStyle(c.cfg.GetString("style")); err != nil {
		return secc.Request{}, "", err
	}
	format, err := secc.ParseFormat(c.cfg.GetString("output"))
	if err != nil {
		return secc.Request{}, "", err
	}
	if err := req.Validate(); err != nil {
		return secc.Request{}, "", err
	}
	return req, format, nil
}

// copy never lets a clipboard failure escape, panics included.
func (c *command) copy(text string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%v", r)
		}
	}()
	return c.copier.Copy(text)
}
