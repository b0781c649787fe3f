// Package commands implements the CLI commands for casset.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/casset/internal/app"
	"go.trai.ch/casset/internal/build"
	"go.trai.ch/casset/internal/core/domain"
	"go.trai.ch/zerr"
)

// CLI represents the command line interface for casset.
type CLI struct {
	app      Application
	rootCmd  *cobra.Command
	shutdown func(context.Context) error
}

// Application represents the application logic interface.
type Application interface {
	Render(ctx context.Context, w io.Writer, groups []string, opts app.RenderOptions) error
	Filepath(ctx context.Context, w io.Writer, pattern string, t domain.AssetType, addURL bool) error
	Img(ctx context.Context, w io.Writer, patterns []string, alt string, attrs map[string]string) error
	Clean(ctx context.Context, opts app.CleanOptions) error
	Publish(ctx context.Context, groups []string, types []domain.AssetType) error
	ConfigureLogging(json, quiet bool)
	EnableTracing() func(context.Context) error
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "casset",
		Short:         "Group, combine and minify CSS and JavaScript assets",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().Bool("json-logs", false, "Write logs as JSON")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "Only log warnings and errors")
	rootCmd.PersistentFlags().Bool("trace", false, "Log every finished pipeline span")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		jsonLogs, _ := cmd.Flags().GetBool("json-logs")
		quiet, _ := cmd.Flags().GetBool("quiet")
		c.app.ConfigureLogging(jsonLogs, quiet)

		if trace, _ := cmd.Flags().GetBool("trace"); trace {
			c.shutdown = c.app.EnableTracing()
		}
	}

	rootCmd.AddCommand(c.newRenderCmd())
	rootCmd.AddCommand(c.newFilepathCmd())
	rootCmd.AddCommand(c.newImgCmd())
	rootCmd.AddCommand(c.newCleanCmd())
	rootCmd.AddCommand(c.newPublishCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
// Spans still buffered by the tracer are flushed before it returns.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	err := c.rootCmd.Execute()
	if c.shutdown != nil {
		_ = c.shutdown(context.WithoutCancel(ctx))
		c.shutdown = nil
	}
	return err
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

// parseTypes turns a --type value into asset types. "all" and "" mean every bundled type.
func parseTypes(s string) ([]domain.AssetType, error) {
	if s == "" || s == "all" {
		return nil, nil
	}
	t, err := domain.ParseAssetType(s)
	if err != nil {
		return nil, err
	}
	if !t.Bundled() {
		return nil, zerr.With(domain.ErrUnknownAssetType, "type", s)
	}
	return []domain.AssetType{t}, nil
}
