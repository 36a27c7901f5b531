package main

import (
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/katalvlaran/lvunits/quantity"
	"github.com/katalvlaran/lvunits/systems"
	"github.com/katalvlaran/lvunits/units"
	"github.com/katalvlaran/lvunits/unitsys"
	"github.com/spf13/cobra"
)

type options struct {
	grammar   string
	system    string
	defs      string
	logLevel  string
	precision int
}

func rootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   appName,
		Short: "Parse, convert and inspect physical quantities",
		Long: `lvunits parses quantity expressions such as "1.5 kg*m/s^2",
"6 ft 4 in" or the UCUM code "kg.m/s2" and converts between compatible units.

Conversions between exactly defined units (inch, pound, liter, ...) are
carried out in exact rational arithmetic.`,
		SilenceUsage: true,
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&opts.grammar, "grammar", "g", units.Standard.String(), "Grammar (standard, metric, ucum)")
	pf.StringVar(&opts.system, "system", "", "Stock unit system (standard, si, ucum); defaults to the grammar's")
	pf.StringVar(&opts.defs, "defs", "", "Extra YAML definition files (glob, ** allowed)")
	pf.StringVar(&opts.logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")

	cmd.AddCommand(
		parseCmd(opts),
		convertCmd(opts),
		unitsCmd(opts),
		&cobra.Command{
			Use:   "version",
			Short: "Print version information",
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Fprintf(cmd.OutOrStdout(), "%s version %s (build: %s)\n", appName, Version, BuildTime)
			},
		},
	)

	return cmd
}

func parseCmd(opts *options) *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:   "parse <quantity>...",
		Short: "Parse a quantity and print it in canonical form",
		Example: `  lvunits parse "6 ft 4 in"
  lvunits parse -g ucum "1 m3.kg-1.s-2"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := opts.engine(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			q, err := e.Parse(strings.Join(args, " "))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, opts.render(q))
			if verbose {
				base, err := q.Reduce()
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "kind:  %s\nbase:  %s\n", kindOrDash(q.Kind()), opts.render(base))
			}

			return nil
		},
	}
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Also print the kind and the base-unit form")
	cmd.Flags().IntVarP(&opts.precision, "precision", "p", -1, "Decimal places; -1 prints the exact value")

	return cmd
}

func convertCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "convert <quantity> <unit>",
		Short:   "Convert a quantity to compatible units",
		Example: `  lvunits convert "1 m" ft`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := opts.engine(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			q, err := e.Parse(args[0])
			if err != nil {
				return err
			}
			out, err := e.ConvertTo(q, args[1])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), opts.render(out))

			return nil
		},
	}
	cmd.Flags().IntVarP(&opts.precision, "precision", "p", -1, "Decimal places; -1 prints the exact value")

	return cmd
}

func unitsCmd(opts *options) *cobra.Command {
	var (
		kind     string
		prefixes bool
	)
	cmd := &cobra.Command{
		Use:   "units",
		Short: "List the units (or prefixes) of the unit system",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := opts.engine(cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			defs := e.System().Units()
			if prefixes {
				defs = e.System().Prefixes()
			}
			sort.Slice(defs, func(i, j int) bool { return defs[i].Name() < defs[j].Name() })

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tSYMBOL\tKIND\tALIASES")
			for _, d := range defs {
				if kind != "" && string(d.Kind()) != kind {
					continue
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", d.Name(), d.DisplayName(), kindOrDash(d.Kind()),
					strings.Join(d.Aliases(), ", "))
			}

			return tw.Flush()
		},
	}
	cmd.Flags().StringVar(&kind, "kind", "", "Only list units of this kind")
	cmd.Flags().BoolVar(&prefixes, "prefixes", false, "List prefixes instead of units")

	return cmd
}

// engine builds the unit system and engine selected by the flags.
func (o *options) engine(logOut io.Writer) (*units.Engine, error) {
	logger := newLogger(logOut, o.logLevel)

	variant, err := units.ParseVariant(o.grammar)
	if err != nil {
		return nil, err
	}
	name := o.system
	if name == "" {
		name = variant.DefaultSystem()
	}

	b, err := systems.Builder(name, unitsys.WithLogger(logger))
	if err != nil {
		return nil, err
	}
	if o.defs != "" {
		files, err := b.LoadFiles(o.defs)
		if err != nil {
			return nil, err
		}
		if len(files) == 0 {
			return nil, fmt.Errorf("--defs %q matched no files", o.defs)
		}
		logger.Info("loaded definition files", "count", len(files))
	}
	sys, err := systems.Build(b)
	if err != nil {
		return nil, err
	}

	return units.NewEngine(sys, variant, units.WithLogger(logger))
}

func (o *options) render(q quantity.Quantity) string {
	if o.precision < 0 {
		return q.String()
	}

	return fmt.Sprintf("%.*f", o.precision, q)
}

func newLogger(w io.Writer, level string) *slog.Logger {
	lvl := slog.LevelWarn
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "info":
		lvl = slog.LevelInfo
	case "error":
		lvl = slog.LevelError
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}

func kindOrDash(k unitsys.Kind) string {
	if k == "" {
		return "-"
	}

	return string(k)
}
