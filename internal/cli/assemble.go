package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Gobd/oasmodel"
	"github.com/Gobd/oasmodel/model"
	"github.com/Gobd/oasmodel/oasio"
	"github.com/Gobd/oasmodel/tree"
)

type assembleOpts struct {
	config  string   // TOML configuration file
	output  string   // output file, stdout when empty
	format  string   // json or yaml, overrides the configured format
	merge   string   // override or deep, overrides the configured strategy
	include []string // profiles to keep
	exclude []string // profiles to drop
}

func newAssembleCmd() *cobra.Command {
	var opts assembleOpts

	cmd := &cobra.Command{
		Use:   "assemble [static-file]",
		Short: "Assemble a document from a static file and configuration",
		Long: `Assemble reads the static OpenAPI document, applies the overrides of the
configuration file, removes hidden objects, filters operations by profile and
expands bare references. The static file argument wins over static_file in
the configuration.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAssemble(cmd, args, opts)
		},
	}

	addSourceFlags(cmd, &opts)
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "output format: json or yaml")

	return cmd
}

func runAssemble(cmd *cobra.Command, args []string, opts assembleOpts) error {
	logger := loggerFromContext(cmd.Context())
	prog := newProgress(logger)

	doc, cfg, err := assembleDocument(cmd, args, opts)
	if err != nil {
		return err
	}
	format, err := outputFormat(opts.format, opts.output, cfg.OutputFormat())
	if err != nil {
		return err
	}

	data, err := oasio.New(oasio.WithLogger(logger)).Marshal(doc, format)
	if err != nil {
		return err
	}
	if err := writeOutput(cmd, opts.output, data); err != nil {
		return err
	}
	prog.done("Assembled document")
	return nil
}

// assembleDocument loads the configuration, applies the flags on top of it
// and assembles the document.
func assembleDocument(cmd *cobra.Command, args []string, opts assembleOpts) (*model.OpenAPI, *oasmodel.Config, error) {
	logger := loggerFromContext(cmd.Context())

	cfg := &oasmodel.Config{}
	if opts.config != "" {
		logger.Debug("loading config", "path", opts.config)
		c, err := oasmodel.LoadConfig(opts.config)
		if err != nil {
			return nil, nil, err
		}
		cfg = c
	}
	if len(args) == 1 {
		cfg.Document.StaticFile = args[0]
	}
	if opts.merge != "" {
		cfg.Document.Merge = opts.merge
	}
	cfg.Profiles.Include = append(cfg.Profiles.Include, opts.include...)
	cfg.Profiles.Exclude = append(cfg.Profiles.Exclude, opts.exclude...)
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	if opts.format != "" {
		if _, err := tree.ParseFormat(opts.format); err != nil {
			return nil, nil, err
		}
	}

	doc, err := oasmodel.New(oasmodel.WithConfig(cfg), oasmodel.WithLogger(logger)).Assemble()
	if err != nil {
		return nil, nil, fmt.Errorf("assemble: %w", err)
	}
	return doc, cfg, nil
}

// addSourceFlags registers the flags shared by the commands that assemble a
// document.
func addSourceFlags(cmd *cobra.Command, opts *assembleOpts) {
	cmd.Flags().StringVarP(&opts.config, "config", "c", "", "TOML configuration file")
	cmd.Flags().StringVar(&opts.merge, "merge", "", "merge strategy: override or deep")
	cmd.Flags().StringSliceVar(&opts.include, "include", nil, "keep only operations with these profiles")
	cmd.Flags().StringSliceVar(&opts.exclude, "exclude", nil, "drop operations with these profiles")
}
