package cli

import (
	"github.com/spf13/cobra"

	"github.com/Gobd/oasmodel/oasio"
	"github.com/Gobd/oasmodel/tree"
)

type convertOpts struct {
	output string
	format string
}

func newConvertCmd() *cobra.Command {
	var opts convertOpts

	cmd := &cobra.Command{
		Use:   "convert [file]",
		Short: "Rewrite a document as JSON or YAML",
		Long: `Convert reads a document and writes it back in canonical property order.
Without --format a JSON file becomes YAML and anything else becomes JSON.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "output format: json or yaml")

	return cmd
}

func runConvert(cmd *cobra.Command, path string, opts convertOpts) error {
	logger := loggerFromContext(cmd.Context())

	fallback := tree.JSON
	if tree.FormatOf(path) == tree.JSON {
		fallback = tree.YAML
	}
	format, err := outputFormat(opts.format, opts.output, fallback)
	if err != nil {
		return err
	}

	n, err := tree.ParseFile(path)
	if err != nil {
		return err
	}
	rw := oasio.New(oasio.WithLogger(logger))
	doc, err := rw.ReadDocument(n)
	if err != nil {
		return err
	}
	data, err := rw.Marshal(doc, format)
	if err != nil {
		return err
	}
	logger.Debug("converted", "path", path, "format", format)
	return writeOutput(cmd, opts.output, data)
}
