package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Gobd/oasmodel/kinopenapi"
	"github.com/Gobd/oasmodel/model"
	"github.com/Gobd/oasmodel/oasio"
	"github.com/Gobd/oasmodel/tree"
	"github.com/Gobd/oasmodel/validate"
)

type validateOpts struct {
	kin bool // also run the kin-openapi validator
}

func newValidateCmd() *cobra.Command {
	var opts validateOpts

	cmd := &cobra.Command{
		Use:   "validate [file]",
		Short: "Check a document for structural errors",
		Long: `Validate checks required fields, URLs, duplicate operation ids and
unresolved references. Bare references are expanded first, the same way
assemble does. With --kin the document is also loaded and validated by
kin-openapi.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, args[0], opts)
		},
	}

	cmd.Flags().BoolVar(&opts.kin, "kin", false, "also validate with kin-openapi")

	return cmd
}

func runValidate(cmd *cobra.Command, path string, opts validateOpts) error {
	logger := loggerFromContext(cmd.Context())

	n, err := tree.ParseFile(path)
	if err != nil {
		return err
	}
	doc, err := oasio.New(oasio.WithLogger(logger)).ReadDocument(n)
	if err != nil {
		return err
	}
	model.ResolveReferences(doc)

	if err := validate.Document(doc); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	if opts.kin {
		logger.Debug("validating with kin-openapi", "path", path)
		if err := kinopenapi.Validate(cmd.Context(), doc); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s is valid\n", path)
	return nil
}
