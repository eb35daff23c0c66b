package cli

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/Gobd/oasmodel/model"
	"github.com/Gobd/oasmodel/openapi"
)

const (
	defaultAddr     = "localhost:8080"
	docsPrefix      = "/docs/"
	shutdownTimeout = 5 * time.Second
)

type serveOpts struct {
	assembleOpts
	addr string
}

func newServeCmd() *cobra.Command {
	opts := serveOpts{addr: defaultAddr}

	cmd := &cobra.Command{
		Use:   "serve [static-file]",
		Short: "Assemble a document and serve it over HTTP",
		Long: `Serve assembles the document the same way assemble does and serves it at
/docs/openapi.json and /docs/openapi.yaml until interrupted.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, args, opts)
		},
	}

	addSourceFlags(cmd, &opts.assembleOpts)
	cmd.Flags().StringVar(&opts.addr, "addr", defaultAddr, "listen address")

	return cmd
}

func runServe(cmd *cobra.Command, args []string, opts serveOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	doc, _, err := assembleDocument(cmd, args, opts.assembleOpts)
	if err != nil {
		return err
	}
	router, err := newRouter(doc)
	if err != nil {
		return err
	}

	ln, err := net.Listen("tcp", opts.addr)
	if err != nil {
		return err
	}
	srv := &http.Server{Handler: router, ReadHeaderTimeout: 10 * time.Second}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	logger.Info("serving document", "url", "http://"+ln.Addr().String()+docsPrefix)
	if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return ctx.Err()
}

// newRouter mounts the document handler under /docs/ and redirects the root
// to it.
func newRouter(doc *model.OpenAPI) (http.Handler, error) {
	docs, err := openapi.Handler(docsPrefix, doc)
	if err != nil {
		return nil, err
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		http.Redirect(w, req, docsPrefix, http.StatusFound)
	})
	r.Handle(docsPrefix+"*", docs)
	return r, nil
}
