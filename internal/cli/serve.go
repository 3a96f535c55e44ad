package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/stacklayout/pkg/buildinfo"
	"github.com/matzehuels/stacklayout/pkg/server"
)

// serveCommand creates the serve command for the HTTP layout API.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr    string
		maxBody int64
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the layout pipeline over HTTP",
		Long: `Serve the layout pipeline over HTTP.

Endpoints:
  GET  /healthz     liveness probe
  POST /v1/layout   lay out the posted document (?width, ?format, ?measurer, ?scale, ?detailed)

The server shuts down gracefully on interrupt.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			srv := server.New(c.newRunner(), c.Logger)
			if maxBody > 0 {
				srv.MaxBodyBytes = maxBody
			}
			out := cmd.OutOrStdout()
			printInfo(out, "%s %s listening on %s", appName, buildinfo.Short(), addr)
			printKeyValue(out, "layout", "POST http://"+displayAddr(addr)+"/v1/layout")
			return srv.ListenAndServe(cmd.Context(), addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", defaultAddr, "listen address")
	cmd.Flags().Int64Var(&maxBody, "max-body", server.DefaultMaxBodyBytes, "maximum request body size in bytes")

	return cmd
}

// displayAddr turns a listen address such as ":8080" into a dialable host.
func displayAddr(addr string) string {
	if len(addr) > 0 && addr[0] == ':' {
		return "localhost" + addr
	}
	return addr
}
