package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/nro337/docparse/internal/server"
	"github.com/nro337/docparse/pkg/types"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the paper collection web interface",
	Long: `Serve starts the web interface: a browser page for adding, browsing,
deleting, and exporting papers, backed by a JSON API under /api/.
The server shuts down gracefully on SIGINT or SIGTERM.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().String("addr", ":5000", "listen address")
	serveCmd.Flags().String("store", "papers_data.json", "path to the JSON storage file")
	serveCmd.Flags().String("export-dir", ".", "directory export files are written to")
	serveCmd.Flags().Duration("timeout", defaultTimeout, "HTTP request timeout for document fetches")
	serveCmd.Flags().Duration("shutdown-timeout", 10*time.Second, "graceful shutdown timeout")

	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	s, err := openStore(cmd)
	if err != nil {
		return err
	}

	srv := server.New(s, newIngestor(cmd, s), types.ExportConfig{
		Dir:    settingString(cmd, "export-dir", "export.dir"),
		Format: types.FormatMarkdown,
	})

	return srv.Run(types.ServerConfig{
		Addr:            settingString(cmd, "addr", "server.addr"),
		ShutdownTimeout: settingDuration(cmd, "shutdown-timeout", "server.shutdown_timeout"),
	})
}
