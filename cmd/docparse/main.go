// Package main is the entry point for the docparse CLI.
package main

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/nro337/docparse/internal/convert"
	"github.com/nro337/docparse/internal/ingest"
	"github.com/nro337/docparse/internal/store"
	"github.com/nro337/docparse/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

const (
	defaultTimeout   = 60 * time.Second
	defaultUserAgent = "docparse/0.1"
)

// rootCmd is the base command for the docparse CLI.
var rootCmd = &cobra.Command{
	Use:   "docparse",
	Short: "Collect academic papers and extract their titles and abstracts",
	Long: `docparse manages a local collection of academic papers. Given a URL,
arXiv ID, or DOI it fetches the document, converts it to Markdown,
extracts the title and abstract, and stores the entry in a JSON file.

The collection can be browsed and exported from the command line or
through the web interface started by "docparse serve".`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./docparse.yaml or ~/.config/docparse/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("docparse")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "docparse"))
		}
	}

	viper.SetEnvPrefix("DOCPARSE")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// settingString resolves a string setting: an explicitly set flag wins,
// then the viper key (config file or DOCPARSE_* env), then the flag default.
func settingString(cmd *cobra.Command, flag, key string) string {
	if !cmd.Flags().Changed(flag) && viper.IsSet(key) {
		return viper.GetString(key)
	}
	v, _ := cmd.Flags().GetString(flag)
	return v
}

// settingDuration resolves a duration setting with the same precedence
// as settingString.
func settingDuration(cmd *cobra.Command, flag, key string) time.Duration {
	if !cmd.Flags().Changed(flag) && viper.IsSet(key) {
		return viper.GetDuration(key)
	}
	v, _ := cmd.Flags().GetDuration(flag)
	return v
}

// openStore opens the paper store configured on cmd.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	return store.Open(types.StoreConfig{
		Path: settingString(cmd, "store", "store.path"),
	})
}

// newIngestor builds the add-paper pipeline around s.
func newIngestor(cmd *cobra.Command, s *store.Store) *ingest.Ingestor {
	httpCfg := types.HTTPConfig{
		Timeout:   settingDuration(cmd, "timeout", "http.timeout"),
		UserAgent: defaultUserAgent,
	}
	client := &http.Client{Timeout: httpCfg.Timeout}
	return ingest.New(client, convert.NewAuto(), s, httpCfg)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
