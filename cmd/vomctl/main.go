// Command vomctl exercises a VOM facade end to end from the shell: mint
// an instance backed by a SQLite vatstore, read and write its
// properties, flush it to disk, and reanimate it from its durable
// reference in a later invocation.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "vomctl",
	Short: "Inspect and drive a Virtual Object Manager from the shell",
}

var dsnFlag string

func init() {
	rootCmd.PersistentFlags().StringVar(&dsnFlag, "db", "vomctl.sqlite", "vatstore SQLite DSN (use :memory: for a throwaway store)")

	rootCmd.AddCommand(mintCmd)
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(setCmd)
	rootCmd.AddCommand(flushCmd)
	rootCmd.AddCommand(serveCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
