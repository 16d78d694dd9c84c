package main

import (
	"github.com/spf13/cobra"
)

var flushCmd = &cobra.Command{
	Use:   "flush",
	Short: "Open the vatstore and flush (a no-op beyond validating the store opens cleanly)",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession(dsnFlag)
		if err != nil {
			return err
		}
		return s.flushAndClose()
	},
}
