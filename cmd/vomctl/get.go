package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var getCmd = &cobra.Command{
	Use:   "get <vref> <prop>",
	Short: "Print a property of a virtual object instance, reanimating it if needed",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		vref, prop := args[0], args[1]

		s, err := openSession(dsnFlag)
		if err != nil {
			return err
		}

		rep, repErr := s.v.MakeRepresentative(vref)
		var value string
		var getErr error
		if repErr == nil {
			value, getErr = rep.(*Record).get(prop)
		}

		if err := s.flushAndClose(); err != nil {
			return err
		}
		if repErr != nil {
			return fmt.Errorf("get: %w", repErr)
		}
		if getErr != nil {
			return fmt.Errorf("get: %w", getErr)
		}
		fmt.Fprintln(cmd.OutOrStdout(), value)
		return nil
	},
}
