package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var setCmd = &cobra.Command{
	Use:   "set <vref> <prop> <value>",
	Short: "Write a property of an existing virtual object instance",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		vref, prop, value := args[0], args[1], args[2]

		s, err := openSession(dsnFlag)
		if err != nil {
			return err
		}

		rep, repErr := s.v.MakeRepresentative(vref)
		var setErr error
		if repErr == nil {
			setErr = rep.(*Record).set(prop, value)
		}

		if err := s.flushAndClose(); err != nil {
			return err
		}
		if repErr != nil {
			return fmt.Errorf("set: %w", repErr)
		}
		return setErr
	},
}
