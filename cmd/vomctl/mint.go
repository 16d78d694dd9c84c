package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var mintProps []string

var mintCmd = &cobra.Command{
	Use:   "mint",
	Short: "Mint a new record instance and print its durable reference",
	RunE: func(cmd *cobra.Command, args []string) error {
		props, err := parseAssignments(mintProps)
		if err != nil {
			return err
		}

		s, err := openSession(dsnFlag)
		if err != nil {
			return err
		}

		rec, err := s.record.New(func(r *Record) error {
			for k, v := range props {
				if err := r.set(k, v); err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			_ = s.store.Close()
			return fmt.Errorf("mint: %w", err)
		}

		if err := s.flushAndClose(); err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), rec.h.InstanceKey())
		return nil
	},
}

func init() {
	mintCmd.Flags().StringArrayVar(&mintProps, "set", nil, "initial property as key=value (repeatable)")
}
