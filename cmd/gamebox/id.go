package main

import (
	"fmt"

	"github.com/arthur-debert/gamebox/pkg/gamebox"
	"github.com/spf13/cobra"
)

func newIDCmd() *cobra.Command {
	var set string

	cmd := &cobra.Command{
		Use:   "id <gamebox>",
		Short: MsgIDShort,
		Long: `Show the gamebox's unique game identifier. With --set, assign a
user-specified identifier instead; the previous one is replaced.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			box, err := openBox(cmd, args[0])
			if err != nil {
				return err
			}

			if set != "" {
				if err := box.SetGameIdentifier(set, gamebox.IdentifierUserSpecified); err != nil {
					return err
				}
				if err := box.Save(); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), MsgIdentifierSet, set)
				return nil
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n",
				box.GameIdentifier(), box.GameIdentifierType())
			return nil
		},
	}

	cmd.Flags().StringVar(&set, "set", "", "Assign this identifier to the gamebox")
	return cmd
}
