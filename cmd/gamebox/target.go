package main

import (
	"fmt"

	"github.com/arthur-debert/gamebox/pkg/style"
	"github.com/spf13/cobra"
)

func newTargetCmd() *cobra.Command {
	var clear bool

	cmd := &cobra.Command{
		Use:   "target <gamebox> [program]",
		Short: MsgTargetShort,
		Long: `Show the program launched by default. With a program argument, set
it instead; the path is kept relative to the box root and must not
point outside it. With --clear, remove the default target.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			box, err := openBox(cmd, args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			switch {
			case clear:
				if err := box.SetTargetPath(""); err != nil {
					return err
				}
				if err := box.Save(); err != nil {
					return err
				}
				fmt.Fprint(out, MsgTargetCleared)

			case len(args) == 2:
				if err := box.SetTargetPath(args[1]); err != nil {
					return err
				}
				if err := box.Save(); err != nil {
					return err
				}
				fmt.Fprintf(out, MsgTargetSet, box.TargetPath())

			default:
				target := box.TargetPath()
				if target == "" {
					fmt.Fprintln(out, style.MutedStyle.Render("no target program"))
					return nil
				}
				fmt.Fprintln(out, target)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&clear, "clear", false, "Remove the default target program")
	return cmd
}
