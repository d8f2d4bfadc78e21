package main

import (
	"fmt"

	"github.com/arthur-debert/gamebox/pkg/style"
	"github.com/spf13/cobra"
)

func newLaunchersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "launchers",
		Short: MsgLaunchersShort,
	}

	cmd.AddCommand(newLaunchersListCmd())
	cmd.AddCommand(newLaunchersAddCmd())
	cmd.AddCommand(newLaunchersRemoveCmd())
	cmd.AddCommand(newLaunchersDefaultCmd())
	return cmd
}

func newLaunchersListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list <gamebox>",
		Short: "List the gamebox's launchers in order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			box, err := openBox(cmd, args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			launchers := box.Launchers()
			if len(launchers) == 0 {
				fmt.Fprintln(out, MsgNoLaunchers)
				return nil
			}

			for i, launcher := range launchers {
				marker := " "
				if launcher.IsDefault {
					marker = style.DefaultMarkerStyle.Render("*")
				}
				line := fmt.Sprintf("%s %d. %s  %s", marker, i,
					style.SubtitleStyle.Render(launcher.Title), launcher.Path)
				if launcher.Arguments != "" {
					line += " " + style.MutedStyle.Render(launcher.Arguments)
				}
				fmt.Fprintln(out, line)
			}
			return nil
		},
	}
}

func newLaunchersAddCmd() *cobra.Command {
	var (
		arguments string
		index     int
		isDefault bool
	)

	cmd := &cobra.Command{
		Use:   "add <gamebox> <title> <program>",
		Short: "Add a launcher to the gamebox",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			box, err := openBox(cmd, args[0])
			if err != nil {
				return err
			}
			title, program := args[1], args[2]

			if index >= 0 {
				if err := box.InsertLauncherWithFields(title, program, arguments, index); err != nil {
					return err
				}
			} else {
				box.AddLauncherWithFields(title, program, arguments)
			}
			if isDefault {
				target := index
				if target < 0 {
					target = len(box.Launchers()) - 1
				}
				if err := box.SetDefaultLauncherIndex(target); err != nil {
					return err
				}
			}
			if err := box.Save(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), MsgLauncherAdded, title)
			return nil
		},
	}

	cmd.Flags().StringVar(&arguments, "args", "", "Command-line arguments passed to the program")
	cmd.Flags().IntVar(&index, "at", -1, "Insert at this position instead of appending")
	cmd.Flags().BoolVar(&isDefault, "default", false, "Make this the default launcher")
	return cmd
}

func newLaunchersRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <gamebox> <index>",
		Short: "Remove the launcher at the given index",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			box, err := openBox(cmd, args[0])
			if err != nil {
				return err
			}
			index, err := parseIndex(args[1])
			if err != nil {
				return err
			}

			if err := box.RemoveLauncherAt(index); err != nil {
				return err
			}
			if err := box.Save(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), MsgLauncherRemoved, index)
			return nil
		},
	}
}

func newLaunchersDefaultCmd() *cobra.Command {
	var clear bool

	cmd := &cobra.Command{
		Use:   "default <gamebox> [index]",
		Short: "Show or set the default launcher",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			box, err := openBox(cmd, args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			switch {
			case clear:
				if err := box.SetDefaultLauncherIndex(-1); err != nil {
					return err
				}
				if err := box.Save(); err != nil {
					return err
				}
				fmt.Fprint(out, MsgDefaultCleared)

			case len(args) == 2:
				index, err := parseIndex(args[1])
				if err != nil {
					return err
				}
				if err := box.SetDefaultLauncherIndex(index); err != nil {
					return err
				}
				if err := box.Save(); err != nil {
					return err
				}
				fmt.Fprintf(out, MsgDefaultSet, index)

			default:
				launcher, ok := box.DefaultLauncher()
				if !ok {
					fmt.Fprintln(out, style.MutedStyle.Render("no default launcher"))
					return nil
				}
				fmt.Fprintf(out, "%d. %s  %s\n",
					box.DefaultLauncherIndex(), launcher.Title, launcher.Path)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&clear, "clear", false, "Clear the default launcher")
	return cmd
}
