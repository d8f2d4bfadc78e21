package main

import (
	"fmt"
	"path/filepath"

	"github.com/arthur-debert/gamebox/pkg/classify"
	"github.com/arthur-debert/gamebox/pkg/style"
	"github.com/spf13/cobra"
)

func newScanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scan <gamebox>",
		Short: MsgScanShort,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			box, err := openBox(cmd, args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			executables, err := box.Executables()
			if err != nil {
				return err
			}
			fmt.Fprintln(out, style.SubtitleStyle.Render("Executables"))
			if len(executables) == 0 {
				fmt.Fprintln(out, style.ListItemStyle.Render(MsgNoExecutables))
			}
			for _, exe := range executables {
				rel, err := filepath.Rel(box.Path(), exe)
				if err != nil {
					rel = exe
				}
				fmt.Fprintln(out, style.ListItemStyle.Render(rel))
			}

			volumes, err := box.VolumesOfKinds()
			if err != nil {
				return err
			}
			fmt.Fprintln(out, style.SubtitleStyle.Render("Volumes"))
			total := 0
			for _, kind := range classify.AllVolumeKinds() {
				for _, volume := range volumes[kind] {
					rel, err := filepath.Rel(box.Path(), volume)
					if err != nil {
						rel = volume
					}
					fmt.Fprintf(out, "  %s  %s\n", rel, style.MutedStyle.Render(string(kind)))
					total++
				}
			}
			if total == 0 {
				fmt.Fprintln(out, style.ListItemStyle.Render(MsgNoVolumes))
			}
			return nil
		},
	}
}
