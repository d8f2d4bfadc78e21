package main

import (
	"fmt"

	"github.com/arthur-debert/gamebox/pkg/style"
	"github.com/spf13/cobra"
)

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <gamebox>",
		Short: MsgInfoShort,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			box, err := openBox(cmd, args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, style.TitleStyle.Render(box.Name()))
			fmt.Fprintln(out, style.PathStyle.Render(box.Path()))
			fmt.Fprintln(out)

			fmt.Fprintf(out, "  identifier:    %s (%s)\n",
				box.GameIdentifier(), box.GameIdentifierType())

			target := box.TargetPath()
			if target == "" {
				target = style.MutedStyle.Render("none")
			}
			fmt.Fprintf(out, "  target:        %s\n", target)
			fmt.Fprintf(out, "  close on exit: %t\n", box.CloseOnExit())

			launchers := box.Launchers()
			defaultNote := ""
			if launcher, ok := box.DefaultLauncher(); ok {
				defaultNote = fmt.Sprintf(" (default: %s)", launcher.Title)
			}
			fmt.Fprintf(out, "  launchers:     %d%s\n", len(launchers), defaultNote)

			docs, err := box.DocumentationFiles()
			if err != nil {
				return err
			}
			docState := "autodiscovered"
			if box.HasDocumentationFolder() {
				docState = "organized"
			}
			fmt.Fprintf(out, "  documentation: %d files (%s)\n", len(docs), docState)

			if config := box.ConfigurationFile(); config != "" {
				fmt.Fprintf(out, "  configuration: %s\n", config)
			}
			if art, err := box.CoverArt(); err == nil && art != nil {
				fmt.Fprintf(out, "  cover art:     %d bytes\n", len(art))
			}
			return nil
		},
	}
}
