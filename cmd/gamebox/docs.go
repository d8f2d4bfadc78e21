package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/gamebox/pkg/gamebox"
	"github.com/arthur-debert/gamebox/pkg/style"
)

func newDocsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "docs",
		Short: MsgDocsShort,
	}

	cmd.AddCommand(newDocsListCmd())
	cmd.AddCommand(newDocsOrganizeCmd())
	cmd.AddCommand(newDocsImportCmd())
	cmd.AddCommand(newDocsLinkCmd())
	cmd.AddCommand(newDocsTrashCmd())
	cmd.AddCommand(newDocsPreviewCmd())
	return cmd
}

func newDocsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list <gamebox>",
		Short: "List the gamebox's documentation",
		Long: `List documentation files. With an organized documentation folder its
contents are shown; otherwise the whole box is searched for
recognized documentation types.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			box, err := openBox(cmd, args[0])
			if err != nil {
				return err
			}

			entries, err := box.DocumentationFiles()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(entries) == 0 {
				fmt.Fprintln(out, MsgNoDocumentation)
				return nil
			}

			for _, entry := range entries {
				name := filepath.Base(entry.Path)
				if entry.IsSymlink {
					name += style.MutedStyle.Render(" -> link")
				}
				fmt.Fprintln(out, style.ListItemStyle.Render(name))
			}
			return nil
		},
	}
}

func newDocsOrganizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "organize <gamebox>",
		Short: "Create and populate the documentation folder",
		Long: `Create the gamebox's documentation folder if it is missing, then seed
it with symbolic references to documentation found elsewhere in the
box. Already-organized boxes only gain references to newly found
files; existing contents are never touched.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			box, err := openBox(cmd, args[0])
			if err != nil {
				return err
			}

			folder, err := box.DocumentationFolder(true)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), MsgDocsOrganized, folder)
			return nil
		},
	}
}

func newDocsImportCmd() *cobra.Command {
	return newDocsAddCmd("import", "Copy a file into the documentation folder", false)
}

func newDocsLinkCmd() *cobra.Command {
	return newDocsAddCmd("link", "Add a symbolic reference to the documentation folder", true)
}

func newDocsAddCmd(use, short string, asSymlink bool) *cobra.Command {
	var (
		title   string
		replace bool
	)

	cmd := &cobra.Command{
		Use:   use + " <gamebox> <file>",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			box, err := openBox(cmd, args[0])
			if err != nil {
				return err
			}

			conflict := gamebox.ConflictRename
			if replace {
				conflict = gamebox.ConflictReplace
			}

			var dest string
			if asSymlink {
				dest, err = box.AddDocumentationSymlink(args[1], title, conflict)
			} else {
				dest, err = box.AddDocumentationFile(args[1], title, conflict)
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), MsgDocImported, filepath.Base(dest))
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Destination filename (source extension is kept when omitted)")
	cmd.Flags().BoolVar(&replace, "replace", false, "Trash an existing file with the same name instead of renaming")
	return cmd
}

func newDocsTrashCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "trash <gamebox> <file>",
		Short: "Move a documentation file to the trash",
		Long: `Move a file out of the documentation folder into the trash. Only
direct children of the documentation folder qualify; everything else
is refused untouched.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			box, err := openBox(cmd, args[0])
			if err != nil {
				return err
			}

			path := args[1]
			if !filepath.IsAbs(path) {
				path = filepath.Join(box.DocumentationFolderPath(), path)
			}
			if _, err := box.TrashDocumentation(path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), MsgDocTrashed, filepath.Base(path))
			return nil
		},
	}
}

func newDocsPreviewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "preview <gamebox> <file>",
		Short: "Render a documentation file in the terminal",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			box, err := openBox(cmd, args[0])
			if err != nil {
				return err
			}

			path := args[1]
			if !filepath.IsAbs(path) {
				path = filepath.Join(box.DocumentationFolderPath(), path)
			}
			content, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), renderDocumentation(string(content), filepath.Ext(path)))
			return nil
		},
	}
}

// renderDocumentation renders markdown documentation with glamour; any
// other format is passed through untouched.
func renderDocumentation(content, ext string) string {
	if !strings.EqualFold(ext, ".md") {
		return content
	}

	renderer, err := glamour.NewTermRenderer(glamour.WithAutoStyle())
	if err != nil {
		return content
	}
	rendered, err := renderer.Render(content)
	if err != nil {
		return content
	}
	return rendered
}
