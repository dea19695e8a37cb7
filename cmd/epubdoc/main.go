package main

import (
	"fmt"
	"os"
	"sort"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"epubdoc/internal/epub"
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: false,
	Prefix:          "epubdoc",
})

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "epubdoc",
		Short: "Inspect EPUB documents from the command line",
		Long: `epubdoc opens an EPUB container, resolves its package file, and
exposes the manifest, reading order, metadata, and resources.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
				logger.SetLevel(log.DebugLevel)
			}
		},
	}

	root.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")

	root.AddCommand(newInfoCmd())
	root.AddCommand(newSpineCmd())
	root.AddCommand(newReadCmd())
	root.AddCommand(newExtractCmd())
	root.AddCommand(newCoverCmd())

	return root
}

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <epub-file>",
		Short: "Print the document metadata",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := openDoc(args[0])
			if err != nil {
				return err
			}
			defer doc.Close()

			keys := make([]string, 0, len(doc.Metadata))
			for k := range doc.Metadata {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			for _, k := range keys {
				fmt.Printf("%s: %s\n", k, doc.Metadata[k])
			}
			return nil
		},
	}
}

func newSpineCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "spine <epub-file>",
		Short: "List the reading order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := openDoc(args[0])
			if err != nil {
				return err
			}
			defer doc.Close()

			for i, id := range doc.Spine {
				line := fmt.Sprintf("%3d  %s", i, id)
				if res, ok := doc.Resources[id]; ok {
					line += "  " + res.Path
				}
				fmt.Println(line)
			}
			return nil
		},
	}
}

func newReadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "read <epub-file> [page]",
		Short: "Print a chapter as plain text",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := openDoc(args[0])
			if err != nil {
				return err
			}
			defer doc.Close()

			if len(args) == 2 {
				page, err := parsePage(args[1])
				if err != nil {
					return err
				}
				if err := doc.SetPage(page); err != nil {
					return err
				}
			}

			content, err := doc.CurrentContent()
			if err != nil {
				return err
			}
			logger.Debug("loaded chapter", "id", content.ID, "path", content.Path)

			fmt.Println(content.Text())
			return nil
		},
	}
}

func newExtractCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "extract <epub-file> <resource-id>",
		Short: "Write a resource's bytes to a file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			output, _ := cmd.Flags().GetString("output")

			doc, err := openDoc(args[0])
			if err != nil {
				return err
			}
			defer doc.Close()

			data, err := doc.Resource(args[1])
			if err != nil {
				return err
			}

			if output == "" {
				_, err = os.Stdout.Write(data)
				return err
			}
			if err := os.WriteFile(output, data, 0o644); err != nil {
				return fmt.Errorf("failed to write %s: %w", output, err)
			}
			logger.Info("extracted", "id", args[1], "output", output, "bytes", len(data))
			return nil
		},
	}
	cmd.Flags().StringP("output", "o", "", "Output file path (default: stdout)")
	return cmd
}

func newCoverCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cover <epub-file>",
		Short: "Extract the cover image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output, _ := cmd.Flags().GetString("output")
			width, _ := cmd.Flags().GetInt("width")

			doc, err := openDoc(args[0])
			if err != nil {
				return err
			}
			defer doc.Close()

			var data []byte
			if width > 0 {
				data, err = doc.CoverThumbnail(width)
			} else {
				data, err = doc.Cover()
			}
			if err != nil {
				return err
			}

			if output == "" {
				_, err = os.Stdout.Write(data)
				return err
			}
			if err := os.WriteFile(output, data, 0o644); err != nil {
				return fmt.Errorf("failed to write %s: %w", output, err)
			}
			logger.Info("cover written", "output", output, "bytes", len(data))
			return nil
		},
	}
	cmd.Flags().StringP("output", "o", "", "Output file path (default: stdout)")
	cmd.Flags().IntP("width", "w", 0, "Downscale to at most this width (JPEG output)")
	return cmd
}

func openDoc(path string) (*epub.Document, error) {
	logger.Debug("opening", "path", path)
	doc, err := epub.Open(path)
	if err != nil {
		return nil, err
	}
	logger.Debug("opened",
		"rootfile", doc.RootFile(),
		"resources", len(doc.Resources),
		"pages", doc.NumPages(),
	)
	return doc, nil
}

func parsePage(arg string) (int, error) {
	page, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("invalid page %q: %w", arg, err)
	}
	return page, nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}
}
