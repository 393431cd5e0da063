package cli

import (
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	builtindocs "github.com/jamesWalker55/tag-repo/docs"
	"github.com/jamesWalker55/tag-repo/internal/ui"
)

var docsRaw bool

var docsCmd = &cobra.Command{
	Use:   "docs [topic]",
	Short: "Browse bundled documentation",
	Long: `Browse long-form documentation bundled into the trp binary.

With no argument, lists the available topics. Topics are rendered for the
terminal; use --raw to get the plain Markdown.

Examples:
  trp docs
  trp docs query-language
  trp docs getting-started --raw`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		topics, err := listDocTopics()
		if err != nil {
			return handleError(ErrInternal, err, "Rebuild trp so bundled docs are available")
		}

		if len(args) == 0 {
			if isJSONOutput() {
				outputSuccess(map[string]interface{}{
					"topics": topics,
				}, &Meta{Count: len(topics)})
				return nil
			}
			fmt.Println("Available topics:")
			list := ui.NewList()
			for _, topic := range topics {
				list.Add(topic)
			}
			fmt.Print(list.String())
			fmt.Println(ui.Hint("\nRead one with: trp docs <topic>"))
			return nil
		}

		topic := strings.TrimSuffix(args[0], ".md")
		content, err := builtindocs.FS.ReadFile(topic + ".md")
		if err != nil {
			return handleErrorMsg(ErrInvalidInput,
				fmt.Sprintf("unknown topic: %s", topic),
				"Run 'trp docs' to list topics")
		}

		if isJSONOutput() {
			outputSuccess(map[string]interface{}{
				"topic":   topic,
				"content": string(content),
			}, nil)
			return nil
		}

		if docsRaw || !isatty.IsTerminal(os.Stdout.Fd()) {
			fmt.Print(string(content))
			return nil
		}

		display := ui.NewDisplayContext()
		rendered, err := ui.RenderMarkdown(string(content), display.AvailableWidth(ui.MarkdownRenderMargin))
		if err != nil {
			// fall back to plain markdown
			fmt.Print(string(content))
			return nil
		}
		fmt.Print(rendered)
		return nil
	},
}

func listDocTopics() ([]string, error) {
	entries, err := fs.ReadDir(builtindocs.FS, ".")
	if err != nil {
		return nil, err
	}

	var topics []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".md") {
			continue
		}
		topics = append(topics, strings.TrimSuffix(name, ".md"))
	}
	sort.Strings(topics)
	return topics, nil
}

func init() {
	docsCmd.Flags().BoolVar(&docsRaw, "raw", false, "Print plain Markdown without rendering")
	rootCmd.AddCommand(docsCmd)
}
