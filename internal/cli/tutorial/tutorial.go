package tutorial

import (
	_ "embed"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/kanbo/internal/cli/styles"
)

//go:embed tutorial.md
var tutorialContent string

// wrapWidth is the column rendered markdown wraps at
const wrapWidth = 80

// TutorialCmd returns the tutorial command
func TutorialCmd() *cobra.Command {
	var raw bool

	cmd := &cobra.Command{
		Use:   "tutorial",
		Short: "Show a quick start guide",
		Long: `Show a short walkthrough of kanbo: account, boards, columns,
tasks and scripting. Use --raw for plain markdown.`,
		Run: func(cmd *cobra.Command, args []string) {
			outputTutorial(raw)
		},
	}

	cmd.Flags().BoolVar(&raw, "raw", false, "Print the markdown source")
	return cmd
}

func outputTutorial(raw bool) {
	if raw {
		fmt.Print(tutorialContent)
		return
	}
	fmt.Print(styles.RenderMarkdown(tutorialContent, wrapWidth))
}
