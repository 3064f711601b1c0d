package about

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/cloudposse/ticktock/cmd/internal"
	"github.com/cloudposse/ticktock/cmd/markdown"
	log "github.com/cloudposse/ticktock/pkg/logger"
	"github.com/cloudposse/ticktock/pkg/ui"
)

// aboutCmd prints the overview of the widgets and their key bindings.
var aboutCmd = &cobra.Command{
	Use:   "about",
	Short: "Describe ticktock and its key bindings",
	Long:  `Print an overview of the clock, stopwatch and timer widgets and the keys that drive them.`,
	Args:  cobra.NoArgs,
	RunE:  runAbout,
}

func runAbout(cmd *cobra.Command, _ []string) error {
	text, err := ui.RenderMarkdown(markdown.AboutMarkdown)
	if err != nil {
		log.Warn("Printing the about text unformatted", "error", err)
	}
	_, err = io.WriteString(cmd.OutOrStdout(), text)
	return err
}

func init() {
	internal.Register(&AboutCommandProvider{})
}

// AboutCommandProvider adds `about` under the other commands group.
type AboutCommandProvider struct{}

func (p *AboutCommandProvider) GetCommand() *cobra.Command { return aboutCmd }

func (p *AboutCommandProvider) GetName() string { return "about" }

func (p *AboutCommandProvider) GetGroup() string { return "Other Commands" }
