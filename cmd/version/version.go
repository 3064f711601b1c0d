package version

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.yaml.in/yaml/v3"

	"github.com/cloudposse/ticktock/cmd/internal"
	errUtils "github.com/cloudposse/ticktock/errors"
	"github.com/cloudposse/ticktock/pkg/flags"
	"github.com/cloudposse/ticktock/pkg/version"
)

const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

// versionParser handles flag parsing with Viper precedence.
var versionParser *flags.StandardFlagParser

// VersionOptions contains parsed flags for the version command.
type VersionOptions struct {
	Format string
}

// versionCmd represents the version command.
var versionCmd = &cobra.Command{
	Use:     "version",
	Short:   "Display the version of ticktock you are running",
	Long:    `This command shows the version of ticktock, the Go toolchain it was built with and the platform it runs on.`,
	Example: "ticktock version --format json",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		v := viper.GetViper()
		if err := versionParser.Validate(v); err != nil {
			return err
		}
		opts := &VersionOptions{Format: v.GetString("version.format")}
		return writeVersion(cmd.OutOrStdout(), version.Get(), opts.Format)
	},
}

func init() {
	versionParser = flags.NewStandardFlagParser(
		flags.WithStringFlag("format", "", formatText, "Specify the output format"),
		flags.WithViperKey("format", "version.format"),
		flags.WithEnvVars("format", "TICKTOCK_VERSION_FORMAT"),
		flags.WithValidValues("format", formatText, formatJSON, formatYAML),
	)

	versionParser.RegisterFlags(versionCmd)

	if err := versionParser.BindToViper(viper.GetViper()); err != nil {
		panic(err)
	}

	// Register this command with the registry.
	// This happens during package initialization via import in cmd/root.go.
	internal.Register(&VersionCommandProvider{})
}

func writeVersion(w io.Writer, info version.Info, format string) error {
	var out []byte
	var err error

	switch format {
	case formatJSON:
		out, err = json.MarshalIndent(info, "", "  ")
		out = append(out, '\n')
	case formatYAML:
		out, err = yaml.Marshal(info)
	default:
		out = []byte(versionTable(info) + "\n")
	}
	if err != nil {
		return fmt.Errorf("%w: %w", errUtils.ErrVersionFormat, err)
	}

	_, err = w.Write(out)
	return err
}

func versionTable(info version.Info) string {
	commit := info.Commit
	if commit == "" {
		commit = "unknown"
	}
	return table.New().
		Border(lipgloss.RoundedBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			style := lipgloss.NewStyle().PaddingLeft(1).PaddingRight(1)
			if col == 0 {
				return style.Bold(true)
			}
			return style
		}).
		Rows(
			[]string{"ticktock", info.Version},
			[]string{"commit", commit},
			[]string{"go", info.GoVersion},
			[]string{"platform", info.OS + "/" + info.Arch},
		).
		String()
}

// VersionCommandProvider implements the CommandProvider interface.
type VersionCommandProvider struct{}

// GetCommand returns the version command.
func (v *VersionCommandProvider) GetCommand() *cobra.Command {
	return versionCmd
}

// GetName returns the command name.
func (v *VersionCommandProvider) GetName() string {
	return "version"
}

// GetGroup returns the command group for help organization.
func (v *VersionCommandProvider) GetGroup() string {
	return "Other Commands"
}
