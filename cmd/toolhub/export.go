package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ashwinyue/toolhub/internal/service"
	"github.com/ashwinyue/toolhub/internal/service/tool"
)

type exportOptions struct {
	format string
	out    string
}

func newExportCmd(root *rootOptions) *cobra.Command {
	opts := exportOptions{format: "go"}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Print the tool seed as Go source or YAML",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := root.loadConfig()
			if err != nil {
				return err
			}
			seed, err := service.LoadSeed(cfg.Catalog)
			if err != nil {
				return err
			}

			out, err := exportTools(tool.NewManager(seed), opts.format)
			if err != nil {
				return err
			}

			if opts.out == "" {
				_, err = cmd.OutOrStdout().Write(out)
				return err
			}
			if err := os.WriteFile(opts.out, out, 0o644); err != nil {
				return fmt.Errorf("failed to write %s: %w", opts.out, err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.format, "format", opts.format, "output format: go or yaml")
	cmd.Flags().StringVar(&opts.out, "out", "", "write to file instead of stdout")

	return cmd
}

func exportTools(m *tool.Manager, format string) ([]byte, error) {
	switch format {
	case "go":
		return []byte(m.ExportToolsCode()), nil
	case "yaml":
		return m.ExportToolsYAML()
	default:
		return nil, fmt.Errorf("unsupported format %q: want go or yaml", format)
	}
}
