package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ashwinyue/toolhub/internal/data"
	"github.com/ashwinyue/toolhub/internal/service/tool"
)

func newValidateCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a YAML tool seed file",
		RunE: func(cmd *cobra.Command, args []string) error {
			tools, err := data.LoadToolsFile(file)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			invalid := 0
			for _, t := range tools {
				result := tool.ValidateTool(tool.InputFromTool(t))
				if result.IsValid {
					continue
				}
				invalid++
				fmt.Fprintf(out, "%s:\n", t.ID)
				for _, msg := range result.Errors {
					fmt.Fprintf(out, "  - %s\n", msg)
				}
			}

			if invalid > 0 {
				return fmt.Errorf("%d of %d tools failed validation", invalid, len(tools))
			}
			fmt.Fprintf(out, "%d tools ok\n", len(tools))
			return nil
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "path to tools YAML file")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}
