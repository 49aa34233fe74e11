package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/framehouse/estimate-cli/internal/compare"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run the built-in sample comparison",
	RunE: func(cmd *cobra.Command, args []string) error {
		competitor, our := compare.DemoPair()

		result, err := compare.Run(competitor, our)
		if err != nil {
			return err
		}

		renderer, err := newRenderer()
		if err != nil {
			return err
		}
		fmt.Print(renderer.Render(result))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(demoCmd)
}
