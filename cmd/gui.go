package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nexusfetch/nexusfetch/cmd/config"
	"github.com/nexusfetch/nexusfetch/gui"
	"github.com/nexusfetch/nexusfetch/internals/globals"
)

var guiCmd = &cobra.Command{
	Use:   "gui",
	Short: "Opens the fetch window",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("Starting GUI")
		return gui.Start(config.Settings(), globals.HTTPClient)
	},
}
