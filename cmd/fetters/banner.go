package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fettersdev/fetters/internal/ui"
)

var bannerCmd = &cobra.Command{
	Use:   "banner",
	Short: "Show the fetters banner",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(ui.Banner())
	},
}
