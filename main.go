package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"the-snake/config"
)

var rootCmd = &cobra.Command{
	Use:   "the-snake",
	Short: "the-snake plays the classic snake game in a window",
	RunE: func(c *cobra.Command, args []string) error {
		return play(c, frontendWindow)
	},
}

var termCmd = &cobra.Command{
	Use:   "term",
	Short: "term plays the game in the terminal",
	RunE: func(c *cobra.Command, args []string) error {
		return play(c, frontendTerminal)
	},
}

var flags config.Flags

func main() {
	flags.Register(rootCmd.PersistentFlags())
	rootCmd.AddCommand(termCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
