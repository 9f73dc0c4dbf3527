package cmd

import (
	"github.com/alexiusacademia/gosite/internal/prompt"
	"github.com/spf13/cobra"
)

var interactiveNoHistory bool

var interactiveCmd = &cobra.Command{
	Use:     "interactive",
	Aliases: []string{"i"},
	Short:   "Menu-driven soil and wind calculator",
	Long: `Start the interactive calculator. Each value is prompted for and
re-prompted until valid. Ctrl-D or Ctrl-C leaves at any prompt; typing
'exit' at the shape prompt returns to the main menu.`,
	RunE: runInteractive,
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
	interactiveCmd.Flags().BoolVar(&interactiveNoHistory, "no-history", false, "Do not append to the history logs")
}

func runInteractive(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	model, err := soilModel(cfg)
	if err != nil {
		return err
	}

	rl, err := prompt.NewReadline()
	if err != nil {
		return err
	}
	defer rl.Close()

	return prompt.NewSession(rl, rl.Stdout(), model, recorder(cfg, interactiveNoHistory)).Run()
}
