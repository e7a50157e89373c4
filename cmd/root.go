package cmd

import (
	"context"

	log "github.com/sirupsen/logrus"

	"github.com/spf13/cobra"

	askpass "github.com/hgschmie/askpass/lib"
)

func init() {
	rootCmd.PersistentFlags().Bool(askpass.FlagInteractive, false, "Fall back to prompting on the terminal if required.")
	rootCmd.PersistentFlags().Bool(askpass.FlagBatch, false, "Never prompt on the terminal.")
	rootCmd.PersistentFlags().Bool(askpass.FlagVerbose, false, "Report additional information while executing.")
	rootCmd.PersistentFlags().Bool(askpass.FlagQuiet, false, "Do not output any information while executing.")
	rootCmd.PersistentFlags().Bool(askpass.FlagNoConfig, false, "Ignore configuration files.")
}

var (
	rootCmd = &cobra.Command{
		Use:   "askpass",
		Short: "askpass asks for secrets through an SSH_ASKPASS helper",
		Long:  "askpass runs the configured SSH_ASKPASS helper once per prompt and collects the answers.",
		Run: func(cmd *cobra.Command, args []string) {
			_ = cmd.Usage()
		},

		PersistentPreRun: func(command *cobra.Command, args []string) {
			if command.Name() != "help" {
				err := askpass.LoadConfig()
				if err != nil {
					log.Fatalf("Could not load configuration file: %v", err)
				}

				askpass.SetGlobalFlags(command.Flags())
			}
		},
	}
)

func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		log.Fatalf("Command execution failed: %v", err)
	}

}
