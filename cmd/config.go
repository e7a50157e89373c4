package cmd

import (
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	askpass "github.com/hgschmie/askpass/lib"
)

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)

	configShowCmd.Flags().String(askpass.FlagAskpassEnv, "", askpass.FlagDescAskpassEnv)
	configShowCmd.Flags().String(askpass.FlagDisplayEnv, "", askpass.FlagDescDisplayEnv)

	configSetCmd.Flags().Bool(askpass.FlagSetVerbose, true, askpass.FlagDescSetVerbose)
	configSetCmd.Flags().Bool(askpass.FlagSetInteractive, true, askpass.FlagDescSetInteractive)
	configSetCmd.Flags().String(askpass.FlagSetAskpassEnv, "", askpass.FlagDescSetAskpassEnv)
	configSetCmd.Flags().String(askpass.FlagSetDisplayEnv, "", askpass.FlagDescSetDisplayEnv)
	configSetCmd.Flags().Int64(askpass.FlagSetTimeout, 0, askpass.FlagDescSetTimeout)
	configSetCmd.Flags().Int64(askpass.FlagSetMaxPreamble, 0, askpass.FlagDescSetMaxPreamble)
	configSetCmd.Flags().Int64(askpass.FlagSetMaxArgument, 0, askpass.FlagDescSetMaxArgument)
	configSetCmd.Flags().Int64(askpass.FlagSetResultSize, 0, askpass.FlagDescSetResultSize)
}

var (
	configCmd = &cobra.Command{
		Use:   "config",
		Short: "Manage settings",
		Long:  "Manage settings.",
		Run: func(cmd *cobra.Command, args []string) {
			_ = cmd.Usage()
		},
	}

	configShowCmd = &cobra.Command{
		Use:   "show",
		Short: "Show settings",
		Long:  "Show the stored settings and the settings in effect.",
		Run: func(cmd *cobra.Command, args []string) {

			askpass.DisplayGlobalFlags()
			askpass.LoadStoredSettings().Display()

			askpass.Information("**** Effective settings:")
			settings, err := askpass.CreateResolverSettings(cmd.Flags())
			if err != nil {
				log.Fatalf("Could not create resolver settings: %v", err)
			}

			askpass.NewResolver(*settings).Display()
		},
	}

	configSetCmd = &cobra.Command{
		Use:   "set",
		Short: "Modify settings",
		Long:  "Modify the stored settings.",
		Run: func(cmd *cobra.Command, args []string) {
			askpass.Information("**** Configure Settings:")

			s, err := askpass.CreateStoredSettings(cmd.Flags())
			if err != nil {
				log.Fatalf("Could not create settings: %v", err)
			}

			if err := askpass.StoreSettings(s); err != nil {
				log.Fatalf("Could not store settings: %v", err)
			}
		},
	}
)
