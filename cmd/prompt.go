package cmd

import (
	"errors"
	"io"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	askpass "github.com/hgschmie/askpass/lib"
)

func init() {
	rootCmd.AddCommand(promptCmd)

	promptCmd.Flags().StringArrayVar(&promptLabels, askpass.FlagPrompt, nil, askpass.FlagDescPrompt)
	promptCmd.Flags().StringVar(&promptName, askpass.FlagName, "", askpass.FlagDescName)
	promptCmd.Flags().BoolVar(&promptShowName, askpass.FlagShowName, false, askpass.FlagDescShowName)
	promptCmd.Flags().StringVar(&promptInstruction, askpass.FlagInstruction, "", askpass.FlagDescInstruction)

	promptCmd.Flags().String(askpass.FlagAskpassEnv, "", askpass.FlagDescAskpassEnv)
	promptCmd.Flags().String(askpass.FlagDisplayEnv, "", askpass.FlagDescDisplayEnv)
	promptCmd.Flags().Int64(askpass.FlagTimeout, 0, askpass.FlagDescTimeout)
	promptCmd.Flags().Int64(askpass.FlagResultSize, 0, askpass.FlagDescResultSize)
}

var (
	promptLabels      []string
	promptName        string
	promptShowName    bool
	promptInstruction string

	promptCmd = &cobra.Command{
		Use:   "prompt",
		Short: "Ask for one or more answers",
		Long:  "Run the askpass helper once for every --prompt and print each answer on its own line.",
		Run: func(cmd *cobra.Command, args []string) {

			askpass.DisplayGlobalFlags()
			askpass.Information("**** Resolver Settings:")

			settings, err := askpass.CreateResolverSettings(cmd.Flags())
			if err != nil {
				log.Fatalf("Could not create resolver settings: %v", err)
			}

			if len(promptLabels) == 0 {
				log.Fatalf("At least one --%s is required", askpass.FlagPrompt)
			}

			set := &askpass.PromptSet{NameRequired: promptShowName}
			if cmd.Flags().Changed(askpass.FlagName) {
				set.Name = &promptName
			}
			if cmd.Flags().Changed(askpass.FlagInstruction) {
				set.Instruction = &promptInstruction
			}
			for _, label := range promptLabels {
				set.Prompts = append(set.Prompts, askpass.NewPrompt(label, settings.ResultSize))
			}

			resolver := askpass.NewResolver(*settings)

			outcome, err := resolver.Resolve(cmd.Context(), set)
			switch outcome {
			case askpass.OutcomeFatal:
				if cause := errors.Unwrap(err); cause != nil {
					log.Debugf("askpass helper failure: %v", cause)
				}
				log.Fatalf("%v", err)

			case askpass.OutcomeUnavailable:
				if !askpass.IsInteractive() {
					log.Fatalf("No askpass helper configured (%s, %s) and not interactive", settings.AskpassEnv, settings.DisplayEnv)
				}

				askpass.Information("**** No askpass helper configured, asking on the terminal")
				if err := askpass.PromptTerminal(set); err != nil {
					log.Fatalf("Could not read answers: %v", err)
				}
			}

			defer set.Wipe()

			for _, p := range set.Prompts {
				if err := writeAnswer(os.Stdout, p); err != nil {
					set.Wipe()
					log.Fatalf("Could not write answer: %v", err)
				}
			}
		},
	}
)

func writeAnswer(w io.Writer, p *askpass.Prompt) error {
	if _, err := w.Write(p.Bytes()); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}
