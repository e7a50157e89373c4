package askpass

const (
	// global command line flags

	FlagInteractive = "interactive"
	FlagBatch       = "batch"
	FlagVerbose     = "verbose"
	FlagQuiet       = "quiet"
	FlagNoConfig    = "no-config"

	FlagSetInteractive = "set-interactive"
	FlagSetVerbose     = "set-verbose"

	// set value flags

	FlagSetAskpassEnv  = "set-askpass-env"
	FlagSetDisplayEnv  = "set-display-env"
	FlagSetTimeout     = "set-timeout"
	FlagSetMaxPreamble = "set-max-preamble"
	FlagSetMaxArgument = "set-max-argument"
	FlagSetResultSize  = "set-result-size"

	// value flags

	FlagAskpassEnv  = "askpass-env"
	FlagDisplayEnv  = "display-env"
	FlagTimeout     = "timeout"
	FlagResultSize  = "result-size"
	FlagPrompt      = "prompt"
	FlagName        = "name"
	FlagShowName    = "show-name"
	FlagInstruction = "instruction"

	FlagDescSetVerbose     = "Sets the default verbose flag."
	FlagDescSetInteractive = "Sets the default interactive flag."

	FlagDescSetAskpassEnv  = "Sets the environment variable naming the askpass helper."
	FlagDescSetDisplayEnv  = "Sets the environment variable naming the display."
	FlagDescSetTimeout     = "Sets the helper timeout in seconds (0 waits forever)."
	FlagDescSetMaxPreamble = "Sets the maximum preamble size in bytes."
	FlagDescSetMaxArgument = "Sets the maximum helper argument size in bytes."
	FlagDescSetResultSize  = "Sets the default answer buffer size in bytes."

	FlagDescAskpassEnv  = "Environment variable naming the askpass helper."
	FlagDescDisplayEnv  = "Environment variable naming the display."
	FlagDescTimeout     = "Helper timeout in seconds (0 waits forever)."
	FlagDescResultSize  = "Answer buffer size in bytes, including the terminator."
	FlagDescPrompt      = "Prompt label, may be given multiple times."
	FlagDescName        = "Title shown above the prompts."
	FlagDescShowName    = "Show the title to the helper."
	FlagDescInstruction = "Instructions shown above the prompts."

	// environment

	envTimeout    = "ASKPASS_TIMEOUT"
	envResultSize = "ASKPASS_RESULT_SIZE"

	defaultAskpassEnv = "SSH_ASKPASS"
	defaultDisplayEnv = "DISPLAY"
	defaultResultSize = 1024

	// global config keys

	globalKeyVerbose     = "verbose"
	globalKeyInteractive = "interactive"

	// resolver config keys

	keyAskpassEnv  = "askpass_env"
	keyDisplayEnv  = "display_env"
	keyTimeout     = "timeout"
	keyMaxPreamble = "max_preamble"
	keyMaxArgument = "max_argument"
	keyResultSize  = "result_size"

	// global labels

	labelIgnoreConfig = "Ignore Configuration"
	labelInteractive  = "Interactive"
	labelVerbose      = "Verbose"

	// resolver labels

	labelAskpassEnv  = "Askpass helper variable"
	labelDisplayEnv  = "Display variable"
	labelHelper      = "Askpass helper"
	labelTimeout     = "Helper timeout (seconds)"
	labelMaxPreamble = "Maximum preamble size"
	labelMaxArgument = "Maximum argument size"
	labelResultSize  = "Answer buffer size"
)
