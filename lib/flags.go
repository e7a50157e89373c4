package askpass

import (
	"os"

	"github.com/spf13/pflag"
)

var (
	// whether to run quiet or verbose
	globalVerbose *bool

	// whether to be interactive or not
	globalInteractive *bool

	// whether to ignore the config or not
	globalNoConfig *bool

	verboseSource     string
	interactiveSource string
	noConfigSource    string
)

func init() {
	globalVerbose = toBP(true)
	globalInteractive = toBP(true)
	globalNoConfig = toBP(false)
}

func SetGlobalFlags(flags *pflag.FlagSet) {
	flagConfigProvider := newFlagConfig(flags, false)
	notFlagConfigProvider := newFlagConfig(flags, true)

	// no-config decides whether the store is consulted for the others
	globalNoConfig, noConfigSource = evaluateBool("",
		flagConfigProvider(FlagNoConfig),
		constantBoolValue(false))

	rootConfigProvider := defaultConfigProvider()

	// set the global without label first, so no echoing
	globalVerbose, verboseSource = evaluateBool("",
		flagConfigProvider(FlagVerbose),
		notFlagConfigProvider(FlagQuiet),
		rootConfigProvider(globalKeyVerbose),
		constantBoolValue(true))

	globalInteractive, interactiveSource = evaluateBool("",
		flagConfigProvider(FlagInteractive),
		notFlagConfigProvider(FlagBatch),
		rootConfigProvider(globalKeyInteractive),
		constantBoolValue(isTTY(os.Stderr))) // by default, prompt on the terminal if connected to a tty
}

func IsInteractive() bool {
	return *globalInteractive
}

func DisplayGlobalFlags() {
	// here the verbose flag is set correctly.
	Information("**** Global Flags:")
	Information("%s %t (%s)", padLabel(labelIgnoreConfig), *globalNoConfig, noConfigSource)
	Information("%s %t (%s)", padLabel(labelVerbose), *globalVerbose, verboseSource)
	Information("%s %t (%s)", padLabel(labelInteractive), *globalInteractive, interactiveSource)
}
