package askpass

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/pflag"
)

var (
	validate = validator.New()
)

//
// ResolverSettings controls where the resolver looks for its helper and how much text
// it is willing to pass around.
//
type ResolverSettings struct {
	AskpassEnv  string        `validate:"required"`
	DisplayEnv  string        `validate:"required"`
	Timeout     time.Duration `validate:"gte=0"`
	MaxPreamble int           `validate:"gte=1"`
	MaxArgument int           `validate:"gte=1"`
	ResultSize  int           `validate:"gte=1"`
}

func DefaultResolverSettings() ResolverSettings {
	return ResolverSettings{
		AskpassEnv:  defaultAskpassEnv,
		DisplayEnv:  defaultDisplayEnv,
		MaxPreamble: defaultMaxPreamble,
		MaxArgument: defaultMaxArgument,
		ResultSize:  defaultResultSize,
	}
}

func (s ResolverSettings) withDefaults() ResolverSettings {
	d := DefaultResolverSettings()
	if len(s.AskpassEnv) == 0 {
		s.AskpassEnv = d.AskpassEnv
	}
	if len(s.DisplayEnv) == 0 {
		s.DisplayEnv = d.DisplayEnv
	}
	if s.MaxPreamble <= 0 {
		s.MaxPreamble = d.MaxPreamble
	}
	if s.MaxArgument <= 0 {
		s.MaxArgument = d.MaxArgument
	}
	if s.ResultSize <= 0 {
		s.ResultSize = d.ResultSize
	}
	return s
}

func (s *ResolverSettings) Validate() error {
	return validate.Struct(s)
}

//
// CreateResolverSettings resolves the settings from flags, the environment and the
// configuration file, in that order.
//
func CreateResolverSettings(flags *pflag.FlagSet) (*ResolverSettings, error) {
	rootConfigProvider := defaultConfigProvider()
	flagConfigProvider := newFlagConfig(flags, false)
	envConfigProvider := newEnvConfig(nil)

	settings := &ResolverSettings{}

	settings.AskpassEnv = *evaluateString(labelAskpassEnv,
		flagConfigProvider(FlagAskpassEnv),
		rootConfigProvider(keyAskpassEnv),
		constantStringValue(defaultAskpassEnv))

	settings.DisplayEnv = *evaluateString(labelDisplayEnv,
		flagConfigProvider(FlagDisplayEnv),
		rootConfigProvider(keyDisplayEnv),
		constantStringValue(defaultDisplayEnv))

	timeout := evaluateInt(labelTimeout,
		flagConfigProvider(FlagTimeout),
		envConfigProvider(envTimeout),
		rootConfigProvider(keyTimeout),
		constantIntValue(0))

	settings.Timeout = time.Duration(*timeout) * time.Second

	settings.MaxPreamble = int(*evaluateInt(labelMaxPreamble,
		rootConfigProvider(keyMaxPreamble),
		constantIntValue(defaultMaxPreamble)))

	settings.MaxArgument = int(*evaluateInt(labelMaxArgument,
		rootConfigProvider(keyMaxArgument),
		constantIntValue(defaultMaxArgument)))

	settings.ResultSize = int(*evaluateInt(labelResultSize,
		flagConfigProvider(FlagResultSize),
		envConfigProvider(envResultSize),
		rootConfigProvider(keyResultSize),
		constantIntValue(defaultResultSize)))

	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("Invalid resolver settings: %w", err)
	}

	return settings, nil
}

//
// StoredSettings are the values kept in the configuration file. Unset values fall back
// to the built-in defaults.
//
type StoredSettings struct {
	Verbose     *bool
	Interactive *bool
	AskpassEnv  *string
	DisplayEnv  *string
	Timeout     *int64 `validate:"omitempty,gte=0"`
	MaxPreamble *int64 `validate:"omitempty,gte=1"`
	MaxArgument *int64 `validate:"omitempty,gte=1"`
	ResultSize  *int64 `validate:"omitempty,gte=1"`
}

func (s *StoredSettings) Display() {
	Information("**** Stored settings (%s):", configFile)

	logBoolSetting(labelVerbose, s.Verbose)
	logBoolSetting(labelInteractive, s.Interactive)
	logStringSetting(labelAskpassEnv, s.AskpassEnv)
	logStringSetting(labelDisplayEnv, s.DisplayEnv)
	logIntSetting(labelTimeout, s.Timeout)
	logIntSetting(labelMaxPreamble, s.MaxPreamble)
	logIntSetting(labelMaxArgument, s.MaxArgument)
	logIntSetting(labelResultSize, s.ResultSize)
}

func LoadStoredSettings() *StoredSettings {
	s := &StoredSettings{}

	if !*globalNoConfig {
		s.Verbose = getBool(store, globalKeyVerbose)
		s.Interactive = getBool(store, globalKeyInteractive)
		s.AskpassEnv = getString(store, keyAskpassEnv)
		s.DisplayEnv = getString(store, keyDisplayEnv)
		s.Timeout = getInt(store, keyTimeout)
		s.MaxPreamble = getInt(store, keyMaxPreamble)
		s.MaxArgument = getInt(store, keyMaxArgument)
		s.ResultSize = getInt(store, keyResultSize)
	}

	return s
}

//
// CreateStoredSettings takes new settings from the --set-* flags, prompting for anything
// not given when interactive. Current values are offered as defaults.
//
func CreateStoredSettings(flags *pflag.FlagSet) (*StoredSettings, error) {
	current := LoadStoredSettings()
	settings := &StoredSettings{}

	flagConfigProvider := newFlagConfig(flags, false)

	settings.Verbose, _ = evaluateBool(labelVerbose,
		flagConfigProvider(FlagSetVerbose),
		interactiveBoolValue("Default verbose setting", current.Verbose))

	settings.Interactive, _ = evaluateBool(labelInteractive,
		flagConfigProvider(FlagSetInteractive),
		interactiveBoolValue("Default interactive setting", current.Interactive))

	settings.AskpassEnv = evaluateString(labelAskpassEnv,
		flagConfigProvider(FlagSetAskpassEnv),
		interactiveStringValue(labelAskpassEnv, current.AskpassEnv, nil))

	settings.DisplayEnv = evaluateString(labelDisplayEnv,
		flagConfigProvider(FlagSetDisplayEnv),
		interactiveStringValue(labelDisplayEnv, current.DisplayEnv, nil))

	settings.Timeout = evaluateInt(labelTimeout,
		flagConfigProvider(FlagSetTimeout),
		interactiveIntValue(labelTimeout, current.Timeout))

	settings.MaxPreamble = evaluateInt(labelMaxPreamble,
		flagConfigProvider(FlagSetMaxPreamble),
		interactiveIntValue(labelMaxPreamble, current.MaxPreamble))

	settings.MaxArgument = evaluateInt(labelMaxArgument,
		flagConfigProvider(FlagSetMaxArgument),
		interactiveIntValue(labelMaxArgument, current.MaxArgument))

	settings.ResultSize = evaluateInt(labelResultSize,
		flagConfigProvider(FlagSetResultSize),
		interactiveIntValue(labelResultSize, current.ResultSize))

	if err := validate.Struct(settings); err != nil {
		return nil, err
	}

	return settings, nil
}

func StoreSettings(settings *StoredSettings) error {
	return storeSettings(configFile, settings)
}

func storeSettings(filename string, settings *StoredSettings) error {
	tree, err := loadConfigFile(filename)
	if err != nil {
		return err
	}

	if err := setBool(tree, globalKeyVerbose, settings.Verbose); err != nil {
		return err
	}
	if err := setBool(tree, globalKeyInteractive, settings.Interactive); err != nil {
		return err
	}
	if err := setString(tree, keyAskpassEnv, settings.AskpassEnv); err != nil {
		return err
	}
	if err := setString(tree, keyDisplayEnv, settings.DisplayEnv); err != nil {
		return err
	}
	if err := setInt(tree, keyTimeout, settings.Timeout); err != nil {
		return err
	}
	if err := setInt(tree, keyMaxPreamble, settings.MaxPreamble); err != nil {
		return err
	}
	if err := setInt(tree, keyMaxArgument, settings.MaxArgument); err != nil {
		return err
	}
	if err := setInt(tree, keyResultSize, settings.ResultSize); err != nil {
		return err
	}

	return storeConfigFile(filename, tree)
}
