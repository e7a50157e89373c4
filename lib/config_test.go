package askpass

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fakeEnv(values map[string]string) func(string) string {
	return func(name string) string {
		return values[name]
	}
}

func TestEvaluateStringOrder(t *testing.T) {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("helper", "", "")

	env := newEnvConfig(fakeEnv(map[string]string{"HELPER": "from-env"}))
	flag := newFlagConfig(flags, false)

	value := evaluateString("", flag("helper"), env("HELPER"), constantStringValue("default"))
	assert.Equal(t, "from-env", *value)

	require.NoError(t, flags.Parse([]string{"--helper", "from-flag"}))
	value = evaluateString("", flag("helper"), env("HELPER"), constantStringValue("default"))
	assert.Equal(t, "from-flag", *value)

	value = evaluateString("", env("UNSET"), newNullConfig()("x"), constantStringValue("default"))
	assert.Equal(t, "default", *value)

	assert.Nil(t, evaluateString("", env("UNSET"), newNullConfig()("x")))
}

func TestEnvConfigParsing(t *testing.T) {
	env := newEnvConfig(fakeEnv(map[string]string{
		"NUMBER":  "42",
		"GARBAGE": "forty-two",
		"FLAG":    "true",
	}))

	assert.Equal(t, int64(42), *evaluateInt("", env("NUMBER")))
	assert.Equal(t, int64(7), *evaluateInt("", env("GARBAGE"), constantIntValue(7)))

	value, source := evaluateBool("", env("FLAG"))
	assert.True(t, *value)
	assert.Equal(t, "environment: 'FLAG'", source)
}

func TestNegatedFlag(t *testing.T) {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.Bool(FlagQuiet, false, "")
	require.NoError(t, flags.Parse([]string{"--" + FlagQuiet}))

	value, _ := evaluateBool("", newFlagConfig(flags, true)(FlagQuiet), constantBoolValue(true))
	assert.False(t, *value)
}

func TestStoreConfig(t *testing.T) {
	s := viper.New()
	s.Set(keyTimeout, 12)
	s.Set(keyAskpassEnv, "GIT_ASKPASS")

	provider := newStoreConfig(s, "test config")

	assert.Equal(t, int64(12), *evaluateInt("", provider(keyTimeout)))
	assert.Equal(t, "GIT_ASKPASS", *evaluateString("", provider(keyAskpassEnv)))
	assert.Nil(t, evaluateString("", provider(keyDisplayEnv)))
}
