package askpass

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

var (
	store      *viper.Viper
	configFile string
)

func init() {
	store = viper.New()
	store.SetConfigName("askpass.config")
	store.SetConfigType("toml")

	configPath := os.Getenv("XDG_CONFIG_HOME")
	if len(configPath) == 0 {
		homeDir, err := userHomeDir()
		if err != nil {
			log.Panicf("Could not determine home directory: %v", err)
		}
		configPath = filepath.Join(*homeDir, ".config")
	}

	store.AddConfigPath(configPath)

	configFile = filepath.Join(configPath, "askpass.config")
}

//
// LoadConfig loads the on-disk configuration file
//
func LoadConfig() error {

	if err := store.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return err
		}
	}

	return nil
}

//
// Store Config gives access to the viper backed store
//
type storeConfig struct {
	store      *viper.Viper
	field      string
	configName string
}

func (p *storeConfig) location() string {
	return fmt.Sprintf("%s, key: '%s'", p.configName, p.field)
}

func (p *storeConfig) stringValue() (*string, string) {
	if p.store.IsSet(p.field) {
		return toSP(p.store.GetString(p.field)), p.location()
	}
	return nil, ""
}

func (p *storeConfig) intValue() (*int64, string) {
	if p.store.IsSet(p.field) {
		return toIPError(p.store.GetInt64(p.field), nil), p.location()
	}
	return nil, ""
}

func (p *storeConfig) boolValue() (*bool, string) {
	if p.store.IsSet(p.field) {
		return toBPError(p.store.GetBool(p.field), nil), p.location()
	}
	return nil, ""
}

func newStoreConfig(s *viper.Viper, configName string) ConfigProvider {
	return func(field string) configField {
		return &storeConfig{s, field, configName}
	}
}

func defaultConfigProvider() ConfigProvider {
	if *globalNoConfig {
		return newNullConfig()
	}

	return newStoreConfig(store, "global config")
}

func getString(store *viper.Viper, field string) *string {
	if store.IsSet(field) {
		return toSP(store.GetString(field))
	}
	return nil
}

func getInt(store *viper.Viper, field string) *int64 {
	if store.IsSet(field) {
		v := store.GetInt64(field)
		return &v
	}
	return nil
}

func getBool(store *viper.Viper, field string) *bool {
	if store.IsSet(field) {
		v := store.GetBool(field)
		return &v
	}
	return nil
}

func setString(tree *toml.Tree, field string, value *string) error {
	if value == nil {
		if tree.Has(field) {
			return tree.Delete(field)
		}
	} else {
		tree.Set(field, *value)
	}

	return nil
}

func setInt(tree *toml.Tree, field string, value *int64) error {
	if value == nil {
		if tree.Has(field) {
			return tree.Delete(field)
		}
	} else {
		tree.Set(field, *value)
	}

	return nil
}

func setBool(tree *toml.Tree, field string, value *bool) error {
	if value == nil {
		if tree.Has(field) {
			return tree.Delete(field)
		}
	} else {
		tree.Set(field, *value)
	}

	return nil
}

func loadConfigFile(filename string) (*toml.Tree, error) {
	tree, err := toml.LoadFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			return toml.Load("")
		}
		return nil, err
	}
	return tree, nil
}

func storeConfigFile(filename string, tree *toml.Tree) error {
	if err := os.MkdirAll(filepath.Dir(filename), 0700); err != nil {
		return err
	}

	return storeFile(filename, func(newFilename string) error {
		if file, err := os.OpenFile(newFilename, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600); err != nil {
			return err
		} else {
			defer file.Close()
			if _, err := tree.WriteTo(file); err != nil {
				return err
			}
		}
		return nil
	})
}
