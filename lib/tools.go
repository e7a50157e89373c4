package askpass

import (
	"fmt"
	"os"
	"runtime"
	"strconv"

	log "github.com/sirupsen/logrus"
)

func Information(format string, args ...interface{}) {
	if *globalVerbose {
		log.Infof(format, args...)
	}
}

func toSP(s string) *string {
	return &s
}

func toIP(i int64) *int64 {
	return &i
}

func toBP(b bool) *bool {
	return &b
}

func toSPError(s string, err error) *string {
	if err != nil {
		return nil
	}
	return &s
}

func toIPError(n int64, err error) *int64 {
	if err != nil {
		return nil
	}
	return &n
}

func toBPError(b bool, err error) *bool {
	if err != nil {
		return nil
	}
	return &b
}

func padLabel(label string) string {
	return fmt.Sprintf("%-40s", label+":")
}

func userHomeDir() (*string, error) {

	var home *string
	if runtime.GOOS == "windows" { // Windows
		home = toSP(os.Getenv("USERPROFILE"))
	} else {
		// *nix
		home = toSP(os.Getenv("HOME"))
	}

	if home == nil || len(*home) == 0 {
		return nil, fmt.Errorf("Could not determine home directory!")
	}

	return home, nil
}

func storeFile(filename string, writeFile func(string) error) error {
	newFilename := filename + ".NEW"
	oldFilename := filename + ".OLD"

	if err := os.Remove(newFilename); err != nil {
		if !os.IsNotExist(err) {
			return err
		}
	}

	if err := writeFile(newFilename); err != nil {
		return err
	}

	if _, err := os.Stat(newFilename); err == nil {
		if err := os.Rename(filename, oldFilename); err != nil {
			if !os.IsNotExist(err) {
				return err
			}
		}
		if err := os.Rename(newFilename, filename); err != nil {
			return err
		}
	}

	return nil
}

func isTTY(file *os.File) bool {
	fi, err := file.Stat()
	if err != nil {
		return false
	}
	return (fi.Mode() & os.ModeCharDevice) != 0
}

func validateNumber(input string) error {
	if len(input) == 0 {
		return nil
	}
	_, err := strconv.ParseInt(input, 10, 64)
	if err != nil {
		return fmt.Errorf("Invalid number: %v", input)
	}
	return nil
}

func validateBool(input string) error {
	if len(input) == 0 {
		return nil
	}
	_, err := strconv.ParseBool(input)
	if err != nil {
		return fmt.Errorf("Invalid bool: %v", input)
	}
	return nil
}

func logStringSetting(label string, value *string) {
	if *globalVerbose {
		if value == nil {
			log.Infof("%s <unset>", padLabel(label))
		} else {
			log.Infof("%s %s", padLabel(label), *value)
		}
	}
}

func logBoolSetting(label string, value *bool) {
	if *globalVerbose {
		if value == nil {
			log.Infof("%s <unset>", padLabel(label))
		} else {
			log.Infof("%s %t", padLabel(label), *value)
		}
	}
}

func logIntSetting(label string, value *int64) {
	if *globalVerbose {
		if value == nil {
			log.Infof("%s <unset>", padLabel(label))
		} else {
			log.Infof("%s %d", padLabel(label), *value)
		}
	}
}
