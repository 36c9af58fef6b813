package config

import (
	"errors"
	"os"

	"github.com/tauraamui/screengrab/pkg/configdef"
	"github.com/tauraamui/screengrab/pkg/log"
)

func load() (configdef.Values, error) {
	configPath, err := resolveConfigPath()
	if err != nil {
		return configdef.Values{}, err
	}

	log.Debug("Resolved config file location: %s", configPath)
	file, err := readConfigFile(configPath)
	if err != nil {
		// a missing config file is fine, built-in defaults apply
		if errors.Is(err, os.ErrNotExist) {
			log.Debug("No config file found, using built-in defaults")
			return defaultValues(), nil
		}
		return configdef.Values{}, err
	}

	var values configdef.Values
	if err := unmarshal(file, &values); err != nil {
		return configdef.Values{}, err
	}

	loadDefaultsForEmptyFields(&values)

	if err := values.RunValidate(); err != nil {
		return configdef.Values{}, err
	}

	return values, nil
}

func defaultValues() configdef.Values {
	values := configdef.Values{
		Delay:   defaultSettings[DELAY].(int),
		Display: defaultSettings[DISPLAY].(int),
	}
	loadDefaultsForEmptyFields(&values)
	return values
}

func loadDefaultsForEmptyFields(values *configdef.Values) {
	if len(values.OutputDir) == 0 {
		values.OutputDir = defaultSettings[OUTPUTDIR].(string)
	}
	if len(values.Output) == 0 {
		values.Output = defaultSettings[OUTPUT].(string)
	}
	if len(values.TimestampFormat) == 0 {
		values.TimestampFormat = defaultSettings[TIMESTAMPFORMAT].(string)
	}
	if len(values.DateTimeFormat) == 0 {
		values.DateTimeFormat = defaultSettings[DATETIMEFORMAT].(string)
	}
}
