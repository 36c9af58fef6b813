package configdef

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"gopkg.in/dealancer/validate.v2"
)

// Values holds the defaults which apply to every capture unless
// overridden by flags on the command line.
type Values struct {
	OutputDir       string `json:"output_dir" validate:"empty=false"`
	Output          string `json:"output" validate:"empty=false"`
	Delay           int    `json:"delay" validate:"gte=0"`
	Display         int    `json:"display" validate:"gte=0"`
	TimestampFormat string `json:"timestamp_format" validate:"empty=false"`
	DateTimeLabel   bool   `json:"date_time_label"`
	DateTimeFormat  string `json:"date_time_format"`
}

func (v Values) RunValidate() error {
	if err := validate.Validate(&v); err != nil {
		return err
	}
	return v.Validate()
}

func (v Values) Validate() error {
	const validationErrorHeader = "validation failed: %w"
	if !hasPNGExt(v.Output) {
		return fmt.Errorf(
			validationErrorHeader, errors.New("output file name must carry a .png extension"),
		)
	}
	return nil
}

func hasPNGExt(output string) bool {
	return strings.EqualFold(filepath.Ext(output), ".png")
}
