package cli

import (
	"fmt"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/tauraamui/screengrab/pkg/config"
	"github.com/tauraamui/screengrab/pkg/configdef"
	"github.com/tauraamui/screengrab/pkg/grab"
	"github.com/tauraamui/screengrab/pkg/log"
	"github.com/tauraamui/screengrab/pkg/screen"
	"github.com/tauraamui/screengrab/pkg/snapshot"
)

type captureFlags struct {
	output    string
	delay     int
	timestamp bool
	x1        int
	y1        int
	x2        int
	y2        int
	interval  float64
	timeLimit float64
	display   int
	label     bool
}

func newRootCmd() (*cobra.Command, *captureFlags) {
	cf := &captureFlags{}

	cmd := &cobra.Command{
		Use:   "screengrab",
		Short: "Capture full-screen, region or interval screenshots",
		Long: `screengrab captures the screen to PNG files: the whole display,
a rectangular region, or repeatedly on an interval until a time limit,
optionally after a delay and with timestamped file names.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCapture(cmd, cf)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&cf.output, "output", "o", "screenshot.png", "output file name, saved into the output dir unless a path is given")
	flags.IntVarP(&cf.delay, "delay", "d", 3, "seconds to wait before capturing")
	flags.BoolVarP(&cf.timestamp, "timestamp", "t", false, "append a timestamp to the output file name to avoid overwriting")
	flags.IntVar(&cf.x1, "x1", 0, "top-left X coordinate for region capture")
	flags.IntVar(&cf.y1, "y1", 0, "top-left Y coordinate for region capture")
	flags.IntVar(&cf.x2, "x2", 0, "bottom-right X coordinate for region capture")
	flags.IntVar(&cf.y2, "y2", 0, "bottom-right Y coordinate for region capture")
	flags.Float64VarP(&cf.interval, "interval", "i", 0, "seconds between screenshots for interval capture")
	flags.Float64VarP(&cf.timeLimit, "time-limit", "l", 0, "total duration in seconds for interval capture")
	flags.IntVar(&cf.display, "display", 0, "index of the display to capture")
	flags.BoolVar(&cf.label, "label", false, "draw the capture date and time onto the image")

	cmd.AddCommand(setupCmd)
	cmd.AddCommand(removeSetupCmd)
	cmd.AddCommand(serviceCmd)

	return cmd, cf
}

func Execute() {
	cmd, _ := newRootCmd()
	if err := cmd.Execute(); err != nil {
		log.Error(err.Error())
		os.Exit(1)
	}
}

func runCapture(cmd *cobra.Command, cf *captureFlags) error {
	values, err := config.DefaultResolver().Resolve()
	if err != nil {
		return err
	}

	settings, err := buildSettings(cmd, cf, values)
	if err != nil {
		return err
	}

	session, err := grab.NewSession(
		settings,
		screen.Resolve(os.Getenv("SCREENGRAB_BACKEND")),
		snapshot.NewWriter(afero.NewOsFs()),
	)
	if err != nil {
		return err
	}

	_, err = session.Run()
	return err
}

// buildSettings merges the config file defaults with whichever flags
// were set on the command line, flags always winning.
func buildSettings(cmd *cobra.Command, cf *captureFlags, values configdef.Values) (grab.Settings, error) {
	flags := cmd.Flags()

	settings := grab.Settings{
		OutputDir:       values.OutputDir,
		Output:          values.Output,
		Delay:           values.Delay,
		Display:         values.Display,
		TimestampFormat: values.TimestampFormat,
		Timestamp:       cf.timestamp,
		DateTimeLabel:   cf.label || values.DateTimeLabel,
		DateTimeFormat:  values.DateTimeFormat,
	}

	if flags.Changed("output") {
		settings.Output = cf.output
	}
	if flags.Changed("delay") {
		settings.Delay = cf.delay
	}
	if flags.Changed("display") {
		settings.Display = cf.display
	}

	region, err := regionFromFlags(cmd, cf)
	if err != nil {
		return grab.Settings{}, err
	}
	settings.Region = region

	intervalGiven, timeLimitGiven := flags.Changed("interval"), flags.Changed("time-limit")
	if intervalGiven != timeLimitGiven {
		return grab.Settings{}, fmt.Errorf(
			"%w: both --interval and --time-limit must be provided for interval capture", grab.ErrValidation,
		)
	}
	if intervalGiven {
		settings.Interval = cf.interval
		settings.TimeLimit = cf.timeLimit
	}

	return settings, nil
}

func regionFromFlags(cmd *cobra.Command, cf *captureFlags) (*grab.Region, error) {
	flags := cmd.Flags()

	given := 0
	for _, name := range []string{"x1", "y1", "x2", "y2"} {
		if flags.Changed(name) {
			given++
		}
	}

	if given == 0 {
		return nil, nil
	}

	if given < 4 {
		return nil, fmt.Errorf(
			"%w: all coordinates (--x1, --y1, --x2, --y2) must be provided for region capture", grab.ErrValidation,
		)
	}

	return &grab.Region{
		X1: cf.x1,
		Y1: cf.y1,
		X2: cf.x2,
		Y2: cf.y2,
	}, nil
}
