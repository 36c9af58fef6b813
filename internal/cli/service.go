package cli

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
	"github.com/takama/daemon"
	"github.com/tauraamui/screengrab/pkg/log"
)

const (
	serviceName        = "screengrab"
	serviceDescription = "Screengrab service which captures interval screenshots to disk"
)

var serviceCmd = &cobra.Command{
	Use:   "service <install|remove|start|stop|status>",
	Short: "Manage screengrab as an installed interval capture service",
	Long: `service installs screengrab into the system's service manager so
that interval captures run unattended. Any arguments after the verb are
passed through to the installed service invocation, e.g.

  screengrab service install -i 60 -l 3600 -t`,
	Args:      cobra.MinimumNArgs(1),
	ValidArgs: []string{"install", "remove", "start", "stop", "status"},
	// leave capture flags after the verb untouched so they reach the
	// installed service invocation verbatim
	DisableFlagParsing: true,
	RunE:               runService,
}

func runService(cmd *cobra.Command, args []string) error {
	daemonType := daemon.SystemDaemon
	if runtime.GOOS == "darwin" {
		daemonType = daemon.UserAgent
	}

	srv, err := daemon.New(serviceName, serviceDescription, daemonType)
	if err != nil {
		return err
	}

	status, err := manageService(srv, args[0], args[1:])
	if err != nil {
		return err
	}

	log.Info(status)
	return nil
}

func manageService(srv daemon.Daemon, verb string, passthrough []string) (string, error) {
	switch verb {
	case "install":
		return srv.Install(passthrough...)
	case "remove":
		return srv.Remove()
	case "start":
		return srv.Start()
	case "stop":
		return srv.Stop()
	case "status":
		return srv.Status()
	default:
		return "", fmt.Errorf("unknown service command %q", verb)
	}
}
