package cli

import (
	"testing"

	"github.com/matryer/is"
	"github.com/takama/daemon"
)

type fakeDaemon struct {
	verbs       []string
	installArgs []string
}

func (d *fakeDaemon) GetTemplate() string { return "" }

func (d *fakeDaemon) SetTemplate(string) error { return nil }

func (d *fakeDaemon) Install(args ...string) (string, error) {
	d.verbs = append(d.verbs, "install")
	d.installArgs = args
	return "installed", nil
}

func (d *fakeDaemon) Remove() (string, error) {
	d.verbs = append(d.verbs, "remove")
	return "removed", nil
}

func (d *fakeDaemon) Start() (string, error) {
	d.verbs = append(d.verbs, "start")
	return "started", nil
}

func (d *fakeDaemon) Stop() (string, error) {
	d.verbs = append(d.verbs, "stop")
	return "stopped", nil
}

func (d *fakeDaemon) Status() (string, error) {
	d.verbs = append(d.verbs, "status")
	return "status", nil
}

func (d *fakeDaemon) Run(e daemon.Executable) (string, error) { return "", nil }

func TestManageServiceDispatchesVerbs(t *testing.T) {
	is := is.New(t)
	fake := &fakeDaemon{}

	for _, verb := range []string{"install", "remove", "start", "stop", "status"} {
		_, err := manageService(fake, verb, nil)
		is.NoErr(err)
	}
	is.Equal(fake.verbs, []string{"install", "remove", "start", "stop", "status"})
}

func TestManageServicePassesCaptureFlagsThroughToInstall(t *testing.T) {
	is := is.New(t)
	fake := &fakeDaemon{}

	status, err := manageService(fake, "install", []string{"-i", "60", "-l", "3600", "-t"})
	is.NoErr(err)
	is.Equal(status, "installed")
	is.Equal(fake.installArgs, []string{"-i", "60", "-l", "3600", "-t"})
}

func TestManageServiceRejectsUnknownVerb(t *testing.T) {
	is := is.New(t)
	_, err := manageService(&fakeDaemon{}, "reinstall", nil)
	is.True(err != nil)
	is.Equal(err.Error(), `unknown service command "reinstall"`)
}
