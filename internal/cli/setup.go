package cli

import (
	"errors"

	"github.com/spf13/cobra"
	"github.com/tauraamui/screengrab/pkg/config"
	"github.com/tauraamui/screengrab/pkg/configdef"
	"github.com/tauraamui/screengrab/pkg/log"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Create the default config file",
	RunE: func(cmd *cobra.Command, args []string) error {
		log.Info("Setting up screengrab config...")

		err := config.DefaultCreator().Create()
		if err != nil {
			if !errors.Is(err, configdef.ErrConfigAlreadyExists) {
				return err
			}
			log.Warn(err.Error())
		}

		log.Info("Setup successful...")
		return nil
	},
}

var removeSetupCmd = &cobra.Command{
	Use:   "remove-setup",
	Short: "Remove the config file",
	RunE: func(cmd *cobra.Command, args []string) error {
		log.Info("Removing setup for screengrab...")

		if err := config.DefaultDestroyer().Destroy(); err != nil {
			return err
		}

		log.Info("Removing setup successful...")
		return nil
	},
}
