package config

import (
	"github.com/tauraamui/screengrab/internal/config"
	"github.com/tauraamui/screengrab/pkg/configdef"
)

type Destroyer interface {
	configdef.Destroyer
}

func DefaultDestroyer() Destroyer {
	return config.DefaultDestroyer()
}
