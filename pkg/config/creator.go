package config

import (
	"github.com/tauraamui/screengrab/internal/config"
	"github.com/tauraamui/screengrab/pkg/configdef"
)

type Creator interface {
	configdef.Creator
}

func DefaultCreator() Creator {
	return config.DefaultCreator()
}
