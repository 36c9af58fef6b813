package config

import (
	"github.com/tauraamui/screengrab/internal/config"
	"github.com/tauraamui/screengrab/pkg/configdef"
)

type Resolver interface {
	configdef.Resolver
}

func DefaultResolver() Resolver {
	return config.DefaultResolver()
}
