package config

import (
	"github.com/tauraamui/screengrab/internal/config"
	"github.com/tauraamui/screengrab/pkg/configdef"
)

type CreateResolver interface {
	configdef.CreateResolver
}

func DefaultCreateResolver() CreateResolver {
	return config.DefaultCreateResolver()
}
