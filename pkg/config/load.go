// Package config загружает конфигурацию сервисов из файла и переменных окружения.
package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
	"go.uber.org/zap"

	"blogcore/pkg/logger"
)

const (
	msgLoadingConfiguration    = "loading configuration"
	msgConfigurationLoaded     = "configuration loaded successfully"
	msgConfigFileMissing       = "configuration file not found, reading environment only"
	errFailedLoadConfiguration = "failed to load configuration"

	attrService = "service"
	attrPath    = "path"
)

// Load читает конфигурацию типа T. Если path указывает на существующий файл
// (.env, .yaml, .toml, .json), значения берутся из него и перекрываются окружением;
// иначе используются только переменные окружения и env-default.
func Load[T any](ctx context.Context, serviceName, path string) (*T, error) {
	log := logger.Log(ctx).With(zap.String(attrService, serviceName))
	log.Info(ctx, msgLoadingConfiguration, zap.String(attrPath, path))

	var cfg T
	var err error

	switch {
	case path == "":
		err = cleanenv.ReadEnv(&cfg)
	default:
		if _, statErr := os.Stat(path); errors.Is(statErr, fs.ErrNotExist) {
			log.Debug(ctx, msgConfigFileMissing, zap.String(attrPath, path))
			err = cleanenv.ReadEnv(&cfg)
		} else {
			err = cleanenv.ReadConfig(path, &cfg)
		}
	}

	if err != nil {
		log.Error(ctx, errFailedLoadConfiguration, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errFailedLoadConfiguration, err)
	}

	log.Info(ctx, msgConfigurationLoaded)
	return &cfg, nil
}
