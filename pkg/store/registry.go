package store

import (
	"fmt"
	"strings"

	"github.com/go-viper/mapstructure/v2"

	errUtils "github.com/cloudposse/ticktock/errors"
	"github.com/cloudposse/ticktock/pkg/schema"
)

// New builds the backend named by cfg.Type. An empty type selects the file store.
func New(cfg schema.StoreConfig) (Store, error) {
	switch strings.ToLower(cfg.Type) {
	case TypeMemory:
		return NewInMemoryStore(), nil

	case "", TypeFile:
		var opts FileStoreOptions
		if err := parseOptions(cfg.Options, &opts); err != nil {
			return nil, err
		}
		return NewFileStore(opts)

	case TypeRedis:
		var opts RedisStoreOptions
		if err := parseOptions(cfg.Options, &opts); err != nil {
			return nil, err
		}
		return NewRedisStore(opts)

	case TypeSQLite:
		var opts SQLiteStoreOptions
		if err := parseOptions(cfg.Options, &opts); err != nil {
			return nil, err
		}
		return NewSQLiteStore(opts)

	default:
		return nil, errUtils.Build(errUtils.ErrUnknownStoreType).
			WithExplanationf("Store type %q is not supported.", cfg.Type).
			WithHintf("Set store.type to one of %s, %s, %s or %s", TypeFile, TypeMemory, TypeRedis, TypeSQLite).
			WithContext("type", cfg.Type).
			WithExitCode(errUtils.ExitCodeUsage).
			Err()
	}
}

func parseOptions(options map[string]interface{}, target interface{}) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		ErrorUnused:      true,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return fmt.Errorf("%w: %w", errUtils.ErrStoreOptions, err)
	}
	if err := decoder.Decode(options); err != nil {
		return fmt.Errorf("%w: %w", errUtils.ErrStoreOptions, err)
	}
	return nil
}
