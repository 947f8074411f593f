package rediskv

import (
	"errors"
	"fmt"

	"github.com/fsdevblog/shortcode/internal/repositories"
	"github.com/redis/go-redis/v9"
)

func convertErrorType(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, redis.Nil) {
		return fmt.Errorf("%w: %w", repositories.ErrNotFound, err)
	}
	return fmt.Errorf("%w: %w", repositories.ErrUnknown, err)
}
