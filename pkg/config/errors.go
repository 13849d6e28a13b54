package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig 所有校验失败的错误都包装此哨兵错误
var ErrInvalidConfig = errors.New("invalid config")

// invalidf 构造一个包装 ErrInvalidConfig 的校验错误
func invalidf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
}
