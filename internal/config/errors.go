package config

import "errors"

// ErrUnknownKey is returned by Set for keys it does not manage
var ErrUnknownKey = errors.New("unknown config key")
