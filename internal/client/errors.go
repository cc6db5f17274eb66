package client

import "errors"

var (
	ErrNoCommand      = errors.New("no command given")
	ErrUnknownCommand = errors.New("unknown command")
	ErrNoCredentials  = errors.New("command needs ADAPTER_USERNAME and ADAPTER_PASSWORD")
	ErrMissingFlag    = errors.New("missing required flag")
)
