package service

import "errors"

var (
	ErrUnknownMencion = errors.New("unknown mención")
	ErrInvalidInput   = errors.New("invalid input")
)
