package model

import "github.com/pkg/errors"

var (
	ErrUsage        = errors.New("usage")
	ErrEmptyInput   = errors.New("no note events found at all")
	ErrNoSegments   = errors.New("no usable segments built")
	ErrInvalidInput = errors.New("invalid input")
)
