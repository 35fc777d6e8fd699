package logger

import (
	"go.uber.org/zap"
)

var (
	String   = zap.String
	Int      = zap.Int
	Int64    = zap.Int64
	Duration = zap.Duration
	Bool     = zap.Bool
	ErrorF   = zap.Error
	Any      = zap.Any
)

type (
	Field = zap.Field
)
