// Package testutil holds helpers shared by package tests.
package testutil

import (
	"github.com/rs/zerolog"
)

func MakeNoopLogger() *zerolog.Logger {
	log := zerolog.Nop()
	return &log
}
