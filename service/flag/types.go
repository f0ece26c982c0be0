package flag

import (
	"github.com/elC0mpa/ha-doctor/model"
	"github.com/spf13/pflag"
)

type service struct {
	flags *pflag.FlagSet
}

type FlagService interface {
	GetParsedFlags(report string) (model.Flags, error)
}
