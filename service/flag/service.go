package flag

import (
	"fmt"

	"github.com/elC0mpa/ha-doctor/model"
	"github.com/spf13/pflag"
)

const (
	BaseURLFlag = "url"
	TokenFlag   = "token"
	TimeoutFlag = "timeout"
	JSONFlag    = "json"
	DebugFlag   = "debug"
)

func NewService(flags *pflag.FlagSet) *service {
	return &service{flags: flags}
}

// Register declares the connection and output flags on the flag set
func Register(flags *pflag.FlagSet) {
	flags.String(BaseURLFlag, "", "Home Assistant base URL (overrides HA_BASE_URL)")
	flags.String(TokenFlag, "", "Long-lived access token (overrides HA_ACCESS_TOKEN)")
	flags.Duration(TimeoutFlag, 0, "HTTP timeout (overrides HA_TIMEOUT)")
	flags.Bool(JSONFlag, false, "Print the report as JSON instead of tables")
	flags.Bool(DebugFlag, false, "Enable debug logging")
}

// GetParsedFlags reads the registered flags for the given report workflow
func (s *service) GetParsedFlags(report string) (model.Flags, error) {
	baseURL, err := s.flags.GetString(BaseURLFlag)
	if err != nil {
		return model.Flags{}, fmt.Errorf("reading --%s: %w", BaseURLFlag, err)
	}

	token, err := s.flags.GetString(TokenFlag)
	if err != nil {
		return model.Flags{}, fmt.Errorf("reading --%s: %w", TokenFlag, err)
	}

	timeout, err := s.flags.GetDuration(TimeoutFlag)
	if err != nil {
		return model.Flags{}, fmt.Errorf("reading --%s: %w", TimeoutFlag, err)
	}

	jsonOutput, err := s.flags.GetBool(JSONFlag)
	if err != nil {
		return model.Flags{}, fmt.Errorf("reading --%s: %w", JSONFlag, err)
	}

	debug, err := s.flags.GetBool(DebugFlag)
	if err != nil {
		return model.Flags{}, fmt.Errorf("reading --%s: %w", DebugFlag, err)
	}

	return model.Flags{
		Report:  report,
		JSON:    jsonOutput,
		Debug:   debug,
		BaseURL: baseURL,
		Token:   token,
		Timeout: timeout,
	}, nil
}
