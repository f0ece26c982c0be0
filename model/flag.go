package model

import "time"

type Flags struct {
	// Workflow selection
	Report string
	JSON   bool
	Debug  bool

	// Connection flags, empty values fall back to the environment
	BaseURL string
	Token   string
	Timeout time.Duration
}
