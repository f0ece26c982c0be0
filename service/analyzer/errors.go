package analyzer

import "errors"

// ErrUnknownReport is returned by Report for an unrecognized report kind
var ErrUnknownReport = errors.New("unknown report type")
