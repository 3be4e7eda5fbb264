package report

import "errors"

var ErrInvalidRange = errors.New("report range end must not be before start")
