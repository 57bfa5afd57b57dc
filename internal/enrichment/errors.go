package enrichment

import "errors"

var (
	ErrEmptyTitle      = errors.New("enrichment: title is empty")
	ErrEmptyCompletion = errors.New("enrichment: completion is empty")
	ErrThrottled       = errors.New("enrichment: outbound rate exceeded")
)
