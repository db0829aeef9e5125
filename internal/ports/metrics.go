package ports

// DomainMetrics records business-level counters. Implementations must be
// safe for concurrent use.
type DomainMetrics interface {
	// RecordTodoMutation counts a successful create, update, delete or toggle.
	RecordTodoMutation(operation string)

	// RecordValidationFailure counts a payload rejected by validation.
	RecordValidationFailure(operation string)

	// RecordAuthFailure counts a rejected identity, labelled by reason.
	RecordAuthFailure(reason string)

	// RecordRateLimited counts a request refused by the rate limiter.
	RecordRateLimited()
}

// NopMetrics discards every observation.
type NopMetrics struct{}

func (NopMetrics) RecordTodoMutation(string)      {}
func (NopMetrics) RecordValidationFailure(string) {}
func (NopMetrics) RecordAuthFailure(string)       {}
func (NopMetrics) RecordRateLimited()             {}
