package service

// StoreMetrics records business events for monitoring.
type StoreMetrics interface {
	// OrderCreated counts a stored order by payment method.
	OrderCreated(paymentMethod string)
	// OtpSent counts a verification email attempt by outcome.
	OtpSent(delivered bool)
}
