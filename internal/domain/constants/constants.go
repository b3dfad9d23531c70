// Package constants holds identifiers shared by configuration and infrastructure.
package constants

const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"

	MailProviderSMTP = "smtp"
	MailProviderLog  = "log"
)
