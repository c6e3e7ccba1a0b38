package email

// Config holds the outbound email settings for operator notifications.
// The Postmark tokens may be left empty in environments that never send
// (local development, CI); constructing the client then fails fast instead
// of sending with bad credentials. SenderEmail is the from address on every
// notification and SupportEmail receives replies.
type Config struct {
	PostmarkServerToken  string `env:"POSTMARK_SERVER_TOKEN"`
	PostmarkAccountToken string `env:"POSTMARK_ACCOUNT_TOKEN"`
	SenderEmail          string `env:"SENDER_EMAIL,required"`
	SupportEmail         string `env:"SUPPORT_EMAIL,required"`
}
