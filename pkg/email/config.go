package email

// Config holds the relay provider configuration. The publishable key is a
// client-exposed identifier, not a secret; all three identifiers are
// provider-side configuration selecting the sending channel and template.
type Config struct {
	PublicKey  string `env:"PUBLIC_EMAILJS_PUBLIC_KEY,required"`
	ServiceID  string `env:"PUBLIC_EMAILJS_SERVICE_ID,required"`
	TemplateID string `env:"PUBLIC_EMAILJS_TEMPLATE_ID,required"`
	BaseURL    string `env:"EMAILJS_BASE_URL" envDefault:"https://api.emailjs.com"`
}
