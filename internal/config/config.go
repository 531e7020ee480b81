package config

import (
	"os"

	"github.com/rotisserie/eris"
)

// SMTP endpoint is fixed; only the password comes from the environment.
// The service mailbox sends submission reports to itself.
const (
	SMTPHost     = "smtp.gmail.com"
	SMTPPort     = 587
	SMTPUsername = "kata.chatbot@gmail.com"
)

// Config holds everything read from the environment at startup. It is built
// once in main and passed by reference; nothing re-reads the environment
// after that.
type Config struct {
	GeminiAPIKey string
	SMTPPassword string
	Port         string
}

// ErrMissingKey marks an absent credential. Callers degrade the affected
// collaborator instead of failing startup.
var ErrMissingKey = eris.New("credential not set")

// FromEnv builds a Config from the process environment. Missing credentials
// are left empty; the advisor and mailer each check for their own and fall
// back gracefully, so this never returns an error for an absent secret.
func FromEnv() *Config {
	cfg := &Config{
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		SMTPPassword: os.Getenv("SMTP_PASSWORD"),
		Port:         os.Getenv("PORT"),
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	return cfg
}

// RequireGemini reports whether the text-generation client can be built.
func (c *Config) RequireGemini() error {
	if c.GeminiAPIKey == "" {
		return eris.Wrap(ErrMissingKey, "GEMINI_API_KEY")
	}
	return nil
}

// RequireSMTP reports whether mail delivery is possible.
func (c *Config) RequireSMTP() error {
	if c.SMTPPassword == "" {
		return eris.Wrap(ErrMissingKey, "SMTP_PASSWORD")
	}
	return nil
}
