package services

import (
	"github.com/sitebeam/config"
	"github.com/sitebeam/lib/mail"
	"github.com/sitebeam/lib/storage"
)

// Shared external adapters, wired once at startup. Tests swap in fakes.
var (
	appConfig   *config.Config
	objectStore *storage.Client
	mailer      mail.Mailer
)

// Configure wires the external adapters used by services
func Configure(cfg *config.Config, store *storage.Client, m mail.Mailer) {
	appConfig = cfg
	objectStore = store
	mailer = m
}

// publicURL returns the configured public base URL
func publicURL() string {
	if appConfig == nil {
		return "http://localhost:8080"
	}
	return appConfig.PublicURL
}

// sendMail delivers a notification best effort; failures are logged by callers
func sendMail(to, subject, body string) error {
	if mailer == nil {
		return nil
	}
	return mailer.Send(to, subject, body)
}
