package tls

import (
	"context"
	"crypto/tls"
	"fmt"
	"strings"

	"golang.org/x/crypto/acme/autocert"

	"github.com/schalder/ecombuildr-edge/internal/edge/store"
	apperrors "github.com/schalder/ecombuildr-edge/pkg/errors"
	"github.com/schalder/ecombuildr-edge/pkg/utils"
)

// Config holds TLS configuration.
type Config struct {
	AutoCert      bool
	CertDir       string
	SystemDomains []string
	CertFile      string
	KeyFile       string
	Email         string // Email for Let's Encrypt registration
}

// Manager handles TLS certificate management. With autocert enabled it
// issues certificates on demand for system domains and for verified tenant
// custom domains looked up in the content store.
type Manager struct {
	config      Config
	autocertMgr *autocert.Manager
	tlsConfig   *tls.Config
}

// NewManager creates a new TLS manager.
func NewManager(cfg Config, contentStore store.ContentStore) (*Manager, error) {
	m := &Manager{
		config: cfg,
	}

	if cfg.AutoCert {
		// Setup autocert for Let's Encrypt
		m.autocertMgr = &autocert.Manager{
			Prompt:     autocert.AcceptTOS,
			HostPolicy: hostPolicy(cfg.SystemDomains, contentStore),
			Cache:      autocert.DirCache(cfg.CertDir),
			Email:      cfg.Email,
		}

		m.tlsConfig = &tls.Config{
			GetCertificate: m.autocertMgr.GetCertificate,
			MinVersion:     tls.VersionTLS12,
		}
	} else if cfg.CertFile != "" && cfg.KeyFile != "" {
		// Load manual certificates
		cert, err := tls.LoadX509KeyPair(cfg.CertFile, cfg.KeyFile)
		if err != nil {
			return nil, apperrors.NewAppError("TLS_CERTS", "failed to load certificates", err)
		}

		m.tlsConfig = &tls.Config{
			Certificates: []tls.Certificate{cert},
			MinVersion:   tls.VersionTLS12,
		}
	}

	return m, nil
}

// hostPolicy allows certificate issuance for first-party domains and for
// custom domains that a tenant has verified. Unverified hosts are refused so
// the account does not burn rate limits on dangling DNS.
func hostPolicy(systemDomains []string, contentStore store.ContentStore) autocert.HostPolicy {
	return func(ctx context.Context, host string) error {
		host = strings.ToLower(host)
		for _, d := range systemDomains {
			if host == d || strings.HasSuffix(host, "."+d) {
				return nil
			}
		}

		domain, err := contentStore.CustomDomainByHost(ctx, utils.HostVariants(host))
		if err != nil {
			return apperrors.Wrap(err, "host lookup failed for "+host)
		}
		if domain == nil {
			return fmt.Errorf("%w: %s", apperrors.ErrDomainNotFound, host)
		}
		if !domain.IsVerified {
			return fmt.Errorf("%w: %s not verified", apperrors.ErrInvalidHost, host)
		}
		return nil
	}
}

// GetTLSConfig returns the TLS configuration.
func (m *Manager) GetTLSConfig() *tls.Config {
	return m.tlsConfig
}

// Only needed for autocert.
func (m *Manager) GetHTTPHandler() *autocert.Manager {
	return m.autocertMgr
}

// IsEnabled returns whether TLS is enabled.
func (m *Manager) IsEnabled() bool {
	return m.tlsConfig != nil
}
