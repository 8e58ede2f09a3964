package service

import (
	"context"
	"errors"
	"log/slog"

	"mangarate/internal/config"

	"github.com/coreos/go-oidc/v3/oidc"
	"golang.org/x/oauth2"
)

// OIDCIdentity is what the login flow extracts from a verified ID token.
type OIDCIdentity struct {
	Subject  string
	Name     string
	Email    string
	Provider string
}

// OIDCService wraps the OAuth redirect/callback flow against the configured
// provider. When no provider is configured the login endpoints stay mounted
// but report auth as disabled.
type OIDCService struct {
	provider     *oidc.Provider
	config       oauth2.Config
	providerName string
	enabled      bool
}

func NewOIDCService(cfg *config.Config, logger *slog.Logger) *OIDCService {
	if cfg.OIDCProvider == "" {
		logger.Warn("OIDC_PROVIDER not set, login disabled")
		return &OIDCService{enabled: false}
	}

	provider, err := oidc.NewProvider(context.Background(), cfg.OIDCProvider)
	if err != nil {
		logger.Error("failed to init OIDC provider", "error", err)
		return &OIDCService{enabled: false}
	}

	conf := oauth2.Config{
		ClientID:     cfg.OIDCClientID,
		ClientSecret: cfg.OIDCClientSecret,
		RedirectURL:  cfg.OIDCRedirectURL,
		Endpoint:     provider.Endpoint(),
		Scopes:       []string{oidc.ScopeOpenID, "profile", "email"},
	}

	return &OIDCService{
		provider:     provider,
		config:       conf,
		providerName: cfg.OIDCProvider,
		enabled:      true,
	}
}

func (s *OIDCService) Enabled() bool {
	return s.enabled
}

// AuthCodeURL returns the provider URL the browser is redirected to.
func (s *OIDCService) AuthCodeURL(state string) string {
	return s.config.AuthCodeURL(state)
}

// Exchange trades the callback code for tokens and returns the verified
// identity from the ID token.
func (s *OIDCService) Exchange(ctx context.Context, code string) (*OIDCIdentity, error) {
	token, err := s.config.Exchange(ctx, code)
	if err != nil {
		return nil, errors.New("failed to exchange authorization code")
	}

	rawIDToken, ok := token.Extra("id_token").(string)
	if !ok {
		return nil, errors.New("no id_token in token response")
	}

	verifier := s.provider.Verifier(&oidc.Config{ClientID: s.config.ClientID})
	idToken, err := verifier.Verify(ctx, rawIDToken)
	if err != nil {
		return nil, errors.New("id token verification failed")
	}

	var claims struct {
		Name  string `json:"name"`
		Email string `json:"email"`
	}
	if err := idToken.Claims(&claims); err != nil {
		return nil, err
	}

	return &OIDCIdentity{
		Subject:  idToken.Subject,
		Name:     claims.Name,
		Email:    claims.Email,
		Provider: s.providerName,
	}, nil
}
