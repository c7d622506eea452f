package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/llmpid-console/internal/client/client"
	"github.com/dmitrijs2005/llmpid-console/internal/client/session"
	"github.com/dmitrijs2005/llmpid-console/internal/client/token"
	"github.com/dmitrijs2005/llmpid-console/internal/common"
	"github.com/dmitrijs2005/llmpid-console/internal/logging"
)

// ErrNoToken means the API accepted a call that should have issued a
// credential but returned none.
var ErrNoToken = errors.New("no access token in response")

// AuthService runs the session lifecycle. It is the only writer of
// session.Store besides the gateway's 401 observer.
//
// Contract:
//   - Login: on a returned token the store holds it; otherwise the store is
//     untouched and the error matches common.ErrAuthentication.
//   - ChangePassword: on a returned token the store holds the new one; on any
//     failure the store is untouched.
//   - Logout: asks the API to end the session, then clears the store no
//     matter what the API answered. The remote error is returned for
//     reporting only.
//   - Identity: the display identity decoded from the held credential.
type AuthService interface {
	Login(ctx context.Context, username, password string) error
	ChangePassword(ctx context.Context, username, oldPassword, newPassword string) error
	Logout(ctx context.Context) error
	Identity() token.Identity
	Authenticated() bool
}

type authService struct {
	client client.Client
	store  *session.Store
	prefs  PreferencesService
	log    logging.Logger
}

// NewAuthService binds the lifecycle to an API client and the session store.
// prefs may be nil when no local database is available.
func NewAuthService(c client.Client, store *session.Store, prefs PreferencesService, log logging.Logger) AuthService {
	if log == nil {
		log = logging.Discard()
	}
	return &authService{client: c, store: store, prefs: prefs, log: log.With("module", "auth")}
}

func (a *authService) Login(ctx context.Context, username, password string) error {
	if err := validate(loginPayload{Username: username, Password: password}); err != nil {
		return err
	}

	tok, err := a.client.Login(ctx, username, password)
	if err != nil {
		a.log.Warn(ctx, "login failed", "username", username, "error", err)
		return fmt.Errorf("%w: %w", common.ErrAuthentication, err)
	}
	if tok == "" {
		a.log.Warn(ctx, "login returned no token", "username", username)
		return fmt.Errorf("%w: %w", common.ErrAuthentication, ErrNoToken)
	}

	a.store.Set(session.Credential(tok))
	a.log.Info(ctx, "logged in", "username", username)

	if a.prefs != nil {
		if err := a.prefs.RememberUsername(ctx, username); err != nil {
			a.log.Warn(ctx, "could not remember username", "error", err)
		}
	}
	return nil
}

func (a *authService) ChangePassword(ctx context.Context, username, oldPassword, newPassword string) error {
	p := changePasswordPayload{Username: username, OldPassword: oldPassword, NewPassword: newPassword}
	if err := validate(p); err != nil {
		return err
	}
	if !a.store.Authenticated() {
		return fmt.Errorf("change password: %w", client.ErrUnauthorized)
	}

	tok, err := a.client.ChangePassword(ctx, username, oldPassword, newPassword)
	if err != nil {
		a.log.Warn(ctx, "change password failed", "username", username, "error", err)
		return fmt.Errorf("change password: %w", err)
	}
	if tok == "" {
		return fmt.Errorf("change password: %w", ErrNoToken)
	}

	a.store.Set(session.Credential(tok))
	a.log.Info(ctx, "password changed, credential rotated", "username", username)
	return nil
}

func (a *authService) Logout(ctx context.Context) error {
	if !a.store.Authenticated() {
		return nil
	}

	remoteErr := a.client.Logout(ctx)
	if remoteErr != nil {
		a.log.Warn(ctx, "remote logout failed, clearing local session anyway", "error", remoteErr)
	}

	a.store.Clear()
	a.log.Info(ctx, "logged out")

	if remoteErr != nil {
		return fmt.Errorf("logout: %w", remoteErr)
	}
	return nil
}

func (a *authService) Identity() token.Identity {
	cred, _ := a.store.Get()
	return token.DecodeIdentity(string(cred))
}

func (a *authService) Authenticated() bool {
	return a.store.Authenticated()
}
