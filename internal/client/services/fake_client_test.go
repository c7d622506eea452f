package services

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/llmpid-console/internal/client/models"
)

// fakeClient implements client.Client with canned answers and records calls.
type fakeClient struct {
	mu    sync.Mutex
	calls []string

	LoginToken string
	LoginErr   error

	ChangeToken string
	ChangeErr   error

	LogoutErr error

	ClassifyRet *models.ClassificationResult
	ClassifyErr error

	ListRet   []models.Classification
	ListErr   error
	LastQuery models.ListQuery

	SystemsRet []models.ExternalSystem
	SystemsErr error

	AddRet *models.Registration
	AddErr error

	DeleteErr error

	LastName     string
	LastText     string
	LastUsername string
	LastOld      string
	LastNew      string

	// onList runs inside ListClassifications before it returns.
	onList func(ctx context.Context)
}

func (f *fakeClient) record(name string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, name)
}

func (f *fakeClient) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

func (f *fakeClient) Login(ctx context.Context, username, password string) (string, error) {
	f.record("login")
	f.LastUsername = username
	return f.LoginToken, f.LoginErr
}

func (f *fakeClient) ChangePassword(ctx context.Context, username, oldPassword, newPassword string) (string, error) {
	f.record("change")
	f.LastUsername, f.LastOld, f.LastNew = username, oldPassword, newPassword
	return f.ChangeToken, f.ChangeErr
}

func (f *fakeClient) Logout(ctx context.Context) error {
	f.record("logout")
	return f.LogoutErr
}

func (f *fakeClient) Classify(ctx context.Context, text string) (*models.ClassificationResult, error) {
	f.record("classify")
	f.LastText = text
	if f.ClassifyErr != nil {
		return nil, f.ClassifyErr
	}
	r := *f.ClassifyRet
	return &r, nil
}

func (f *fakeClient) ListClassifications(ctx context.Context, q models.ListQuery) ([]models.Classification, error) {
	f.record("list")
	f.mu.Lock()
	f.LastQuery = q
	f.mu.Unlock()
	if f.onList != nil {
		f.onList(ctx)
	}
	return f.ListRet, f.ListErr
}

func (f *fakeClient) ListExternalSystems(ctx context.Context) ([]models.ExternalSystem, error) {
	f.record("systems")
	return f.SystemsRet, f.SystemsErr
}

func (f *fakeClient) AddExternalSystem(ctx context.Context, name string) (*models.Registration, error) {
	f.record("add")
	f.LastName = name
	return f.AddRet, f.AddErr
}

func (f *fakeClient) DeleteExternalSystem(ctx context.Context, name string) error {
	f.record("delete")
	f.LastName = name
	return f.DeleteErr
}

// fakePrefs records RememberUsername calls.
type fakePrefs struct {
	remembered []string
	err        error
}

func (p *fakePrefs) Load(ctx context.Context) (Preferences, error) { return DefaultPreferences(), nil }
func (p *fakePrefs) Save(ctx context.Context, _ Preferences) error  { return nil }
func (p *fakePrefs) Reset(ctx context.Context) error                { return nil }

func (p *fakePrefs) RememberUsername(ctx context.Context, username string) error {
	p.remembered = append(p.remembered, username)
	return p.err
}
