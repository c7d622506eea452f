package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/llmpid-console/internal/client/client"
	"github.com/dmitrijs2005/llmpid-console/internal/client/models"
	"github.com/dmitrijs2005/llmpid-console/internal/client/session"
)

func newOverview(fc *fakeClient, store *session.Store) OverviewService {
	auth := NewAuthService(fc, store, nil, nil)
	return NewOverviewService(auth, NewClassificationService(fc), NewExternalSystemService(fc))
}

func TestOverview_LoadsBoth(t *testing.T) {
	fc := &fakeClient{
		ListRet:    []models.Classification{{ID: 1, Result: models.ResultNormal}},
		SystemsRet: []models.ExternalSystem{{Name: "svc-A"}},
	}
	store := session.NewStore()
	store.Set(session.Credential(signed(t, "operator")))

	ov, err := newOverview(fc, store).Load(context.Background(), models.ListQuery{Page: 2, Limit: 5, Sort: models.DefaultSort})
	require.NoError(t, err)
	assert.Equal(t, "operator", ov.Identity.Username)
	assert.Equal(t, 2, ov.Query.Page)
	assert.Len(t, ov.Classifications, 1)
	assert.Len(t, ov.Systems, 1)
	assert.ElementsMatch(t, []string{"list", "systems"}, fc.Calls())
}

func TestOverview_FirstErrorCancelsTheOther(t *testing.T) {
	cancelled := make(chan struct{})
	fc := &fakeClient{SystemsErr: client.ErrUnavailable}
	fc.onList = func(ctx context.Context) {
		<-ctx.Done()
		close(cancelled)
	}

	_, err := newOverview(fc, session.NewStore()).Load(context.Background(), models.DefaultListQuery())
	require.ErrorIs(t, err, client.ErrUnavailable)

	select {
	case <-cancelled:
	default:
		t.Fatal("history call was not cancelled")
	}
}
