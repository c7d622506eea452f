package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/llmpid-console/internal/client/client"
	"github.com/dmitrijs2005/llmpid-console/internal/client/models"
	"github.com/dmitrijs2005/llmpid-console/internal/common"
)

func TestExternalSystems_AddTrimsName(t *testing.T) {
	fc := &fakeClient{AddRet: &models.Registration{Name: "svc-A", AccessKey: "k"}}
	svc := NewExternalSystemService(fc)

	reg, err := svc.Add(context.Background(), "  svc-A  ")
	require.NoError(t, err)
	assert.Equal(t, "svc-A", fc.LastName)
	assert.Equal(t, "k", reg.AccessKey)
}

func TestExternalSystems_NameBounds(t *testing.T) {
	cases := []struct {
		name  string
		input string
		ok    bool
	}{
		{"blank", "   ", false},
		{"too short", "abc", false},
		{"min", "abcd", true},
		{"max", strings.Repeat("x", MaxSystemNameLength), true},
		{"too long", strings.Repeat("x", MaxSystemNameLength+1), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fc := &fakeClient{AddRet: &models.Registration{Name: tc.input, AccessKey: "k"}}
			_, err := NewExternalSystemService(fc).Add(context.Background(), tc.input)
			if tc.ok {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, common.ErrValidation)
			assert.Empty(t, fc.Calls())
		})
	}
}

func TestExternalSystems_AddFailureReturnsNoRegistration(t *testing.T) {
	fc := &fakeClient{AddErr: client.ErrRemote}
	reg, err := NewExternalSystemService(fc).Add(context.Background(), "svc-A")
	require.ErrorIs(t, err, client.ErrRemote)
	assert.Nil(t, reg)
}

func TestExternalSystems_ListAndDelete(t *testing.T) {
	fc := &fakeClient{SystemsRet: []models.ExternalSystem{{Name: "svc-A"}, {Name: "svc-B"}}}
	svc := NewExternalSystemService(fc)
	ctx := context.Background()

	list, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 2)

	require.NoError(t, svc.Delete(ctx, " svc-A"))
	assert.Equal(t, "svc-A", fc.LastName)

	fc.DeleteErr = client.ErrUnavailable
	require.ErrorIs(t, svc.Delete(ctx, "svc-B"), client.ErrUnavailable)

	fc.SystemsErr = client.ErrUnavailable
	_, err = svc.List(ctx)
	require.ErrorIs(t, err, client.ErrUnavailable)
}
