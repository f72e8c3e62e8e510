// Copyright (c) 2026 Marquee. All rights reserved.
// Author: asher.court.dev@gmail.com

package admin

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ashercourt/marquee/internal/platform/apperr"
	"github.com/ashercourt/marquee/internal/platform/sec"
)

type fakeSessions struct {
	created []string
	revoked []string
}

func (f *fakeSessions) Create(_ context.Context, sessionID, _ string, _ time.Duration) error {
	f.created = append(f.created, sessionID)
	return nil
}

func (f *fakeSessions) Revoke(_ context.Context, sessionID string) error {
	f.revoked = append(f.revoked, sessionID)
	return nil
}

type fakeTokens struct {
	err error
}

func (f *fakeTokens) GenerateAccessToken(_, _, _ string, _ time.Duration) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return "signed-token", nil
}

func newTestService(t *testing.T, tokens TokenProvider) (*Service, *fakeSessions) {
	t.Helper()

	hash, err := sec.HashPassword("correct horse battery staple")
	require.NoError(t, err)

	sessions := &fakeSessions{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewService("admin@marquee.page", hash, sessions, tokens, logger), sessions
}

func TestLoginSuccess(t *testing.T) {
	service, sessions := newTestService(t, &fakeTokens{})

	session, err := service.Login(context.Background(), LoginInput{
		Email:    "admin@marquee.page",
		Password: "correct horse battery staple",
	})
	require.NoError(t, err)

	assert.Equal(t, "signed-token", session.AccessToken)
	assert.Equal(t, string(sec.RoleAdmin), session.Role)
	assert.Len(t, sessions.created, 1)
	assert.Empty(t, sessions.revoked)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	testCases := []struct {
		name     string
		email    string
		password string
	}{
		{name: "wrong email", email: "intruder@example.com", password: "correct horse battery staple"},
		{name: "wrong password", email: "admin@marquee.page", password: "guess"},
		{name: "empty credentials", email: "", password: ""},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			service, sessions := newTestService(t, &fakeTokens{})

			_, err := service.Login(context.Background(), LoginInput{
				Email:    testCase.email,
				Password: testCase.password,
			})
			require.Error(t, err)
			assert.Equal(t, "UNAUTHORIZED", apperr.CodeOf(err))
			assert.Empty(t, sessions.created)
		})
	}
}

func TestLoginRollsBackSessionWhenSigningFails(t *testing.T) {
	service, sessions := newTestService(t, &fakeTokens{err: errors.New("no key")})

	_, err := service.Login(context.Background(), LoginInput{
		Email:    "admin@marquee.page",
		Password: "correct horse battery staple",
	})
	require.Error(t, err)

	// The orphaned session must not survive the failed login.
	require.Len(t, sessions.created, 1)
	assert.Equal(t, sessions.created, sessions.revoked)
}

func TestLogoutRevokesSession(t *testing.T) {
	service, sessions := newTestService(t, &fakeTokens{})

	require.NoError(t, service.Logout(context.Background(), "session-123"))
	assert.Equal(t, []string{"session-123"}, sessions.revoked)
}
