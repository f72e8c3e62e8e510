// Copyright (c) 2026 Marquee. All rights reserved.
// Author: asher.court.dev@gmail.com

package chapter

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ashercourt/marquee/internal/platform/apperr"
)

func newTestService() *Service {
	return NewService(NewRepository(nil), slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestCreateValidation(t *testing.T) {
	service := newTestService()
	ctx := context.Background()
	projectID := "0192aaaa-0000-7000-8000-000000000001"

	tests := []struct {
		name      string
		projectID string
		input     CreateInput
	}{
		{
			name:      "missing title",
			projectID: projectID,
			input:     CreateInput{Number: 1},
		},
		{
			name:      "malformed project id",
			projectID: "not-a-uuid",
			input:     CreateInput{Title: "Episode 1", Number: 1},
		},
		{
			name:      "negative number",
			projectID: projectID,
			input:     CreateInput{Title: "Episode 1", Number: -2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.Create(ctx, tt.projectID, tt.input)
			require.Error(t, err)
			assert.Equal(t, "VALIDATION_ERROR", apperr.CodeOf(err))
		})
	}
}

func TestUpdateRejectsUnknownColumn(t *testing.T) {
	service := newTestService()

	_, err := service.Update(context.Background(), "some-id", map[string]any{
		"project_id": "moving chapters between projects is not a thing",
	})

	require.Error(t, err)
	assert.Equal(t, "VALIDATION_ERROR", apperr.CodeOf(err))
}
