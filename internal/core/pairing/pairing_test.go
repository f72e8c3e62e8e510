// Copyright (c) 2026 Marquee. All rights reserved.
// Author: asher.court.dev@gmail.com

package pairing

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestOtherEndpoint(t *testing.T) {
	edge := Pairing{
		SourceID:  "aaa",
		SourceRef: RefFilm,
		TargetID:  "bbb",
		TargetRef: RefRecipe,
	}

	tests := []struct {
		name      string
		known     Endpoint
		wantOther Endpoint
		wantOK    bool
	}{
		{
			name:      "known is source",
			known:     Endpoint{ID: "aaa", Ref: RefFilm},
			wantOther: Endpoint{ID: "bbb", Ref: RefRecipe},
			wantOK:    true,
		},
		{
			name:      "known is target",
			known:     Endpoint{ID: "bbb", Ref: RefRecipe},
			wantOther: Endpoint{ID: "aaa", Ref: RefFilm},
			wantOK:    true,
		},
		{
			name:   "matching id but wrong ref is not on the edge",
			known:  Endpoint{ID: "aaa", Ref: RefSong},
			wantOK: false,
		},
		{
			name:   "unrelated endpoint",
			known:  Endpoint{ID: "ccc", Ref: RefFilm},
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			other, ok := OtherEndpoint(edge, tt.known)
			require.Equal(t, tt.wantOK, ok)
			if ok {
				assert.Equal(t, tt.wantOther, other)
			}
		})
	}
}

func TestRefClassification(t *testing.T) {
	for _, ref := range Refs() {
		assert.True(t, ref.IsValid(), string(ref))
	}
	assert.False(t, Ref("Podcast").IsValid())

	assert.True(t, RefFilm.IsCatalogItem())
	assert.True(t, RefAudiobook.IsCatalogItem())
	assert.False(t, RefRecipe.IsCatalogItem())
	assert.False(t, Ref("Podcast").IsCatalogItem())
}

func TestCreateRejectsSelfPair(t *testing.T) {
	service := NewService(nil, discardLogger())

	same := Endpoint{ID: "0192aaaa-0000-7000-8000-000000000001", Ref: RefFilm}
	_, err := service.Create(context.Background(), CreateInput{Source: same, Target: same})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "itself")
}

func TestCreateRejectsUnknownRef(t *testing.T) {
	service := NewService(nil, discardLogger())

	_, err := service.Create(context.Background(), CreateInput{
		Source: Endpoint{ID: "0192aaaa-0000-7000-8000-000000000001", Ref: Ref("Podcast")},
		Target: Endpoint{ID: "0192aaaa-0000-7000-8000-000000000002", Ref: RefRecipe},
	})

	require.Error(t, err)
}
