// Copyright (c) 2026 Marquee. All rights reserved.
// Author: asher.court.dev@gmail.com

package sitecfg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ashercourt/marquee/internal/platform/apperr"
	"github.com/ashercourt/marquee/internal/platform/crud"
	"github.com/ashercourt/marquee/internal/platform/database/schema"
)

/*
TestFirstLiveOpts pins the singleton read: the newest live row wins when
legacy data holds more than one, and exactly one row is fetched.
*/
func TestFirstLiveOpts(t *testing.T) {
	opts := firstLiveOpts(schema.SiteShopConfig.IsDeleted)

	assert.Equal(t, []crud.Cond{{Column: schema.SiteShopConfig.IsDeleted, Value: false}}, opts.Eq)
	assert.Equal(t, "created_at", opts.SortBy)
	assert.True(t, opts.Desc)
	assert.Equal(t, 1, opts.Limit)
}

func TestWhitelistedRejectsUnknownColumn(t *testing.T) {
	_, err := whitelisted(map[string]any{"is_deleted": true}, shopConfigColumns)
	require.Error(t, err)
	assert.Equal(t, "VALIDATION_ERROR", apperr.CodeOf(err))
}

func TestWhitelistedCopiesAllowedColumns(t *testing.T) {
	fields, err := whitelisted(map[string]any{
		schema.SiteShopConfig.Headline: "Prints & posters",
	}, shopConfigColumns)
	require.NoError(t, err)
	assert.Equal(t, crud.Fields{schema.SiteShopConfig.Headline: "Prints & posters"}, fields)
}
