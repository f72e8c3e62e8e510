// Copyright (c) 2026 Marquee. All rights reserved.
// Author: asher.court.dev@gmail.com

package shelf

import (
	"strings"

	"github.com/ashercourt/marquee/internal/core/project"
	"github.com/ashercourt/marquee/internal/platform/crud"
	"github.com/ashercourt/marquee/internal/platform/database/schema"
	"github.com/ashercourt/marquee/pkg/multival"
	"github.com/ashercourt/marquee/pkg/slug"
)

// comingSoonStatus is the status value the "coming soon" flag label
// aliases onto. There is no in_coming_soon check for that label; the row
// reads the status array instead.
const comingSoonStatus = "coming_soon"

// filterValues splits a comma-separated filter value into trimmed,
// non-empty parts. A multi-value filter means "any of".
func filterValues(row ContentRow) []string {
	parts := strings.Split(row.FilterValue, ",")
	values := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			values = append(values, trimmed)
		}
	}
	return values
}

// resolveFlagColumn maps a "flag" filter value onto a boolean column of
// the catalog item table.
//
// Resolution order: the special "coming soon" label aliases to status
// membership (second return true); otherwise the value is snake_cased and
// tried as in_<value>, then as an exact column name. An empty column with
// false means the value resolves to nothing.
func resolveFlagColumn(value string) (column string, comingSoonAlias bool) {
	normalized := slug.Snake(value)
	if normalized == comingSoonStatus {
		return "", true
	}

	known := schema.CatalogProject.FlagColumns()
	candidate := "in_" + normalized
	for _, flagColumn := range known {
		if flagColumn == candidate || flagColumn == normalized {
			return flagColumn, false
		}
	}
	return "", false
}

// containsFold reports whether any of haystack equals needle,
// case-insensitively.
func containsFold(haystack []string, needle string) bool {
	for _, candidate := range haystack {
		if strings.EqualFold(candidate, needle) {
			return true
		}
	}
	return false
}

// anyOverlapFold reports whether the two lists share any value,
// case-insensitively.
func anyOverlapFold(a, b []string) bool {
	for _, candidate := range a {
		if containsFold(b, candidate) {
			return true
		}
	}
	return false
}

/*
Matches decides whether a catalog item belongs on a row.

The rules, by filter type (all comparisons case-insensitive, and a
comma-separated filter value means "any of"):

  - content_type: any of the item's content types equals any filter value.
  - status: the item's status list contains any filter value.
  - flag: the filter value resolves to a boolean column that must be true;
    the label "coming soon" instead checks status membership.
  - custom: never matches here; callers log and skip these rows.
  - anything else: legacy single-type shortcut — the filter type itself
    names a content type the item must carry.

Soft-deleted items never match, whatever the filter says.
*/
func Matches(row ContentRow, item project.Project) bool {
	if item.IsDeleted {
		return false
	}

	itemTypes := multival.ToStringList(item.ContentType)
	itemStatuses := multival.ToStringList(item.Status)

	switch strings.ToLower(strings.TrimSpace(row.FilterType)) {
	case FilterContentType:
		return anyOverlapFold(itemTypes, filterValues(row))

	case FilterStatus:
		return anyOverlapFold(itemStatuses, filterValues(row))

	case FilterFlag:
		for _, value := range filterValues(row) {
			column, comingSoon := resolveFlagColumn(value)
			if comingSoon {
				if containsFold(itemStatuses, comingSoonStatus) {
					return true
				}
				continue
			}
			if column != "" && item.Flag(column) {
				return true
			}
		}
		return false

	case FilterCustom:
		return false

	default:
		// Legacy rows store the content type in filter_type directly.
		if project.ContentType(row.FilterType).IsValid() {
			return containsFold(itemTypes, row.FilterType)
		}
		return false
	}
}

// IsFetchable reports whether a row's filter can be evaluated at all.
// Custom rows are administrative placeholders: they are logged and
// skipped, never an error.
func IsFetchable(row ContentRow) bool {
	return strings.ToLower(strings.TrimSpace(row.FilterType)) != FilterCustom
}

/*
BuildFetchOpts translates a row into query options for the catalog item
table, so a shelf's members are selected server-side rather than by
scanning the whole catalog.

The boolean is false when the row cannot be expressed as a query (custom
rows, or filter values that resolve to nothing); callers treat that as an
empty shelf. Values interpolated into the raw array-membership clause are
restricted to the content type enum and snake_case status tokens, never
free text.
*/
func BuildFetchOpts(row ContentRow) (crud.GetOpts, bool) {
	ref := schema.CatalogProject
	opts := crud.GetOpts{
		Eq:     []crud.Cond{{Column: ref.IsDeleted, Value: false}},
		SortBy: ref.CreatedAt,
		Desc:   true,
	}

	var arrayClauses []string
	addTypeClause := func(contentType string) {
		arrayClauses = append(arrayClauses, "'"+contentType+"' = ANY("+ref.ContentType+")")
	}
	addStatusClause := func(status string) {
		arrayClauses = append(arrayClauses, "'"+status+"' = ANY("+ref.Status+")")
	}

	switch strings.ToLower(strings.TrimSpace(row.FilterType)) {
	case FilterContentType:
		for _, value := range filterValues(row) {
			for _, contentType := range project.ContentTypes() {
				if strings.EqualFold(value, string(contentType)) {
					addTypeClause(string(contentType))
				}
			}
		}

	case FilterStatus:
		for _, value := range filterValues(row) {
			addStatusClause(slug.Snake(value))
		}

	case FilterFlag:
		for _, value := range filterValues(row) {
			column, comingSoon := resolveFlagColumn(value)
			if comingSoon {
				addStatusClause(comingSoonStatus)
				continue
			}
			if column != "" {
				arrayClauses = append(arrayClauses, column+" = true")
			}
		}

	case FilterCustom:
		return crud.GetOpts{}, false

	default:
		if project.ContentType(row.FilterType).IsValid() {
			addTypeClause(row.FilterType)
		}
	}

	if len(arrayClauses) == 0 {
		return crud.GetOpts{}, false
	}
	opts.Or = strings.Join(arrayClauses, " OR ")
	return opts, true
}

// # Row Templates

// implied describes the item fields a row's filter controls.
type implied struct {
	flagColumns  []string
	contentTypes []string
	statuses     []string
}

// impliedFields computes which catalog item fields a row implies. Only
// values that resolve cleanly count; a custom row implies nothing.
func impliedFields(row ContentRow) implied {
	var result implied

	switch strings.ToLower(strings.TrimSpace(row.FilterType)) {
	case FilterContentType:
		for _, value := range filterValues(row) {
			for _, contentType := range project.ContentTypes() {
				if strings.EqualFold(value, string(contentType)) {
					result.contentTypes = append(result.contentTypes, string(contentType))
				}
			}
		}

	case FilterStatus:
		for _, value := range filterValues(row) {
			result.statuses = append(result.statuses, slug.Snake(value))
		}

	case FilterFlag:
		for _, value := range filterValues(row) {
			column, comingSoon := resolveFlagColumn(value)
			if comingSoon {
				result.statuses = append(result.statuses, comingSoonStatus)
				continue
			}
			if column != "" {
				result.flagColumns = append(result.flagColumns, column)
			}
		}

	default:
		if project.ContentType(row.FilterType).IsValid() {
			result.contentTypes = append(result.contentTypes, row.FilterType)
		}
	}

	return result
}

/*
ApplyTemplate merges a row's implied fields onto a draft item payload.

Merge semantics: flags are set true, content types and statuses are
unioned into the existing lists. Keys the row does not control are never
touched, so applying a template cannot clobber unrelated edits in the
form.
*/
func ApplyTemplate(row ContentRow, draft crud.Fields) crud.Fields {
	ref := schema.CatalogProject
	wants := impliedFields(row)

	merged := crud.Fields{}
	for key, value := range draft {
		merged[key] = value
	}

	for _, column := range wants.flagColumns {
		merged[column] = true
	}
	if len(wants.contentTypes) > 0 {
		merged[ref.ContentType] = unionFold(multival.ToStringList(merged[ref.ContentType]), wants.contentTypes)
	}
	if len(wants.statuses) > 0 {
		merged[ref.Status] = unionFold(multival.ToStringList(merged[ref.Status]), wants.statuses)
	}
	return merged
}

/*
RemoveTemplate unsets the fields a row controls on a draft item payload.

A field stays set when any of the other rows still implies it: removing
"Now Playing" must not clear in_now_playing while a second active,
matched row also claims that flag. Callers pass only the other rows that
are active and currently match the draft; this function just honors their
claims.
*/
func RemoveTemplate(row ContentRow, draft crud.Fields, others []ContentRow) crud.Fields {
	ref := schema.CatalogProject
	drops := impliedFields(row)

	var kept implied
	for _, other := range others {
		otherImplied := impliedFields(other)
		kept.flagColumns = append(kept.flagColumns, otherImplied.flagColumns...)
		kept.contentTypes = append(kept.contentTypes, otherImplied.contentTypes...)
		kept.statuses = append(kept.statuses, otherImplied.statuses...)
	}

	result := crud.Fields{}
	for key, value := range draft {
		result[key] = value
	}

	for _, column := range drops.flagColumns {
		if !containsFold(kept.flagColumns, column) {
			result[column] = false
		}
	}
	if len(drops.contentTypes) > 0 {
		result[ref.ContentType] = subtractFold(
			multival.ToStringList(result[ref.ContentType]),
			drops.contentTypes,
			kept.contentTypes,
		)
	}
	if len(drops.statuses) > 0 {
		result[ref.Status] = subtractFold(
			multival.ToStringList(result[ref.Status]),
			drops.statuses,
			kept.statuses,
		)
	}
	return result
}

// unionFold appends the additions missing from base, preserving order and
// first-seen casing.
func unionFold(base, additions []string) []string {
	result := base
	for _, value := range additions {
		if !containsFold(result, value) {
			result = append(result, value)
		}
	}
	return result
}

// subtractFold removes drops from base unless a drop is also claimed by
// kept.
func subtractFold(base, drops, kept []string) []string {
	result := make([]string, 0, len(base))
	for _, value := range base {
		if containsFold(drops, value) && !containsFold(kept, value) {
			continue
		}
		result = append(result, value)
	}
	return result
}
