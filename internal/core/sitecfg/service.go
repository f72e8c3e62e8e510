// Copyright (c) 2026 Marquee. All rights reserved.
// Author: asher.court.dev@gmail.com

package sitecfg

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ashercourt/marquee/internal/platform/apperr"
	"github.com/ashercourt/marquee/internal/platform/crud"
	"github.com/ashercourt/marquee/internal/platform/database/schema"
	"github.com/ashercourt/marquee/internal/platform/validate"
	"github.com/ashercourt/marquee/pkg/uuidv7"
)

// Service bundles the four site configuration repositories. Each is an
// instance of the same generic repository; the service adds the little
// validation each surface needs.
type Service struct {
	footerLinks  *crud.Repository[FooterLink]
	pageSettings *crud.Repository[PageSettings]
	emailCapture *crud.Repository[EmailCapture]
	shopConfig   *crud.Repository[ShopConfig]
	logger       *slog.Logger
}

// NewService constructs the site configuration [Service].
func NewService(db *pgxpool.Pool, logger *slog.Logger) *Service {
	return &Service{
		footerLinks: crud.NewRepository[FooterLink](db, crud.Spec{
			Table:         schema.SiteFooterLink.Table,
			SoftDelete:    true,
			SearchColumns: []string{schema.SiteFooterLink.Label},
		}),
		pageSettings: crud.NewRepository[PageSettings](db, crud.Spec{
			Table:      schema.SitePageSettings.Table,
			SoftDelete: true,
		}),
		emailCapture: crud.NewRepository[EmailCapture](db, crud.Spec{
			Table:      schema.SiteEmailCapture.Table,
			SoftDelete: true,
		}),
		shopConfig: crud.NewRepository[ShopConfig](db, crud.Spec{
			Table:      schema.SiteShopConfig.Table,
			SoftDelete: true,
		}),
		logger: logger,
	}
}

// # Footer Links

// FooterLinkInput is the payload for creating a footer link.
type FooterLinkInput struct {
	Label      string `json:"label"`
	URL        string `json:"url"`
	OrderIndex int    `json:"order_index"`
}

// CreateFooterLink persists a new footer link.
func (service *Service) CreateFooterLink(ctx context.Context, input FooterLinkInput) (*FooterLink, error) {
	ref := schema.SiteFooterLink

	validator := &validate.Validator{}
	validator.Required(ref.Label, input.Label).MaxLen(ref.Label, input.Label, 120)
	validator.Required(ref.URL, input.URL).URL(ref.URL, input.URL)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	return service.footerLinks.Create(ctx, crud.Fields{
		ref.ID:         uuidv7.New(),
		ref.Label:      input.Label,
		ref.URL:        input.URL,
		ref.OrderIndex: input.OrderIndex,
	})
}

// ListFooterLinks returns live footer links in display order.
func (service *Service) ListFooterLinks(ctx context.Context) ([]FooterLink, error) {
	ref := schema.SiteFooterLink
	return service.footerLinks.Get(ctx, crud.GetOpts{
		Eq:     []crud.Cond{{Column: ref.IsDeleted, Value: false}},
		SortBy: ref.OrderIndex,
	})
}

// footerLinkColumns is the whitelist for footer link updates.
var footerLinkColumns = map[string]bool{
	schema.SiteFooterLink.Label:      true,
	schema.SiteFooterLink.URL:        true,
	schema.SiteFooterLink.OrderIndex: true,
}

// UpdateFooterLink applies a dynamic partial update.
func (service *Service) UpdateFooterLink(ctx context.Context, id string, payload map[string]any) (*FooterLink, error) {
	fields, err := whitelisted(payload, footerLinkColumns)
	if err != nil {
		return nil, err
	}
	return service.footerLinks.UpdateByID(ctx, id, fields)
}

// ArchiveFooterLink soft-deletes a link; nil result when no row matched.
func (service *Service) ArchiveFooterLink(ctx context.Context, id string) (*FooterLink, error) {
	return service.footerLinks.ToggleSoftDelete(ctx, id, true)
}

// DeleteFooterLink removes a link permanently. Idempotent.
func (service *Service) DeleteFooterLink(ctx context.Context, id string) error {
	return service.footerLinks.DeleteByIDPermanent(ctx, id)
}

// # Page Settings

// GetPageSettings fetches the settings row for one page. Exactly zero or
// one row exists per page; zero yields nil data with a success envelope.
func (service *Service) GetPageSettings(ctx context.Context, page string) (*PageSettings, error) {
	ref := schema.SitePageSettings
	rows, err := service.pageSettings.Get(ctx, crud.GetOpts{
		Eq: []crud.Cond{
			{Column: ref.Page, Value: page},
			{Column: ref.IsDeleted, Value: false},
		},
		MaybeSingle: true,
	})
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return &rows[0], nil
}

// pageSettingsColumns is the whitelist for page settings writes.
var pageSettingsColumns = map[string]bool{
	schema.SitePageSettings.HeroTitle:    true,
	schema.SitePageSettings.HeroTagline:  true,
	schema.SitePageSettings.HeroImageURL: true,
	schema.SitePageSettings.IntroText:    true,
}

// UpsertPageSettings updates the page's settings row, creating it on
// first write.
func (service *Service) UpsertPageSettings(ctx context.Context, page string, payload map[string]any) (*PageSettings, error) {
	ref := schema.SitePageSettings

	fields, err := whitelisted(payload, pageSettingsColumns)
	if err != nil {
		return nil, err
	}

	existing, err := service.GetPageSettings(ctx, page)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		fields[ref.ID] = uuidv7.New()
		fields[ref.Page] = page
		return service.pageSettings.Create(ctx, fields)
	}
	return service.pageSettings.UpdateByID(ctx, existing.ID, fields)
}

// # Email Capture

// GetEmailCapture fetches the newsletter block config; nil when unset.
func (service *Service) GetEmailCapture(ctx context.Context) (*EmailCapture, error) {
	return firstLive(ctx, service.emailCapture, schema.SiteEmailCapture.IsDeleted)
}

// emailCaptureColumns is the whitelist for email capture writes.
var emailCaptureColumns = map[string]bool{
	schema.SiteEmailCapture.Headline:    true,
	schema.SiteEmailCapture.Subtext:     true,
	schema.SiteEmailCapture.ButtonLabel: true,
	schema.SiteEmailCapture.SuccessText: true,
	schema.SiteEmailCapture.IsEnabled:   true,
}

// UpsertEmailCapture updates the newsletter block, creating it on first
// write.
func (service *Service) UpsertEmailCapture(ctx context.Context, payload map[string]any) (*EmailCapture, error) {
	fields, err := whitelisted(payload, emailCaptureColumns)
	if err != nil {
		return nil, err
	}

	existing, err := service.GetEmailCapture(ctx)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		fields[schema.SiteEmailCapture.ID] = uuidv7.New()
		return service.emailCapture.Create(ctx, fields)
	}
	return service.emailCapture.UpdateByID(ctx, existing.ID, fields)
}

// # Shop Config

// GetShopConfig fetches the shop banner config; nil when unset.
func (service *Service) GetShopConfig(ctx context.Context) (*ShopConfig, error) {
	return firstLive(ctx, service.shopConfig, schema.SiteShopConfig.IsDeleted)
}

// shopConfigColumns is the whitelist for shop config writes.
var shopConfigColumns = map[string]bool{
	schema.SiteShopConfig.Headline:     true,
	schema.SiteShopConfig.Description:  true,
	schema.SiteShopConfig.ShopURL:      true,
	schema.SiteShopConfig.BannerImgURL: true,
	schema.SiteShopConfig.IsEnabled:    true,
}

// UpsertShopConfig updates the shop banner, creating it on first write.
func (service *Service) UpsertShopConfig(ctx context.Context, payload map[string]any) (*ShopConfig, error) {
	fields, err := whitelisted(payload, shopConfigColumns)
	if err != nil {
		return nil, err
	}

	existing, err := service.GetShopConfig(ctx)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		fields[schema.SiteShopConfig.ID] = uuidv7.New()
		return service.shopConfig.Create(ctx, fields)
	}
	return service.shopConfig.UpdateByID(ctx, existing.ID, fields)
}

// whitelisted copies a dynamic payload into Fields, rejecting columns
// outside the allowed set.
func whitelisted(payload map[string]any, allowed map[string]bool) (crud.Fields, error) {
	fields := crud.Fields{}
	for column, value := range payload {
		if !allowed[column] {
			return nil, apperr.ValidationError(fmt.Sprintf("Column '%s' is not writable", column))
		}
		fields[column] = value
	}
	return fields, nil
}

// firstLiveOpts selects the singleton-ish config row: the newest live row
// wins when legacy data holds more than one.
func firstLiveOpts(isDeletedColumn string) crud.GetOpts {
	return crud.GetOpts{
		Eq:     []crud.Cond{{Column: isDeletedColumn, Value: false}},
		SortBy: "created_at",
		Desc:   true,
		Limit:  1,
	}
}

func firstLive[T any](ctx context.Context, repo *crud.Repository[T], isDeletedColumn string) (*T, error) {
	rows, err := repo.Get(ctx, firstLiveOpts(isDeletedColumn))
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return &rows[0], nil
}
