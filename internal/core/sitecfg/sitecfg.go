// Copyright (c) 2026 Marquee. All rights reserved.
// Author: asher.court.dev@gmail.com

// Package sitecfg manages the storefront's supporting configuration:
// footer links, per-page hero settings, the email capture block, and the
// shop banner. These are exactly the entities the generic repository was
// built for — plain CRUD with no bespoke SQL.
package sitecfg

import "time"

// FooterLink is one entry in the site footer, ordered by OrderIndex.
type FooterLink struct {
	ID         string     `db:"id" json:"id"`
	Label      string     `db:"label" json:"label"`
	URL        string     `db:"url" json:"url"`
	OrderIndex int        `db:"order_index" json:"order_index"`
	IsDeleted  bool       `db:"is_deleted" json:"is_deleted"`
	DeletedAt  *time.Time `db:"deleted_at" json:"deleted_at"`
	CreatedAt  time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time  `db:"updated_at" json:"updated_at"`
}

// PageSettings carries the hero copy and artwork for one public page.
type PageSettings struct {
	ID           string     `db:"id" json:"id"`
	Page         string     `db:"page" json:"page"`
	HeroTitle    *string    `db:"hero_title" json:"hero_title"`
	HeroTagline  *string    `db:"hero_tagline" json:"hero_tagline"`
	HeroImageURL *string    `db:"hero_image_url" json:"hero_image_url"`
	IntroText    *string    `db:"intro_text" json:"intro_text"`
	IsDeleted    bool       `db:"is_deleted" json:"is_deleted"`
	DeletedAt    *time.Time `db:"deleted_at" json:"deleted_at"`
	CreatedAt    time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at" json:"updated_at"`
}

// EmailCapture configures the newsletter sign-up block.
type EmailCapture struct {
	ID          string     `db:"id" json:"id"`
	Headline    *string    `db:"headline" json:"headline"`
	Subtext     *string    `db:"subtext" json:"subtext"`
	ButtonLabel *string    `db:"button_label" json:"button_label"`
	SuccessText *string    `db:"success_text" json:"success_text"`
	IsEnabled   bool       `db:"is_enabled" json:"is_enabled"`
	IsDeleted   bool       `db:"is_deleted" json:"is_deleted"`
	DeletedAt   *time.Time `db:"deleted_at" json:"deleted_at"`
	CreatedAt   time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at" json:"updated_at"`
}

// ShopConfig configures the merch banner and outbound shop link.
type ShopConfig struct {
	ID           string     `db:"id" json:"id"`
	Headline     *string    `db:"headline" json:"headline"`
	Description  *string    `db:"description" json:"description"`
	ShopURL      *string    `db:"shop_url" json:"shop_url"`
	BannerImgURL *string    `db:"banner_img_url" json:"banner_img_url"`
	IsEnabled    bool       `db:"is_enabled" json:"is_enabled"`
	IsDeleted    bool       `db:"is_deleted" json:"is_deleted"`
	DeletedAt    *time.Time `db:"deleted_at" json:"deleted_at"`
	CreatedAt    time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at" json:"updated_at"`
}
