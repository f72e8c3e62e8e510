// Copyright (c) 2026 Marquee. All rights reserved.
// Author: asher.court.dev@gmail.com

package schema

// SiteShopConfigTable represents the 'site.shop_config' table
type SiteShopConfigTable struct {
	Table        string
	ID           string
	Headline     string
	Description  string
	ShopURL      string
	BannerImgURL string
	IsEnabled    string
	IsDeleted    string
	DeletedAt    string
	CreatedAt    string
	UpdatedAt    string
}

// SiteShopConfig is the schema definition for site.shop_config
var SiteShopConfig = SiteShopConfigTable{
	Table:        "site.shop_config",
	ID:           "id",
	Headline:     "headline",
	Description:  "description",
	ShopURL:      "shop_url",
	BannerImgURL: "banner_img_url",
	IsEnabled:    "is_enabled",
	IsDeleted:    "is_deleted",
	DeletedAt:    "deleted_at",
	CreatedAt:    "created_at",
	UpdatedAt:    "updated_at",
}
