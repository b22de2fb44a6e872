package dto

import "time"

// Localized list/detail views. Name and description come from the
// translation row for the resolved locale.

type FestivalView struct {
	ID          int64      `json:"id"`
	Slug        string     `json:"slug"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	CountryID   int64      `json:"country_id"`
	Location    *string    `json:"location,omitempty"`
	URL         *string    `json:"url,omitempty"`
	DateFrom    *time.Time `json:"date_from,omitempty"`
	DateTo      *time.Time `json:"date_to,omitempty"`
}

type GroupView struct {
	ID           int64  `json:"id"`
	Slug         string `json:"slug"`
	Name         string `json:"name"`
	Description  string `json:"description,omitempty"`
	CountryID    int64  `json:"country_id"`
	MembersCount *int   `json:"members_count,omitempty"`
}

type SectionView struct {
	ID        int64  `json:"id"`
	Slug      string `json:"slug"`
	Name      string `json:"name"`
	About     string `json:"about,omitempty"`
	CountryID int64  `json:"country_id"`
}

type UserView struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	CountryID *int64 `json:"country_id,omitempty"`
}

// TranslationInput: one locale's text, used by the explicit per-locale
// upsert endpoints (festivals, groups, sections, articles)
type TranslationInput struct {
	Locale      string `json:"locale" binding:"required"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// UpsertFestivalRequest covers create and update
type UpsertFestivalRequest struct {
	Slug              string             `json:"slug" binding:"required"`
	CountryID         int64              `json:"country_id" binding:"required"`
	NationalSectionID *int64             `json:"national_section_id"`
	Location          *string            `json:"location"`
	Email             *string            `json:"email"`
	URL               *string            `json:"url"`
	DateFrom          *int64             `json:"date_from"` // unix seconds
	DateTo            *int64             `json:"date_to"`
	Published         bool               `json:"published"`
	CategoryIDs       []int64            `json:"category_ids"`
	GroupIDs          []int64            `json:"group_ids"`
	Translations      []TranslationInput `json:"translations" binding:"dive"`
}

type UpsertGroupRequest struct {
	Slug              string             `json:"slug" binding:"required"`
	CountryID         int64              `json:"country_id" binding:"required"`
	NationalSectionID *int64             `json:"national_section_id"`
	MembersCount      *int               `json:"members_count"`
	Published         bool               `json:"published"`
	CategoryIDs       []int64            `json:"category_ids"`
	Translations      []TranslationInput `json:"translations" binding:"dive"`
}

type UpsertSectionRequest struct {
	Slug         string             `json:"slug" binding:"required"`
	CountryID    int64              `json:"country_id" binding:"required"`
	Email        *string            `json:"email"`
	URL          *string            `json:"url"`
	Published    bool               `json:"published"`
	Translations []TranslationInput `json:"translations" binding:"dive"`
}

// UpsertCategoryRequest carries only the primary-locale name; the other
// locales are filled by translation propagation.
type UpsertCategoryRequest struct {
	Slug string `json:"slug" binding:"required"`
	Name string `json:"name" binding:"required"`
}

type UpsertMenuItemRequest struct {
	Slug      string `json:"slug" binding:"required"`
	Title     string `json:"title" binding:"required"`
	Position  int    `json:"position"`
	Published bool   `json:"published"`
}

type UpsertBannerRequest struct {
	Image     string `json:"image" binding:"required"`
	Title     string `json:"title"`
	Subtitle  string `json:"subtitle"`
	Button    string `json:"button"`
	Position  int    `json:"position"`
	Published bool   `json:"published"`
}

type ArticleTranslationInput struct {
	Locale  string `json:"locale" binding:"required"`
	Title   string `json:"title" binding:"required"`
	Summary string `json:"summary"`
	Body    string `json:"body"`
}

type UpsertArticleRequest struct {
	Slug         string                    `json:"slug" binding:"required"`
	Published    bool                      `json:"published"`
	PublishedAt  *int64                    `json:"published_at"` // unix seconds
	Translations []ArticleTranslationInput `json:"translations" binding:"required,dive"`
}

type CategoryView struct {
	ID   int64  `json:"id"`
	Slug string `json:"slug"`
	Name string `json:"name"`
}

type MenuItemView struct {
	ID       int64  `json:"id"`
	Slug     string `json:"slug"`
	Title    string `json:"title"`
	Position int    `json:"position"`
}

type BannerView struct {
	ID       int64  `json:"id"`
	Image    string `json:"image"`
	Title    string `json:"title,omitempty"`
	Subtitle string `json:"subtitle,omitempty"`
	Button   string `json:"button,omitempty"`
	Position int    `json:"position"`
}

type ArticleView struct {
	ID          int64      `json:"id"`
	Slug        string     `json:"slug"`
	Title       string     `json:"title"`
	Summary     string     `json:"summary,omitempty"`
	Body        string     `json:"body,omitempty"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
}
