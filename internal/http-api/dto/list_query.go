package dto

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// FieldError reports one invalid query parameter. Handlers surface it as a
// 422 with the field name, instead of silently coercing bad input.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ListQuery carries the composable filters shared by the festival, group,
// national-section and user search endpoints. Zero values and empty sets
// mean "no filter on that dimension".
type ListQuery struct {
	Search     string
	CategoryID []int64
	CountryID  []int64
	RegionID   []int64
	DateFrom   *time.Time
	DateTo     *time.Time
	Page       int
	PageSize   int
	Locale     string
}

// Offset converts the 1-based page to a zero-based row offset.
func (q ListQuery) Offset() int {
	return (q.Page - 1) * q.PageSize
}

// ParseListQuery reads and validates the common filter parameters.
// `countries` is a JSON int array; a non-zero `countryId` overrides it.
func ParseListQuery(c *gin.Context) (ListQuery, error) {
	q := ListQuery{
		Search:   c.Query("search"),
		Locale:   c.Query("locale"),
		Page:     1,
		PageSize: DefaultPageSize,
	}

	var err error
	if q.CategoryID, err = parseIDSet(c, "categories"); err != nil {
		return q, err
	}
	if q.CountryID, err = parseIDSet(c, "countries"); err != nil {
		return q, err
	}
	if q.RegionID, err = parseIDSet(c, "regions"); err != nil {
		return q, err
	}

	countryID, err := parseInt64(c, "countryId")
	if err != nil {
		return q, err
	}
	if countryID > 0 {
		q.CountryID = []int64{countryID}
	}

	if q.DateFrom, err = parseUnix(c, "from"); err != nil {
		return q, err
	}
	if q.DateTo, err = parseUnix(c, "to"); err != nil {
		return q, err
	}

	page, err := parseInt64(c, "page")
	if err != nil {
		return q, err
	}
	if page < 0 {
		return q, &FieldError{Field: "page", Message: "must be a positive integer"}
	}
	if page > 0 {
		q.Page = int(page)
	}

	pageSize, err := parseInt64(c, "pageSize")
	if err != nil {
		return q, err
	}
	if pageSize < 0 || pageSize > MaxPageSize {
		return q, &FieldError{Field: "pageSize", Message: fmt.Sprintf("must be between 1 and %d", MaxPageSize)}
	}
	if pageSize > 0 {
		q.PageSize = int(pageSize)
	}

	return q, nil
}

// parseIDSet decodes a query parameter holding a JSON array of ids.
// Absent or empty parameters yield an empty set.
func parseIDSet(c *gin.Context, key string) ([]int64, error) {
	raw := c.Query(key)
	if raw == "" || raw == "[]" {
		return nil, nil
	}
	var ids []int64
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		return nil, &FieldError{Field: key, Message: "must be a JSON array of integers"}
	}
	return ids, nil
}

func parseInt64(c *gin.Context, key string) (int64, error) {
	raw := c.Query(key)
	if raw == "" {
		return 0, nil
	}
	var v int64
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return 0, &FieldError{Field: key, Message: "must be an integer"}
	}
	return v, nil
}

func parseUnix(c *gin.Context, key string) (*time.Time, error) {
	secs, err := parseInt64(c, key)
	if err != nil {
		return nil, err
	}
	if secs == 0 {
		return nil, nil
	}
	t := time.Unix(secs, 0).UTC()
	return &t, nil
}
