package services

import (
	"github.com/inklets/inklet/pkg/internal/models"
	"github.com/spf13/viper"
	"gorm.io/gorm"
)

type Pagination struct {
	Page       int   `json:"page"`
	PerPage    int   `json:"per_page"`
	TotalPages int   `json:"total_pages"`
	TotalItems int64 `json:"total_items"`
	HasNext    bool  `json:"has_next"`
	HasPrev    bool  `json:"has_prev"`
}

// PageSize is shared by every list view.
func PageSize() int {
	if size := viper.GetInt("content.page_size"); size > 0 {
		return size
	}
	return 10
}

// PageOf clamps the requested page into the valid range and derives the page
// metadata. Requests below page 1 land on page 1, requests beyond the end
// land on the last page; an empty result set still yields a valid single
// empty page.
func PageOf(total int64, page int, size int) Pagination {
	totalPages := int((total + int64(size) - 1) / int64(size))
	if totalPages < 1 {
		totalPages = 1
	}

	if page < 1 {
		page = 1
	} else if page > totalPages {
		page = totalPages
	}

	return Pagination{
		Page:       page,
		PerPage:    size,
		TotalPages: totalPages,
		TotalItems: total,
		HasNext:    page < totalPages,
		HasPrev:    page > 1,
	}
}

// ListPostPage counts the prepared post query, clamps the requested page and
// returns that window together with its pagination metadata.
func ListPostPage(tx *gorm.DB, page int) ([]models.Post, Pagination, error) {
	total, err := CountPost(tx.Session(&gorm.Session{}))
	if err != nil {
		return nil, Pagination{}, err
	}

	meta := PageOf(total, page, PageSize())
	items, err := ListPost(tx.Session(&gorm.Session{}), meta.PerPage, (meta.Page-1)*meta.PerPage)
	if err != nil {
		return nil, meta, err
	}

	return items, meta, nil
}
