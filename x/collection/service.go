package collection

import (
	"fmt"

	"github.com/mootfed/moot/core"
)

type service struct {
	config core.Config
}

// NewService returns a paginator bound to the configured page size.
func NewService(config core.Config) core.CollectionService {
	return &service{
		config: config,
	}
}

func (s *service) Page(collectionURI string, items []string, page int) core.CollectionPage {
	return BuildPage(collectionURI, items, page, s.config.PageSize)
}

// BuildPage projects an ordered item list into one page of an ordered
// collection. Pages are 1-indexed and default to the first page; pages
// past the end yield an empty item list rather than an error.
func BuildPage(collectionURI string, items []string, page, pageSize int) core.CollectionPage {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 1
	}

	total := len(items)
	start := (page - 1) * pageSize
	if start > total {
		start = total
	}
	end := start + pageSize
	if end > total {
		end = total
	}

	pageItems := make([]string, 0, end-start)
	pageItems = append(pageItems, items[start:end]...)

	result := core.CollectionPage{
		Context:      core.ActivityStreamsContext,
		ID:           collectionURI,
		Type:         "OrderedCollectionPage",
		TotalItems:   total,
		OrderedItems: pageItems,
	}

	if end < total {
		result.Next = fmt.Sprintf("%s?page=%d", collectionURI, page+1)
	}
	if page > 1 {
		result.Prev = fmt.Sprintf("%s?page=%d", collectionURI, page-1)
	}

	return result
}
