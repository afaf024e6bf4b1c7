package shopify

import (
	"net/url"
	"strings"
)

// nextPageInfo extracts the page_info cursor of the rel="next" entry of a
// Link header, or "" when there is no next page.
//
//	<https://shop/admin/api/2025-10/products.json?limit=250&page_info=abc>; rel="next"
func nextPageInfo(header string) string {
	for _, part := range strings.Split(header, ",") {
		segments := strings.Split(part, ";")
		if len(segments) < 2 {
			continue
		}

		isNext := false
		for _, param := range segments[1:] {
			if strings.ReplaceAll(strings.TrimSpace(param), " ", "") == `rel="next"` {
				isNext = true
				break
			}
		}
		if !isNext {
			continue
		}

		raw := strings.TrimSpace(segments[0])
		raw = strings.TrimSuffix(strings.TrimPrefix(raw, "<"), ">")
		u, err := url.Parse(raw)
		if err != nil {
			return ""
		}
		return u.Query().Get("page_info")
	}
	return ""
}
