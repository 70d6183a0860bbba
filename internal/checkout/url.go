// internal/checkout/url.go
package checkout

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/sproutlabs/sprout-backend/internal/cart"
)

// DefaultEndpoint is the marketplace's batched cart-add endpoint.
const DefaultEndpoint = "https://www.amazon.com/gp/aws/cart/add.html"

// BuildCartURL encodes each cart line's external product identifier and
// quantity as indexed query parameters (ASIN.n / Quantity.n for n = 1..),
// then appends the affiliate tag once. Lines without an external identifier
// are silently omitted from the URL but remain in the local cart display.
//
// The pairs are written by hand rather than via url.Values because Encode
// sorts keys lexicographically, which would interleave the 1..n numbering.
func BuildCartURL(endpoint string, items []cart.Item, associateTag string) string {
	var b strings.Builder
	b.WriteString(endpoint)

	sep := "?"
	if strings.Contains(endpoint, "?") {
		sep = "&"
	}

	n := 0
	for _, item := range items {
		if item.Product.ExternalID == "" {
			continue
		}
		n++
		fmt.Fprintf(&b, "%sASIN.%d=%s&Quantity.%d=%d",
			sep, n, url.QueryEscape(item.Product.ExternalID), n, item.Quantity)
		sep = "&"
	}

	fmt.Fprintf(&b, "%sAssociateTag=%s", sep, url.QueryEscape(associateTag))
	return b.String()
}
