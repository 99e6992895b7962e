// Package photo defines the result records shown by the slideshow and the
// rule used to pick which size variant of a photo gets displayed.
package photo

import "errors"

// ErrNoVariant is returned by Select when an item carries no sized variant.
var ErrNoVariant = errors.New("photo has no sized variant")

// Bucket names one of the fixed size buckets a search result may carry.
type Bucket string

const (
	BucketSquare       Bucket = "square"
	BucketLargeSquare  Bucket = "large-square"
	BucketThumbnail    Bucket = "thumbnail"
	BucketSmall        Bucket = "small"
	BucketSmall320     Bucket = "small-320"
	BucketMedium       Bucket = "medium"
	BucketMedium640    Bucket = "medium-640"
	BucketMedium800    Bucket = "medium-800"
	BucketMediumCompat Bucket = "medium-compat"
	BucketLarge        Bucket = "large"
	BucketExtraLarge   Bucket = "extra-large"
)

// Buckets lists every bucket in selection order.
var Buckets = []Bucket{
	BucketSquare,
	BucketLargeSquare,
	BucketThumbnail,
	BucketSmall,
	BucketSmall320,
	BucketMedium,
	BucketMedium640,
	BucketMedium800,
	BucketMediumCompat,
	BucketLarge,
	BucketExtraLarge,
}

// Variant is one rendition of a photo.
type Variant struct {
	Bucket Bucket
	Width  int
	Height int
	URL    string
}

// Area returns the pixel area of the variant.
func (v Variant) Area() int {
	return v.Width * v.Height
}

// Item is a single search result. Items are never modified after the
// provider returns them.
type Item struct {
	ID               string
	Title            string
	Variants         []Variant
	AttributionLabel string
	AttributionURL   string
}

// Variant returns the variant stored for bucket b.
func (it Item) Variant(b Bucket) (Variant, bool) {
	for _, v := range it.Variants {
		if v.Bucket == b {
			return v, true
		}
	}
	return Variant{}, false
}

// Select picks the variant to display: the bucket with the strictly largest
// area, walking Buckets in order so the earlier bucket wins a tie.
// Variants with a zero area never win.
func Select(it Item) (Variant, error) {
	var (
		best     Variant
		bestArea int
	)
	for _, b := range Buckets {
		v, ok := it.Variant(b)
		if !ok {
			continue
		}
		if area := v.Area(); area > bestArea {
			best = v
			bestArea = area
		}
	}
	if bestArea == 0 {
		return Variant{}, ErrNoVariant
	}
	return best, nil
}

// DisplayURL returns the URL of the selected variant, or "" when the item
// has none.
func DisplayURL(it Item) string {
	v, err := Select(it)
	if err != nil {
		return ""
	}
	return v.URL
}
