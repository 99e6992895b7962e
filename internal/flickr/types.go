package flickr

import (
	"bytes"
	"encoding/json"
	"strconv"

	"github.com/llehouerou/gesture/internal/photo"
)

// sizeSuffixes maps Flickr size suffixes to buckets, in bucket order.
var sizeSuffixes = []struct {
	suffix string
	bucket photo.Bucket
}{
	{"sq", photo.BucketSquare},
	{"q", photo.BucketLargeSquare},
	{"t", photo.BucketThumbnail},
	{"s", photo.BucketSmall},
	{"n", photo.BucketSmall320},
	{"w", photo.BucketMedium},
	{"m", photo.BucketMedium640},
	{"z", photo.BucketMedium800},
	{"c", photo.BucketMediumCompat},
	{"b", photo.BucketLarge},
	{"l", photo.BucketExtraLarge},
}

// searchResponse is the envelope of flickr.photos.search.
type searchResponse struct {
	Stat    string      `json:"stat"`
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Photos  *photosPage `json:"photos"`
}

type photosPage struct {
	Page    flexInt    `json:"page"`
	Pages   flexInt    `json:"pages"`
	PerPage flexInt    `json:"perpage"`
	Total   flexInt    `json:"total"`
	Photos  []rawPhoto `json:"photo"`
}

// rawPhoto keeps the photo object as a map because size fields are keyed
// by suffix (url_z, width_z, height_z).
type rawPhoto map[string]json.RawMessage

func (p rawPhoto) str(key string) string {
	raw, ok := p[key]
	if !ok {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return string(bytes.Trim(raw, `"`))
}

func (p rawPhoto) num(key string) (int, bool) {
	raw, ok := p[key]
	if !ok {
		return 0, false
	}
	var n flexInt
	if err := json.Unmarshal(raw, &n); err != nil {
		return 0, false
	}
	return int(n), true
}

// flexInt decodes numbers that Flickr sends either as JSON numbers or as
// numeric strings.
type flexInt int

func (f *flexInt) UnmarshalJSON(data []byte) error {
	s := string(bytes.Trim(data, `"`))
	if s == "" || s == "null" {
		*f = 0
		return nil
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return err
	}
	*f = flexInt(n)
	return nil
}
