// Test program to run one Flickr search and list what the slideshow would show
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/llehouerou/gesture/internal/config"
	"github.com/llehouerou/gesture/internal/flickr"
	"github.com/llehouerou/gesture/internal/media"
	"github.com/llehouerou/gesture/internal/photo"
)

func main() {
	perPage := flag.Int("n", 5, "photos to request")
	download := flag.Bool("download", false, "download the selected variant of each photo")
	flag.Parse()

	query := strings.Join(flag.Args(), " ")
	if query == "" {
		query = "gesture drawing"
	}

	client := flickr.NewClient(os.Getenv(config.APIKeyEnv))
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	log.Printf("Searching for %q (%d per page)...", query, *perPage)
	items, err := client.Fetch(ctx, query, *perPage)
	if err != nil {
		log.Fatalf("Search failed: %v", err)
	}
	log.Printf("Found %d usable photos:", len(items))

	fetcher := media.New()
	defer fetcher.Close()

	for i, it := range items {
		v, err := photo.Select(it)
		if err != nil {
			log.Printf("  [%d] %s: %v", i+1, it.ID, err)
			continue
		}
		log.Printf("  [%d] %q by %s - %s %dx%d", i+1, it.Title, it.AttributionLabel, v.Bucket, v.Width, v.Height)
		log.Printf("      %s", it.AttributionURL)

		if !*download {
			continue
		}
		img, err := fetcher.Get(ctx, v.URL)
		if err != nil {
			log.Printf("      ERROR: %v", err)
			continue
		}
		log.Printf("      -> %s (%s)", humanize.IBytes(uint64(img.Size())), img.ContentType) //nolint:gosec // sizes are non-negative
	}
}
