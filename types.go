package interiorgen

import "github.com/roihacks/interiorgen/views"

// Post is the content type stored in SQLite and rendered by the views
// package. Aliased so callers on either side of the package boundary share
// one definition.
type Post = views.Post

// Image is an uploaded featured-image asset.
type Image = views.Image
