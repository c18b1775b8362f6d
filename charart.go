/*
Package charart converts raster images into grids of colored monospace
glyphs.
*/
package charart

import "log"

// CharArt ties the conversion pipeline to an optional art cache and a
// logger.
type CharArt struct {
	db     *ArtDB
	logger *log.Logger
}

// New returns a converter using the given cache and logger. db may be
// nil, in which case nothing is cached.
func New(db *ArtDB, logger *log.Logger) *CharArt {
	return &CharArt{
		db:     db,
		logger: logger,
	}
}
