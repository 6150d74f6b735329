package viewer

import (
	"fmt"

	"github.com/disintegration/imaging"
)

// DefaultThumbnailWidth is the width snapshots are resized to for embedding
// in notes. Height follows the source aspect ratio.
const DefaultThumbnailWidth = 320

// WriteThumbnail resizes a snapshot into a thumbnail.
func WriteThumbnail(snapshotPath, thumbnailPath string, width int) error {
	if width <= 0 {
		width = DefaultThumbnailWidth
	}

	img, err := imaging.Open(snapshotPath)
	if err != nil {
		return fmt.Errorf("opening snapshot: %w", err)
	}

	thumb := imaging.Resize(img, width, 0, imaging.Lanczos)
	if err := imaging.Save(thumb, thumbnailPath); err != nil {
		return fmt.Errorf("saving thumbnail: %w", err)
	}
	return nil
}
