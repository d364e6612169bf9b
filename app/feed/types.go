package feed

import (
	"time"
)

// Raw feed types. Field names mirror the SharePoint list schema the
// update feed is exported from; "_x0020_" is an encoded space.

type Envelope struct {
	Value []Item `json:"value"`
}

type Item struct {
	Title       string  `json:"Title"`
	Description *string `json:"Article_x0020_Description"`
	Category    string  `json:"Article_x0020_Category"`
	Author      string  `json:"Author0"`
	Thumbnail   *string `json:"Article_x0020_Thumbnail"`
	Image       *string `json:"Article_x0020_Image"`
	ImageAlt    *string `json:"Article_x0020_Image_x0020_alt_x0"`
	Content     string  `json:"Article_x0020_Content"`

	RawPublished string `json:"Article_x0020_Date"`
	RawExpires   string `json:"Expires"`

	// Resolved by Decode from the raw date strings above.
	PublishedAt time.Time `json:"-"`
	ExpiresAt   time.Time `json:"-"`
}

// ImageDescriptor is the JSON object embedded in the thumbnail and
// image fields.
type ImageDescriptor struct {
	FileName string `json:"fileName"`
}

// Article is the derived, render-ready form of one eligible Item.
// Every field is a pure function of the item it came from.
type Article struct {
	Title       string // trimmed, double quotes escaped
	Description *string
	Author      string
	Category    string
	Date        string // YYYY-MM-DDT08:00:00Z
	Expires     string
	Thumbnail   string
	Image       *string
	ImageAlt    *string
	Content     string // rewritten HTML
}
