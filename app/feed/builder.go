package feed

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Front matter dates carry a fixed 08:00:00Z time-of-day; the site
// treats announcements as day-granular.
const frontMatterTimeSuffix = "T08:00:00Z"

var (
	lineBreakPattern  = regexp.MustCompile(`\r\n|\r|\n`)
	whitespacePattern = regexp.MustCompile(`\s`)
)

// Builder derives the render-ready Article from a raw feed item.
type Builder struct {
	imageBaseURL     string
	defaultThumbnail string
}

func NewBuilder(imageBaseURL, defaultThumbnail string) *Builder {
	return &Builder{
		imageBaseURL:     imageBaseURL,
		defaultThumbnail: defaultThumbnail,
	}
}

// Run builds the Article for an item whose content has already been
// rewritten. The item itself is never modified.
func (b *Builder) Run(item Item, content string) (*Article, error) {
	article := &Article{
		Title:    escapeTitle(item.Title),
		Author:   item.Author,
		Category: item.Category,
		Date:     FormatDate(item.PublishedAt),
		Expires:  FormatDate(item.ExpiresAt),
		Content:  content,
	}

	if item.Description != nil {
		desc := lineBreakPattern.ReplaceAllString(*item.Description, " ")
		article.Description = &desc
	}

	thumbnail, err := b.resolveImage(item.Thumbnail, item.Title, "Article_x0020_Thumbnail")
	if err != nil {
		return nil, err
	}
	if thumbnail != nil {
		article.Thumbnail = *thumbnail
	} else {
		article.Thumbnail = b.imageBaseURL + b.defaultThumbnail
	}

	article.Image, err = b.resolveImage(item.Image, item.Title, "Article_x0020_Image")
	if err != nil {
		return nil, err
	}

	if item.ImageAlt != nil {
		alt := strings.ReplaceAll(*item.ImageAlt, `"`, "'")
		article.ImageAlt = &alt
	}

	return article, nil
}

// resolveImage parses an embedded image descriptor and returns the
// public URL for its file, or nil when the descriptor is absent.
func (b *Builder) resolveImage(raw *string, title, field string) (*string, error) {
	if raw == nil {
		return nil, nil
	}

	var descriptor ImageDescriptor
	if err := json.Unmarshal([]byte(*raw), &descriptor); err != nil {
		return nil, &MalformedItemError{Title: title, Field: field, Err: err}
	}
	if descriptor.FileName == "" {
		return nil, &MalformedItemError{Title: title, Field: field, Err: fmt.Errorf("descriptor has no fileName")}
	}

	resolved := b.imageBaseURL + whitespacePattern.ReplaceAllString(descriptor.FileName, "%20")
	return &resolved, nil
}

func escapeTitle(title string) string {
	return strings.ReplaceAll(strings.TrimSpace(title), `"`, `\"`)
}

// FormatDate renders a date the way the front matter expects:
// zero-padded YYYY-MM-DD with the fixed time-of-day.
func FormatDate(t time.Time) string {
	return t.Format("2006-01-02") + frontMatterTimeSuffix
}
