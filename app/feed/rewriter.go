package feed

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

// Rewriter rewrites intranet asset references in article HTML to
// their public locations. The transforms are regex substitutions over
// matched attribute values; surrounding markup is never reinterpreted
// or validated.
type Rewriter struct {
	imageBaseURL   string
	documentCDNURL string
}

var (
	documentHrefPattern = regexp.MustCompile(`href="/&#58;b&#58;/r/sites/updateeditor/Shared%20Documents/([^"]+)"`)
	imageSrcPattern     = regexp.MustCompile(`src="/sites/updateeditor/SiteAssets/Lists/Update%20News%20articles/AllItems/([^"]+)"`)
)

func NewRewriter(imageBaseURL, documentCDNURL string) *Rewriter {
	return &Rewriter{
		imageBaseURL:   imageBaseURL,
		documentCDNURL: documentCDNURL,
	}
}

// Run applies the three content transforms in their fixed order.
func (r *Rewriter) Run(content string) string {
	content = r.RewriteDocumentLinks(content)
	content = r.RewriteImageLinks(content)
	content = CleanEntities(content)
	return content
}

// RewriteDocumentLinks points "Shared Documents" anchors at the
// public document CDN, dropping any sharing query string.
func (r *Rewriter) RewriteDocumentLinks(content string) string {
	return documentHrefPattern.ReplaceAllStringFunc(content, func(match string) string {
		captured := documentHrefPattern.FindStringSubmatch(match)[1]

		target, err := url.Parse(r.documentCDNURL + captured)
		if err != nil {
			return match
		}
		target.RawQuery = ""

		return fmt.Sprintf(`href="%s"`, target.String())
	})
}

// RewriteImageLinks points asset-library image sources at the public
// image host, keeping the captured path and its encoding intact.
func (r *Rewriter) RewriteImageLinks(content string) string {
	return imageSrcPattern.ReplaceAllString(content, `src="`+r.imageBaseURL+`$1"`)
}

// CleanEntities replaces the entity-encoded colons SharePoint emits
// and normalizes typographic apostrophes.
func CleanEntities(content string) string {
	content = strings.ReplaceAll(content, "&#58;", ":")
	content = strings.ReplaceAll(content, "’", "'")
	return content
}
