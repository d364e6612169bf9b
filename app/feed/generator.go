package feed

import (
	"bytes"
	"strings"
)

// Generator serializes an Article into the final document: a
// delimited front matter block, a blank line, then the article body.
type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

func (g *Generator) Run(article *Article) string {
	var buf bytes.Buffer

	buf.WriteString("---\n")
	buf.WriteString(`title: "` + article.Title + `"` + "\n")
	g.writeField(&buf, "description", article.Description)
	buf.WriteString("author: " + article.Author + "\n")
	// Jekyll gives "category" special treatment in posts, hence the
	// article_ prefix.
	buf.WriteString("article_category: " + article.Category + "\n")
	buf.WriteString("date: " + article.Date + "\n")
	buf.WriteString("expires: " + article.Expires + "\n")
	buf.WriteString("thumbnail: " + article.Thumbnail + "\n")
	g.writeField(&buf, "article_image", article.Image)
	g.writeField(&buf, "article_image_alt", article.ImageAlt)
	buf.WriteString("---\n")
	buf.WriteString("\n")
	buf.WriteString(article.Content)

	return buf.String()
}

// writeField renders an optional value: absent becomes the null
// token, and values containing a colon are double-quoted.
func (g *Generator) writeField(buf *bytes.Buffer, name string, value *string) {
	buf.WriteString(name + ": ")

	switch {
	case value == nil:
		buf.WriteString("null")
	case *value != "" && strings.Contains(*value, ":"):
		buf.WriteString(`"` + *value + `"`)
	default:
		buf.WriteString(*value)
	}

	buf.WriteString("\n")
}
