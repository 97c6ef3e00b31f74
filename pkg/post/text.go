package post

import "fmt"

// TextPost is a plain text post; the content is the post body.
type TextPost struct {
	base
}

func (p *TextPost) Describe() string {
	return fmt.Sprintf("%s published a post:\n%q", p.AuthorName(), p.Content())
}
