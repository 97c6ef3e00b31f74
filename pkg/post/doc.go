// Package post implements the post variants of the social network: text,
// image, and sale listings.
//
// All variants share likes and a comment log through the Post interface and
// are created through New, the factory keyed on the variant tag. Social
// feedback routes notifications to the author's inbox: a first like or any
// comment by another user notifies the author, while self-likes and
// self-comments never do.
//
// The package depends on posters only through the Author interface, so it
// stays free of the user package and the user/post reference cycle the object
// graph would otherwise have.
package post
