// Package notification defines the immutable event values that flow through
// user inboxes.
//
// A notification is a tagged variant: a new post by someone the recipient
// follows, a like on one of the recipient's posts, or a comment (which also
// carries the comment body). Values are created by the constructors and never
// mutated after creation; Summary renders the human-readable one-liner while
// delivery and storage concerns live in the inbox package.
package notification
