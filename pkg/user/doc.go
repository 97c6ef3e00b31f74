// Package user implements the account entity of the social network.
//
// A user owns its credentials (bcrypt digest, plaintext never kept), a login
// state, its notification inbox, its published posts, and the set of follower
// inboxes that new-post notifications fan out to. Follow relationships are
// kept on the followee side: following means handing the followee a reference
// to your inbox.
//
// All social operations (follow, unfollow, publish, reading notifications)
// require an active login; sign-up counts as the first login.
package user
