package redis

const (
	// keyPrefixBookmark is the prefix for bookmark record keys.
	keyPrefixBookmark = "bm:bookmark:"
	// keyPrefixUser is the prefix for user record keys.
	keyPrefixUser = "bm:user:"
	// keyEmailIndex is the hash mapping email -> user id.
	keyEmailIndex = "bm:users:email"
)

// bookmarkKey returns the key for a bookmark record.
func bookmarkKey(id string) string {
	return keyPrefixBookmark + id
}

// ownerBookmarksKey returns the ZSET of an owner's bookmark ids,
// scored by creation time.
func ownerBookmarksKey(owner string) string {
	return keyPrefixUser + owner + ":bookmarks"
}

// ownerURLIndexKey returns the hash mapping an owner's saved URLs to
// bookmark ids. HSETNX on this hash is the (owner, url) uniqueness
// constraint.
func ownerURLIndexKey(owner string) string {
	return keyPrefixUser + owner + ":urls"
}

// userKey returns the key for a user record.
func userKey(id string) string {
	return keyPrefixUser + id
}

// emailIndexKey returns the hash mapping emails to user ids.
func emailIndexKey() string {
	return keyEmailIndex
}
