package routechat

import (
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// replyCache memoizes marshaled chat replies. Entries expire so restarts
// with a changed dataset are not needed just to age out answers.
type replyCache struct {
	store *gocache.Cache
}

func newReplyCache(ttl, cleanup time.Duration) *replyCache {
	return &replyCache{store: gocache.New(ttl, cleanup)}
}

func cacheKey(parts ...string) string {
	return strings.Join(parts, "|")
}

func (c *replyCache) Get(key string) ([]byte, bool) {
	v, ok := c.store.Get(key)
	if !ok {
		return nil, false
	}
	buf, ok := v.([]byte)
	return buf, ok
}

func (c *replyCache) Set(key string, buf []byte) {
	c.store.SetDefault(key, buf)
}
