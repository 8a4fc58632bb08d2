package redisrepo

import "fmt"

const (
	POSTS_KEY = "posts:all"
	POST_KEY  = "post:%s" // <postID>
)

func PostsKey() string {
	return POSTS_KEY
}

func PostKey(postID string) string {
	return fmt.Sprintf(POST_KEY, postID)
}
