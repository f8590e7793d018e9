package redisrepo

import "fmt"

const ns = "cineapi:v1"

func KeyMovieRevenue(descending bool) string {
	dir := "asc"
	if descending {
		dir = "desc"
	}
	return fmt.Sprintf("%s:reports:movie-revenue:%s", ns, dir)
}
