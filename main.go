//
// NC News
// =======
// A REST backend serving topics, articles, comments and users from Postgres.
//
// Prepare the database:
// ---------------------
// $ export DATABASE_URL=postgres://localhost:5432/nc_news?sslmode=disable
// $ go run . migrate up
// $ go run . seed
//
// Boot the server:
// ----------------
// $ go run . serve
//
// Client requests:
// ----------------
// $ curl http://localhost:9090/api/topics
// {"topics":[{"slug":"mitch","description":"The man, the Mitch, the legend"},...]}
//
// $ curl 'http://localhost:9090/api/articles?topic=cats'
// {"articles":[{"article_id":5,"title":"UNCOVERED: catspiracy to bring down democracy",...,"comment_count":"2"}]}
//
// $ curl -X PATCH -d '{"inc_votes":-90}' http://localhost:9090/api/articles/1
// {"article":{"article_id":1,...,"votes":10,...}}
//
// $ curl -X DELETE http://localhost:9090/api/comments/10
//
// $ curl http://localhost:9999/metrics
//
// Route docs are generated with `go run . routes` (or `routes --json`).
//
package main

import "github.com/SergeyParamoshkin/ncnews/cmd"

func main() {
	cmd.Execute()
}
