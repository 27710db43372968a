package repository

// Listing defaults
const (
	DefaultSortBy = "created_at"
	DefaultOrder  = "DESC"
)

// articleSortColumns maps each accepted sort_by value to the expression it
// orders by. Columns shared with comments are qualified.
var articleSortColumns = map[string]string{
	"article_id":    "articles.article_id",
	"title":         "articles.title",
	"topic":         "articles.topic",
	"author":        "articles.author",
	"body":          "articles.body",
	"created_at":    "articles.created_at",
	"votes":         "articles.votes",
	"comment_count": "comment_count",
}

var sortOrders = map[string]bool{
	"ASC":  true,
	"DESC": true,
}

// existenceColumns lists, per table, the columns an existence check may
// filter on.
var existenceColumns = map[string]map[string]bool{
	"articles": {"article_id": true, "topic": true, "author": true},
	"topics":   {"slug": true},
	"users":    {"username": true},
	"comments": {"comment_id": true, "article_id": true, "author": true},
}

// IsSortColumn reports whether sortBy may be used to order articles
func IsSortColumn(sortBy string) bool {
	_, ok := articleSortColumns[sortBy]
	return ok
}

// IsSortOrder reports whether order is an accepted sort direction
func IsSortOrder(order string) bool {
	return sortOrders[order]
}

// IsCheckable reports whether column of table may be used in an existence check
func IsCheckable(table, column string) bool {
	return existenceColumns[table][column]
}
