package rankings

// RankRange selects the mention-count window used for a ranking.
type RankRange string

const (
	RangeAll     RankRange = "all"
	RangeMonthly RankRange = "monthly"
	RangeYearly  RankRange = "yearly"
)

// Valid reports whether the range is one the service accepts.
func (r RankRange) Valid() bool {
	switch r {
	case RangeAll, RangeMonthly, RangeYearly:
		return true
	}
	return false
}

// RankedBook is a compact ranking entry.
type RankedBook struct {
	Rank      int    `json:"rank"`
	ID        string `json:"id"`
	Title     string `json:"title"`
	Thumbnail string `json:"thumbnail,omitempty"`
}

// RankedBookDetail is a ranking entry with full book fields.
type RankedBookDetail struct {
	Rank         int      `json:"rank"`
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Author       string   `json:"author,omitempty"`
	Rating       float64  `json:"rating"`
	ReviewCount  int      `json:"review_count"`
	PublishedAt  string   `json:"published_at,omitempty"`
	Thumbnail    string   `json:"thumbnail,omitempty"`
	Tags         []string `json:"tags,omitempty"`
	MentionCount int      `json:"mention_count"`
	AmazonURL    string   `json:"amazon_url,omitempty"`
	RakutenURL   string   `json:"rakuten_url,omitempty"`
}

// ArticleMention is an external article referencing a book.
type ArticleMention struct {
	Title    string `json:"title"`
	URL      string `json:"url"`
	Likes    int    `json:"likes"`
	Stocks   int    `json:"stocks"`
	Comments int    `json:"comments"`
}

// BookDetail is the full record for a single ranked book, including the
// articles that mention it.
type BookDetail struct {
	RankedBookDetail
	Description string           `json:"description,omitempty"`
	ISBN        string           `json:"isbn,omitempty"`
	Mentions    []ArticleMention `json:"mentions,omitempty"`
}

// CategoryWithBooks is a category card with its top-ranked books.
type CategoryWithBooks struct {
	ID       string       `json:"id"`
	Name     string       `json:"name"`
	Icon     string       `json:"icon,omitempty"`
	TrendTag TrendTag     `json:"trend_tag"`
	Score    int          `json:"score"`
	Books    []RankedBook `json:"books"`
}

// rankingsResponse is the wire shape of GET /rankings.
type rankingsResponse struct {
	Books []RankedBookDetail `json:"books"`
	Total int                `json:"total"`
}

// categoriesResponse is the wire shape of GET /categories/with-books.
type categoriesResponse struct {
	Categories []CategoryWithBooks `json:"categories"`
}
