package store

import (
	"context"
	"fmt"
)

// Seed loads the initial catalog: five categories, eight tags, and three
// books attached to the first category and first tag. Call once at startup
// on an empty store.
func (s *Store) Seed(ctx context.Context) error {
	categories := []CreateCategoryInput{
		{Name: "Web Development", Icon: "🌐", Description: "Frontend and backend web technologies", TrendScore: 100},
		{Name: "Mobile Development", Icon: "📱", Description: "iOS, Android and cross-platform apps", TrendScore: 80},
		{Name: "AI & Machine Learning", Icon: "🤖", Description: "Artificial intelligence and data science", TrendScore: 95},
		{Name: "DevOps", Icon: "🚀", Description: "Infrastructure, CI/CD and operations", TrendScore: 70},
		{Name: "Database", Icon: "💾", Description: "Data modeling and storage systems", TrendScore: 60},
	}
	var firstCategoryID int64
	for i, c := range categories {
		cat, err := s.CreateCategory(ctx, c)
		if err != nil {
			return fmt.Errorf("seed category %q: %w", c.Name, err)
		}
		if i == 0 {
			firstCategoryID = cat.ID
		}
	}

	tagNames := []string{"React", "TypeScript", "Node.js", "Python", "Docker", "AWS", "Next.js", "Vue.js"}
	var firstTagID int64
	for i, name := range tagNames {
		tag, err := s.GetOrCreateTag(ctx, name)
		if err != nil {
			return fmt.Errorf("seed tag %q: %w", name, err)
		}
		if i == 0 {
			firstTagID = tag.ID
		}
	}

	books := []CreateBookInput{
		{
			Title:        "The Pragmatic Programmer",
			Author:       "David Thomas, Andrew Hunt",
			Description:  "Your journey to mastery",
			MentionCount: 150,
		},
		{
			Title:        "Clean Code",
			Author:       "Robert C. Martin",
			Description:  "A handbook of agile software craftsmanship",
			MentionCount: 200,
		},
		{
			Title:        "Designing Data-Intensive Applications",
			Author:       "Martin Kleppmann",
			Description:  "The big ideas behind reliable, scalable, and maintainable systems",
			MentionCount: 180,
		},
	}
	for _, b := range books {
		book, err := s.CreateBook(ctx, b)
		if err != nil {
			return fmt.Errorf("seed book %q: %w", b.Title, err)
		}
		if err := s.AddBookCategory(ctx, book.ID, firstCategoryID); err != nil {
			return fmt.Errorf("seed book category: %w", err)
		}
		if err := s.AddBookTag(ctx, book.ID, firstTagID); err != nil {
			return fmt.Errorf("seed book tag: %w", err)
		}
	}

	if s.logger != nil {
		s.logger.Info("store seeded",
			"categories", len(categories),
			"tags", len(tagNames),
			"books", len(books),
		)
	}

	return nil
}
