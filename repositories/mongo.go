package repositories

import (
	"context"
	"errors"
	"regexp"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"tech-pulse/models"
)

var _ Store = (*MongoStore)(nil)

// MongoStore is the durable Store backend.
// Collections: articles, summaries, bookmarks. See db.ensureIndexes for the unique
// article_id indexes that back the one-summary / one-bookmark rule.
type MongoStore struct {
	articles  *mongo.Collection
	summaries *mongo.Collection
	bookmarks *mongo.Collection
	now       func() time.Time
}

func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{
		articles:  db.Collection("articles"),
		summaries: db.Collection("summaries"),
		bookmarks: db.Collection("bookmarks"),
		now:       time.Now,
	}
}

// articleQuery builds the mongo filter equivalent of matchArticle.
func articleQuery(f ArticleFilter) bson.M {
	q := bson.M{}
	category := models.NormalizeCategory(f.Category)
	if !category.IsWildcard() {
		q["category"] = bson.M{"$regex": "^" + regexp.QuoteMeta(string(category)) + "$", "$options": "i"}
	}
	if f.Search != "" {
		rx := bson.M{"$regex": regexp.QuoteMeta(f.Search), "$options": "i"}
		q["$or"] = bson.A{
			bson.M{"title": rx},
			bson.M{"description": rx},
			bson.M{"source": rx},
		}
	}
	return q
}

func (s *MongoStore) ListArticles(ctx context.Context, f ArticleFilter) ([]models.Article, error) {
	f = f.normalized()
	opts := options.Find().
		SetSort(bson.D{{Key: "published_at", Value: -1}}).
		SetSkip(int64(f.Offset)).
		SetLimit(int64(f.Limit))

	cur, err := s.articles.Find(ctx, articleQuery(f), opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []models.Article{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *MongoStore) GetArticle(ctx context.Context, id string) (models.Article, error) {
	var a models.Article
	if err := s.articles.FindOne(ctx, bson.M{"_id": id}).Decode(&a); err != nil {
		return models.Article{}, mapMongoErr(err)
	}
	return a, nil
}

// CreateArticle inserts a only if its id is new; an existing article is returned unchanged.
func (s *MongoStore) CreateArticle(ctx context.Context, a models.Article) (models.Article, error) {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	a.Description = normalizeOptional(a.Description)
	a.URLToImage = normalizeOptional(a.URLToImage)
	a.Content = normalizeOptional(a.Content)

	filter := bson.M{"_id": a.ID}
	update := bson.M{"$setOnInsert": bson.M{
		"title":        a.Title,
		"description":  a.Description,
		"url":          a.URL,
		"url_to_image": a.URLToImage,
		"published_at": a.PublishedAt,
		"source":       a.Source,
		"category":     a.Category,
		"content":      a.Content,
	}}
	if _, err := s.articles.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true)); err != nil {
		return models.Article{}, err
	}
	return s.GetArticle(ctx, a.ID)
}

func (s *MongoStore) CreateArticles(ctx context.Context, as []models.Article) ([]models.Article, error) {
	out := make([]models.Article, 0, len(as))
	for _, a := range as {
		saved, err := s.CreateArticle(ctx, a)
		if err != nil {
			return out, err
		}
		out = append(out, saved)
	}
	return out, nil
}

func (s *MongoStore) GetSummary(ctx context.Context, articleID string) (models.Summary, error) {
	var sum models.Summary
	if err := s.summaries.FindOne(ctx, bson.M{"article_id": articleID}).Decode(&sum); err != nil {
		return models.Summary{}, mapMongoErr(err)
	}
	return sum, nil
}

// CreateSummary upserts on article_id with $setOnInsert so the first writer wins.
func (s *MongoStore) CreateSummary(ctx context.Context, sum models.Summary) (models.Summary, error) {
	sum.ID = uuid.NewString()
	sum.CreatedAt = s.now()

	filter := bson.M{"article_id": sum.ArticleID}
	update := bson.M{"$setOnInsert": bson.M{
		"_id":        sum.ID,
		"summary":    sum.Summary,
		"created_at": sum.CreatedAt,
	}}
	if _, err := s.summaries.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true)); err != nil && !mongo.IsDuplicateKeyError(err) {
		return models.Summary{}, err
	}
	return s.GetSummary(ctx, sum.ArticleID)
}

func (s *MongoStore) ListBookmarks(ctx context.Context) ([]models.Bookmark, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := s.bookmarks.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []models.Bookmark{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *MongoStore) CreateBookmark(ctx context.Context, b models.Bookmark) (models.Bookmark, error) {
	b.ID = uuid.NewString()
	b.CreatedAt = s.now()

	filter := bson.M{"article_id": b.ArticleID}
	update := bson.M{"$setOnInsert": bson.M{
		"_id":        b.ID,
		"created_at": b.CreatedAt,
	}}
	if _, err := s.bookmarks.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true)); err != nil && !mongo.IsDuplicateKeyError(err) {
		return models.Bookmark{}, err
	}

	var saved models.Bookmark
	if err := s.bookmarks.FindOne(ctx, filter).Decode(&saved); err != nil {
		return models.Bookmark{}, mapMongoErr(err)
	}
	return saved, nil
}

func (s *MongoStore) DeleteBookmark(ctx context.Context, articleID string) (bool, error) {
	res, err := s.bookmarks.DeleteOne(ctx, bson.M{"article_id": articleID})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

func (s *MongoStore) IsBookmarked(ctx context.Context, articleID string) (bool, error) {
	n, err := s.bookmarks.CountDocuments(ctx, bson.M{"article_id": articleID}, options.Count().SetLimit(1))
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func mapMongoErr(err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	return err
}
