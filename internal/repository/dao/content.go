package dao

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	ErrCaseNotFound  = errors.New("case not found")
	ErrPostNotFound  = errors.New("post not found")
	ErrPostSlugTaken = errors.New("post slug already exists")
)

type Case struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Title     string `gorm:"size:200;not null" json:"title"`
	Type      string `gorm:"size:64;index" json:"type"`
	Location  string `gorm:"size:200" json:"location"`
	DateLabel string `gorm:"size:64" json:"date_label"`
	ShortText string `json:"short_text"`
	ImageURL  string `gorm:"size:500" json:"image_url"`
}

type Post struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	Title       string     `gorm:"size:200;not null" json:"title"`
	Slug        string     `gorm:"size:220;unique;not null" json:"slug"`
	Content     string     `json:"content"`
	Published   bool       `gorm:"not null;default:false;index" json:"published"`
	PublishedAt *time.Time `json:"published_at"`
}

type ContentDAO struct {
	db *gorm.DB
}

func NewContentDAO(db *gorm.DB) *ContentDAO {
	return &ContentDAO{
		db: db,
	}
}

func (d *ContentDAO) ListCases(ctx context.Context) ([]Case, error) {
	var cases []Case

	result := d.db.WithContext(ctx).Order("id").Find(&cases)
	if result.Error != nil {
		return nil, result.Error
	}

	return cases, nil
}

func (d *ContentDAO) ListPublishedPosts(ctx context.Context) ([]Post, error) {
	var posts []Post

	result := d.db.WithContext(ctx).Where("published = ?", true).Order("id").Find(&posts)
	if result.Error != nil {
		return nil, result.Error
	}

	return posts, nil
}

func (d *ContentDAO) FindPostBySlug(ctx context.Context, slug string) (Post, error) {
	var post Post

	result := d.db.WithContext(ctx).First(&post, "slug = ?", slug)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Post{}, ErrPostNotFound
		}

		return Post{}, result.Error
	}

	return post, nil
}

func (d *ContentDAO) InsertPost(ctx context.Context, post Post) (Post, error) {
	result := d.db.WithContext(ctx).Create(&post)
	if result.Error != nil {
		var err *pgconn.PgError
		if errors.As(result.Error, &err) &&
			err.Code == pgerrcode.UniqueViolation &&
			strings.Contains(err.Message, "slug") {
			return Post{}, ErrPostSlugTaken
		}

		return Post{}, result.Error
	}

	return post, nil
}

func (d *ContentDAO) InsertCase(ctx context.Context, c Case) (Case, error) {
	result := d.db.WithContext(ctx).Create(&c)
	if result.Error != nil {
		return Case{}, result.Error
	}

	return c, nil
}
