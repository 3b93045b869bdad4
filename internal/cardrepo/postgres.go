package cardrepo

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/kundankarn/football-battle-bot/internal/card"
)

// cardRecord is the gorm model backing the cards table. One row per card per
// owner; the same card name may appear under several owners.
type cardRecord struct {
	ID       uint   `gorm:"primaryKey"`
	OwnerID  string `gorm:"index"`
	Name     string
	Rating   float64
	Price    float64
	Agr      float64
	Apps     float64
	SV       *float64 `gorm:"column:sv"`
	GA       *float64 `gorm:"column:ga"`
	TW       *float64 `gorm:"column:tw"`
	ImageURL string
}

func (cardRecord) TableName() string { return "cards" }

// Postgres serves card collections from a Postgres database.
type Postgres struct {
	db *gorm.DB
}

func NewPostgres(dsn string) (*Postgres, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if err := db.AutoMigrate(&cardRecord{}); err != nil {
		return nil, fmt.Errorf("migrate cards table: %w", err)
	}
	return &Postgres{db: db}, nil
}

func (p *Postgres) OwnedCards(ctx context.Context, participantID string) ([]card.Card, error) {
	var recs []cardRecord
	if err := p.db.WithContext(ctx).Where("owner_id = ?", participantID).Find(&recs).Error; err != nil {
		return nil, fmt.Errorf("load owned cards: %w", err)
	}
	cards := make([]card.Card, 0, len(recs))
	for _, r := range recs {
		cards = append(cards, r.toCard())
	}
	return cards, nil
}

func (p *Postgres) FindCardByName(ctx context.Context, name string) (card.Card, error) {
	var rec cardRecord
	err := p.db.WithContext(ctx).Where("LOWER(name) = LOWER(?)", name).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return card.Card{}, ErrNotFound
	}
	if err != nil {
		return card.Card{}, fmt.Errorf("find card: %w", err)
	}
	return rec.toCard(), nil
}

func (r cardRecord) toCard() card.Card {
	return card.Card{
		Name:     r.Name,
		Rating:   r.Rating,
		Price:    r.Price,
		Agr:      r.Agr,
		Apps:     r.Apps,
		SV:       r.SV,
		GA:       r.GA,
		TW:       r.TW,
		ImageURL: r.ImageURL,
	}
}
