package seeder

import (
	"context"
	"time"

	"github.com/uptrace/bun"
	"go.uber.org/zap"

	"github.com/sweetbakery/storefront/internal/database"
	"github.com/sweetbakery/storefront/internal/entity"
)

// Seeder performs database seeding for local/dev setups.
type Seeder struct {
	db     *bun.DB
	logger *zap.Logger
}

// New constructs a Seeder backed by the primary database connection.
func New(conns *database.Connections, logger *zap.Logger) *Seeder {
	return &Seeder{db: conns.Writer, logger: logger}
}

// Catalog seeds example products if the catalog is empty.
func (s *Seeder) Catalog(ctx context.Context) error {
	count, err := s.db.NewSelect().Model((*entity.Product)(nil)).Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	now := time.Now().UTC()
	samples := []entity.Product{
		{Name: "Наполеон", Category: "Торты", Price: 1500, Image: "/images/napoleon.jpg", Description: "Слоёный торт с заварным кремом", Rating: 5, CreatedAt: now},
		{Name: "Медовик", Category: "Торты", Price: 1400, Image: "/images/medovik.jpg", Description: "Медовые коржи со сметанным кремом", Rating: 5, CreatedAt: now},
		{Name: "Эклер", Category: "Пирожные", Price: 250, Image: "/images/eclair.jpg", Description: "Заварное пирожное с кремом", Rating: 4.8, CreatedAt: now},
	}

	if _, err := s.db.NewInsert().Model(&samples).Exec(ctx); err != nil {
		return err
	}

	if s.logger != nil {
		s.logger.Info("seeded products", zap.Int("count", len(samples)))
	}
	return nil
}

// Reviews seeds example reviews if none exist.
func (s *Seeder) Reviews(ctx context.Context) error {
	count, err := s.db.NewSelect().Model((*entity.Review)(nil)).Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	now := time.Now().UTC()
	samples := []entity.Review{
		{Author: "Анна", Rating: 5, Text: "Торт приехал вовремя, очень вкусный!", CreatedAt: now},
		{Author: "Дмитрий", Rating: 4, Text: "Хорошие эклеры, возьму ещё.", CreatedAt: now},
	}

	if _, err := s.db.NewInsert().Model(&samples).Exec(ctx); err != nil {
		return err
	}

	if s.logger != nil {
		s.logger.Info("seeded reviews", zap.Int("count", len(samples)))
	}
	return nil
}
