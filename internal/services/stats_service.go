package services

import (
	"context"

	"boutiqueBack/internal/models"
	"boutiqueBack/internal/repositories"
	"boutiqueBack/internal/stats"
)

type StatsService struct {
	ProductRepo *repositories.ProductRepository
}

func (s *StatsService) SalesStats(ctx context.Context) (models.SalesStats, error) {
	sold, err := s.ProductRepo.GetProductsByStatus(ctx, models.ProductStatusSold)
	if err != nil {
		return models.SalesStats{}, err
	}
	return stats.Aggregate(sold), nil
}
