package settings

import (
	"context"
	"fmt"

	"github.com/nangenlabs/NGL-SiteService/internal/service/settings/models"
)

// Service сервис глобального тумблера приема бронирований
type Service struct {
	settingsRepo SettingsRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса настроек
func NewService(settingsRepo SettingsRepository, logger Logger) *Service {
	return &Service{
		settingsRepo: settingsRepo,
		logger:       logger,
	}
}

// GetAvailability возвращает текущее состояние приема бронирований
func (s *Service) GetAvailability(ctx context.Context) (*models.AvailabilityResponse, error) {
	siteSettings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		s.logger.Error("GetAvailability: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetAvailability - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainSettings(siteSettings), nil
}

// SetAvailability включает или выключает прием бронирований.
// Действует немедленно: каждый запрос на бронирование читает тумблер заново.
func (s *Service) SetAvailability(ctx context.Context, req *models.UpdateAvailabilityRequest) (*models.AvailabilityResponse, error) {
	s.logger.Info("SetAvailability: setting acceptingBookings=%t", req.AcceptingBookings)

	if err := s.settingsRepo.SetAcceptingBookings(ctx, req.AcceptingBookings); err != nil {
		s.logger.Error("SetAvailability: repository error: %v", err)
		return nil, fmt.Errorf("%w: SetAvailability - repository error: %v", ErrInternal, err)
	}

	siteSettings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		s.logger.Error("SetAvailability: failed to reload settings: %v", err)
		return nil, fmt.Errorf("%w: SetAvailability - reload error: %v", ErrInternal, err)
	}

	s.logger.Info("SetAvailability: acceptingBookings is now %t", siteSettings.AcceptingBookings)
	return models.FromDomainSettings(siteSettings), nil
}
