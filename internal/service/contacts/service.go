package contacts

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/nangenlabs/NGL-SiteService/internal/domain"
	contactRepo "github.com/nangenlabs/NGL-SiteService/internal/infra/storage/contact"
	"github.com/nangenlabs/NGL-SiteService/internal/integrations/mailer"
	"github.com/nangenlabs/NGL-SiteService/internal/service/contacts/models"
)

// Service сервис для работы с обращениями контактной формы
type Service struct {
	contactRepo ContactRepository
	mailClient  Mailer
	logger      Logger
}

// NewService создает новый экземпляр сервиса обращений
func NewService(
	contactRepo ContactRepository,
	mailClient Mailer,
	logger Logger,
) *Service {
	return &Service{
		contactRepo: contactRepo,
		mailClient:  mailClient,
		logger:      logger,
	}
}

// Create сохраняет обращение и рассылает письма. Порядок жёсткий: сначала
// запись в БД, потом почта. Ошибка отправки не откатывает обращение,
// а возвращается флагом EmailSent=false.
func (s *Service) Create(ctx context.Context, req *models.CreateContactRequest) (*models.CreateContactResponse, error) {
	s.logger.Info("Create: new contact message from email=%s", req.Email)

	// 1. Валидация входных данных
	if err := validateCreateRequest(req); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	// 2. Нормализация
	contact := &domain.ContactMessage{
		FullName:  strings.TrimSpace(req.FullName),
		Email:     strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:     trimPtr(req.Phone),
		Company:   trimPtr(req.Company),
		Subject:   trimPtr(req.Subject),
		Message:   strings.TrimSpace(req.Message),
		Status:    domain.ContactStatusNew,
		IPAddress: req.IPAddress,
		UserAgent: req.UserAgent,
	}

	// 3. Сохранение
	created, err := s.contactRepo.Create(ctx, contact)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully saved contact message id=%d", created.ID)

	// 4. Письма - best-effort
	emailSent := s.sendEmails(created)

	return &models.CreateContactResponse{
		Contact:   *models.FromDomainContact(created),
		EmailSent: emailSent,
	}, nil
}

// List получает обращения постранично с опциональным фильтром по статусу
func (s *Service) List(ctx context.Context, req *models.ListContactsRequest) (*models.ContactListResponse, error) {
	s.logger.Info("List: fetching contacts, status=%v, page=%d, pageSize=%d",
		req.Status, req.Page, req.PageSize)

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidStatus, err)
	}

	contacts, err := s.contactRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	total, err := s.contactRepo.Count(ctx, filter)
	if err != nil {
		s.logger.Error("List: count error: %v", err)
		return nil, fmt.Errorf("%w: List - count error: %v", ErrInternal, err)
	}

	page := filter.Offset/filter.Limit + 1
	s.logger.Info("List: successfully fetched %d of %d contacts", len(contacts), total)
	return models.FromDomainContactList(contacts, total, page, filter.Limit), nil
}

// UpdateStatus переводит обращение в новый статус
func (s *Service) UpdateStatus(ctx context.Context, id int64, req *models.UpdateStatusRequest) (*models.ContactResponse, error) {
	s.logger.Info("UpdateStatus: updating contact id=%d to status=%s", id, req.Status)

	status := domain.ContactStatus(req.Status)
	if !domain.ValidContactStatus(status) {
		s.logger.Warn("UpdateStatus: invalid status=%s for contact id=%d", req.Status, id)
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, req.Status)
	}

	if err := s.contactRepo.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, contactRepo.ErrContactNotFound) {
			s.logger.Warn("UpdateStatus: contact id=%d not found", id)
			return nil, ErrContactNotFound
		}
		s.logger.Error("UpdateStatus: repository error for contact id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	updated, err := s.contactRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("UpdateStatus: failed to reload contact id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateStatus - reload error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStatus: successfully updated contact id=%d to status=%s", id, status)
	return models.FromDomainContact(updated), nil
}

// sendEmails отправляет уведомление владельцу и подтверждение отправителю.
// Возвращает true, только если оба письма ушли.
func (s *Service) sendEmails(c *domain.ContactMessage) bool {
	data := &mailer.ContactEmailData{
		ID:        c.ID,
		FullName:  c.FullName,
		Email:     c.Email,
		Phone:     c.Phone,
		Company:   c.Company,
		Subject:   c.Subject,
		Message:   c.Message,
		CreatedAt: c.CreatedAt,
	}

	sent := true
	if err := s.mailClient.SendContactNotification(data); err != nil {
		s.logger.Warn("sendEmails: notification email failed for contact id=%d: %v", c.ID, err)
		sent = false
	}
	if err := s.mailClient.SendContactConfirmation(data); err != nil {
		s.logger.Warn("sendEmails: confirmation email failed for contact id=%d: %v", c.ID, err)
		sent = false
	}

	return sent
}

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
