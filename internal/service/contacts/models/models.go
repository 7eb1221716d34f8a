package models

import (
	"errors"
	"time"

	"github.com/nangenlabs/NGL-SiteService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid contact status")
)

// Пагинация по умолчанию и её потолок
const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Request модели

// CreateContactRequest запрос на создание обращения
type CreateContactRequest struct {
	FullName string  `json:"fullname"`
	Email    string  `json:"email"`
	Phone    *string `json:"phone,omitempty"`
	Company  *string `json:"company,omitempty"`
	Subject  *string `json:"subject,omitempty"`
	Message  string  `json:"message"`

	// Метаданные запроса, заполняются хендлером
	IPAddress *string `json:"-"`
	UserAgent *string `json:"-"`
}

// ListContactsRequest запрос на постраничный список обращений
type ListContactsRequest struct {
	Status   *string `json:"status,omitempty"`
	Page     int     `json:"page"`
	PageSize int     `json:"pageSize"`
}

// ToDomainFilter конвертирует request в domain фильтр с нормализацией пагинации
func (r *ListContactsRequest) ToDomainFilter() (domain.ContactsFilter, error) {
	filter := domain.ContactsFilter{}

	if r.Status != nil {
		status := domain.ContactStatus(*r.Status)
		if !domain.ValidContactStatus(status) {
			return filter, ErrInvalidStatus
		}
		filter.Status = &status
	}

	page := r.Page
	if page < 1 {
		page = 1
	}
	pageSize := r.PageSize
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}

	filter.Limit = pageSize
	filter.Offset = (page - 1) * pageSize

	return filter, nil
}

// UpdateStatusRequest запрос на смену статуса обращения
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// Response модели

// ContactResponse ответ с данными обращения
type ContactResponse struct {
	ID        int64     `json:"id"`
	FullName  string    `json:"fullname"`
	Email     string    `json:"email"`
	Phone     *string   `json:"phone,omitempty"`
	Company   *string   `json:"company,omitempty"`
	Subject   *string   `json:"subject,omitempty"`
	Message   string    `json:"message"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CreateContactResponse ответ на создание обращения.
// EmailSent=false означает, что обращение сохранено, но письма отправить
// не удалось - это не ошибка запроса.
type CreateContactResponse struct {
	Contact   ContactResponse `json:"contact"`
	EmailSent bool            `json:"emailSent"`
}

// ContactListResponse постраничный ответ со списком обращений
type ContactListResponse struct {
	Contacts []ContactResponse `json:"contacts"`
	Total    int64             `json:"total"`
	Page     int               `json:"page"`
	PageSize int               `json:"pageSize"`
}

// Методы конвертации

// FromDomainContact конвертирует domain модель в DTO
func FromDomainContact(c *domain.ContactMessage) *ContactResponse {
	if c == nil {
		return nil
	}

	return &ContactResponse{
		ID:        c.ID,
		FullName:  c.FullName,
		Email:     c.Email,
		Phone:     c.Phone,
		Company:   c.Company,
		Subject:   c.Subject,
		Message:   c.Message,
		Status:    string(c.Status),
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// FromDomainContactList конвертирует список domain моделей в DTO
func FromDomainContactList(contacts []*domain.ContactMessage, total int64, page, pageSize int) *ContactListResponse {
	resp := &ContactListResponse{
		Contacts: make([]ContactResponse, 0, len(contacts)),
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}

	for _, c := range contacts {
		if contactResp := FromDomainContact(c); contactResp != nil {
			resp.Contacts = append(resp.Contacts, *contactResp)
		}
	}

	return resp
}
