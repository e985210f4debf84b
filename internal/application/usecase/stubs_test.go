package usecase_test

import (
	"context"
	"errors"
	"time"

	"github.com/docscompta/docscompta-api/internal/domain/entity"
	"github.com/docscompta/docscompta-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Stubs en memoria compartidos por los tests del paquete
// ──────────────────────────────────────────────────────────────────────────────

type fakeCompanyRepo struct {
	byID map[string]*entity.Company
}

func newFakeCompanyRepo(companies ...*entity.Company) *fakeCompanyRepo {
	r := &fakeCompanyRepo{byID: map[string]*entity.Company{}}
	for _, c := range companies {
		r.byID[c.ID] = c
	}
	return r
}

func (r *fakeCompanyRepo) Create(_ context.Context, c *entity.Company) error {
	r.byID[c.ID] = c
	return nil
}

func (r *fakeCompanyRepo) GetByID(_ context.Context, id string) (*entity.Company, error) {
	return r.byID[id], nil
}

func (r *fakeCompanyRepo) GetByUserID(_ context.Context, userID string) (*entity.Company, error) {
	for _, c := range r.byID {
		if c.UserID == userID {
			return c, nil
		}
	}
	return nil, nil
}

func (r *fakeCompanyRepo) List(_ context.Context, _, _ int) ([]*entity.Company, error) {
	out := make([]*entity.Company, 0, len(r.byID))
	for _, c := range r.byID {
		out = append(out, c)
	}
	return out, nil
}

func (r *fakeCompanyRepo) ListByAccountant(_ context.Context, accountantID string, _, _ int) ([]*entity.Company, error) {
	var out []*entity.Company
	for _, c := range r.byID {
		if c.AccountantID != nil && *c.AccountantID == accountantID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *fakeCompanyRepo) AssignAccountant(_ context.Context, companyID string, accountantID *string, updatedAt time.Time) error {
	c, ok := r.byID[companyID]
	if !ok {
		return errors.New("empresa inexistente")
	}
	c.AccountantID = accountantID
	c.UpdatedAt = updatedAt
	return nil
}

func (r *fakeCompanyRepo) UpdateStatus(_ context.Context, companyID, status string, activationDate *time.Time, updatedAt time.Time) error {
	c, ok := r.byID[companyID]
	if !ok {
		return errors.New("empresa inexistente")
	}
	c.Status = status
	c.ActivationDate = activationDate
	c.UpdatedAt = updatedAt
	return nil
}

func (r *fakeCompanyRepo) UpdateProfilePicture(_ context.Context, companyID, path string, updatedAt time.Time) error {
	c, ok := r.byID[companyID]
	if !ok {
		return errors.New("empresa inexistente")
	}
	c.ProfilePicture = path
	c.UpdatedAt = updatedAt
	return nil
}

type fakeUserRepo struct {
	byID map[string]*entity.User
}

func newFakeUserRepo(users ...*entity.User) *fakeUserRepo {
	r := &fakeUserRepo{byID: map[string]*entity.User{}}
	for _, u := range users {
		r.byID[u.ID] = u
	}
	return r
}

func (r *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	r.byID[u.ID] = u
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	return r.byID[id], nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range r.byID {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) UpdateStatus(_ context.Context, id, status string, updatedAt time.Time) error {
	u, ok := r.byID[id]
	if !ok {
		return errors.New("usuario inexistente")
	}
	u.Status = status
	u.UpdatedAt = updatedAt
	return nil
}

func (r *fakeUserRepo) List(_ context.Context, role string, _, _ int) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range r.byID {
		if role == "" || u.Role == role {
			out = append(out, u)
		}
	}
	return out, nil
}

type fakeAccountantRepo struct {
	byID map[string]*entity.Accountant
}

func newFakeAccountantRepo(accountants ...*entity.Accountant) *fakeAccountantRepo {
	r := &fakeAccountantRepo{byID: map[string]*entity.Accountant{}}
	for _, a := range accountants {
		r.byID[a.ID] = a
	}
	return r
}

func (r *fakeAccountantRepo) Create(_ context.Context, a *entity.Accountant) error {
	r.byID[a.ID] = a
	return nil
}

func (r *fakeAccountantRepo) GetByID(_ context.Context, id string) (*entity.Accountant, error) {
	return r.byID[id], nil
}

func (r *fakeAccountantRepo) GetByUserID(_ context.Context, userID string) (*entity.Accountant, error) {
	for _, a := range r.byID {
		if a.UserID == userID {
			return a, nil
		}
	}
	return nil, nil
}

func (r *fakeAccountantRepo) List(_ context.Context, _, _ int) ([]*entity.Accountant, error) {
	out := make([]*entity.Accountant, 0, len(r.byID))
	for _, a := range r.byID {
		out = append(out, a)
	}
	return out, nil
}

type fakeDocumentRepo struct {
	byID      map[string]*entity.Document
	createErr error
}

func newFakeDocumentRepo(docs ...*entity.Document) *fakeDocumentRepo {
	r := &fakeDocumentRepo{byID: map[string]*entity.Document{}}
	for _, d := range docs {
		r.byID[d.ID] = d
	}
	return r
}

func (r *fakeDocumentRepo) Create(_ context.Context, d *entity.Document) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.byID[d.ID] = d
	return nil
}

func (r *fakeDocumentRepo) GetByID(_ context.Context, id string) (*entity.Document, error) {
	return r.byID[id], nil
}

func (r *fakeDocumentRepo) ListByCompany(_ context.Context, companyID string, filter repository.DocumentFilter, _, _ int) ([]*entity.Document, error) {
	var out []*entity.Document
	for _, d := range r.byID {
		if d.CompanyID != companyID {
			continue
		}
		if filter.Status != "" && d.Status != filter.Status {
			continue
		}
		if filter.CategoryID != "" && d.CategoryID != filter.CategoryID {
			continue
		}
		out = append(out, d)
	}
	return out, nil
}

func (r *fakeDocumentRepo) UpdateStatus(_ context.Context, id, status string, processingDate *time.Time, updatedAt time.Time) error {
	d, ok := r.byID[id]
	if !ok {
		return errors.New("documento inexistente")
	}
	d.Status = status
	d.ProcessingDate = processingDate
	d.UpdatedAt = updatedAt
	return nil
}

type fakeNotificationRepo struct {
	byID      map[string]*entity.Notification
	created   []*entity.Notification
	createErr error
}

func newFakeNotificationRepo(notifications ...*entity.Notification) *fakeNotificationRepo {
	r := &fakeNotificationRepo{byID: map[string]*entity.Notification{}}
	for _, n := range notifications {
		r.byID[n.ID] = n
	}
	return r
}

func (r *fakeNotificationRepo) Create(_ context.Context, n *entity.Notification) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.byID[n.ID] = n
	r.created = append(r.created, n)
	return nil
}

func (r *fakeNotificationRepo) GetByID(_ context.Context, id string) (*entity.Notification, error) {
	return r.byID[id], nil
}

func (r *fakeNotificationRepo) ListByRecipient(_ context.Context, recipientType, recipientID string, unreadOnly bool, _, _ int) ([]*entity.Notification, error) {
	var out []*entity.Notification
	for _, n := range r.byID {
		if n.RecipientType != recipientType || n.RecipientID != recipientID {
			continue
		}
		if unreadOnly && n.Read {
			continue
		}
		out = append(out, n)
	}
	return out, nil
}

func (r *fakeNotificationRepo) MarkRead(_ context.Context, id string) error {
	n, ok := r.byID[id]
	if !ok {
		return errors.New("notificación inexistente")
	}
	n.Read = true
	return nil
}

func (r *fakeNotificationRepo) MarkAllRead(_ context.Context, recipientType, recipientID string) (int64, error) {
	var updated int64
	for _, n := range r.byID {
		if n.RecipientType == recipientType && n.RecipientID == recipientID && !n.Read {
			n.Read = true
			updated++
		}
	}
	return updated, nil
}

// fakeStorage registra subidas y borrados para verificar el orden del pipeline.
type fakeStorage struct {
	uploads   []string
	deletes   []string
	uploadErr error
}

func (s *fakeStorage) Upload(_ context.Context, key string, _ []byte) (string, error) {
	if s.uploadErr != nil {
		return "", s.uploadErr
	}
	s.uploads = append(s.uploads, key)
	return "https://files.test/" + key, nil
}

func (s *fakeStorage) Delete(_ context.Context, key string) error {
	s.deletes = append(s.deletes, key)
	return nil
}

type fakeThumbnails struct{}

func (fakeThumbnails) Generate(_ context.Context, _ []byte, _ string) ([]byte, error) {
	return nil, nil
}

// fakeDocumentTx entrega los mismos fakes al callback; si el callback falla,
// revierte las filas insertadas dentro.
type fakeDocumentTx struct {
	docs          *fakeDocumentRepo
	notifications *fakeNotificationRepo
}

func (tx *fakeDocumentTx) RunDocumentIntake(ctx context.Context, fn func(
	repository.DocumentRepository,
	repository.NotificationRepository,
) error) error {
	docsBefore := make(map[string]struct{}, len(tx.docs.byID))
	for id := range tx.docs.byID {
		docsBefore[id] = struct{}{}
	}
	notifBefore := len(tx.notifications.created)
	if err := fn(tx.docs, tx.notifications); err != nil {
		for id := range tx.docs.byID {
			if _, ok := docsBefore[id]; !ok {
				delete(tx.docs.byID, id)
			}
		}
		for _, n := range tx.notifications.created[notifBefore:] {
			delete(tx.notifications.byID, n.ID)
		}
		tx.notifications.created = tx.notifications.created[:notifBefore]
		return err
	}
	return nil
}
