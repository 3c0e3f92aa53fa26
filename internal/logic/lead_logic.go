package logic

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/blues/adagency/internal/model"
	"github.com/blues/adagency/internal/notify"
	"gorm.io/gorm"
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 100

	// MaxPage keeps (page-1)*limit inside a 32-bit OFFSET.
	MaxPage = math.MaxInt32 / MaxPageSize
)

// LeadLogic implements lead intake and triage.
type LeadLogic struct {
	db       *gorm.DB
	notifier notify.Notifier
}

// NewLeadLogic notifier may be nil.
func NewLeadLogic(db *gorm.DB, notifier notify.Notifier) *LeadLogic {
	return &LeadLogic{db: db, notifier: notifier}
}

// CreateLeadInput is what a public form submits.
type CreateLeadInput struct {
	Name        string
	Email       string
	Phone       string
	Message     string
	Type        model.LeadType
	Source      string
	ServiceType string
	Budget      string
	Details     map[string]interface{}
}

// LeadFilter selects a page of leads. Zero values mean "no filter".
type LeadFilter struct {
	Page     int
	Limit    int
	Search   string
	Status   model.LeadStatus
	Type     model.LeadType
	Priority model.LeadPriority
}

// LeadPatch holds the admin-editable fields; nil means unchanged.
type LeadPatch struct {
	Status   *model.LeadStatus
	Priority *model.LeadPriority
	Notes    *string
	Assignee *model.Assignee
}

// LeadStats counts leads per status.
type LeadStats struct {
	Total    int64                      `json:"total"`
	ByStatus map[model.LeadStatus]int64 `json:"byStatus"`
}

// defaultPriority is the priority given to every new lead until the business
// rule for triage is agreed.
func defaultPriority(model.LeadType, string) model.LeadPriority {
	return model.LeadPriorityMedium
}

// CreateLead persists a new lead with status NEW and notifies subscribers.
func (l *LeadLogic) CreateLead(ctx context.Context, in CreateLeadInput) (*model.Lead, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, ErrNameRequired
	}

	typ := in.Type
	if typ == "" {
		typ = model.LeadTypeContact
	}
	if !typ.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidType, in.Type)
	}

	lead := &model.Lead{
		Name:        name,
		Email:       strings.TrimSpace(in.Email),
		Phone:       strings.TrimSpace(in.Phone),
		Message:     in.Message,
		Type:        typ,
		Status:      model.LeadStatusNew,
		Priority:    defaultPriority(typ, in.Budget),
		Source:      in.Source,
		ServiceType: in.ServiceType,
		Budget:      in.Budget,
		Details:     in.Details,
	}

	if err := l.db.WithContext(ctx).Create(lead).Error; err != nil {
		return nil, fmt.Errorf("failed to create lead: %w", err)
	}

	if l.notifier != nil {
		l.notifier.Notify(notify.NewEvent(notify.EventLeadCreated, *lead))
	}

	return lead, nil
}

// NormalizePage clamps page and limit to sane values.
func NormalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if page > MaxPage {
		page = MaxPage
	}
	if limit < 1 {
		limit = DefaultPageSize
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}
	return page, limit
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

// escapeLike makes s match literally inside a LIKE pattern.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// ListLeads returns one page of leads, newest first, and the total matching count.
func (l *LeadLogic) ListLeads(ctx context.Context, f LeadFilter) ([]model.Lead, int64, error) {
	if f.Status != "" && !f.Status.Valid() {
		return nil, 0, fmt.Errorf("%w: %q", ErrInvalidStatus, f.Status)
	}
	if f.Type != "" && !f.Type.Valid() {
		return nil, 0, fmt.Errorf("%w: %q", ErrInvalidType, f.Type)
	}
	if f.Priority != "" && !f.Priority.Valid() {
		return nil, 0, fmt.Errorf("%w: %q", ErrInvalidPriority, f.Priority)
	}
	page, limit := NormalizePage(f.Page, f.Limit)

	query := l.db.WithContext(ctx).Model(&model.Lead{}).Session(&gorm.Session{})
	if f.Status != "" {
		query = query.Where("status = ?", f.Status)
	}
	if f.Type != "" {
		query = query.Where("type = ?", f.Type)
	}
	if f.Priority != "" {
		query = query.Where("priority = ?", f.Priority)
	}
	if search := strings.TrimSpace(f.Search); search != "" {
		pattern := "%" + escapeLike(strings.ToLower(search)) + "%"
		query = query.Where(
			`LOWER(name) LIKE ? ESCAPE '\' OR LOWER(email) LIKE ? ESCAPE '\' OR LOWER(phone) LIKE ? ESCAPE '\'`,
			pattern, pattern, pattern,
		)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count leads: %w", err)
	}

	leads := []model.Lead{}
	err := query.
		Order("created_at DESC").
		Order("id DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&leads).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list leads: %w", err)
	}

	return leads, total, nil
}

func (l *LeadLogic) GetLead(ctx context.Context, id uint) (*model.Lead, error) {
	var lead model.Lead
	if err := l.db.WithContext(ctx).First(&lead, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLeadNotFound
		}
		return nil, fmt.Errorf("failed to get lead: %w", err)
	}
	return &lead, nil
}

// UpdateLead merges the patch into the stored lead. id and createdAt never change.
func (l *LeadLogic) UpdateLead(ctx context.Context, id uint, patch LeadPatch) (*model.Lead, error) {
	updates := make(map[string]interface{})
	if patch.Status != nil {
		if !patch.Status.Valid() {
			return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, *patch.Status)
		}
		updates["status"] = *patch.Status
	}
	if patch.Priority != nil {
		if !patch.Priority.Valid() {
			return nil, fmt.Errorf("%w: %q", ErrInvalidPriority, *patch.Priority)
		}
		updates["priority"] = *patch.Priority
	}
	if patch.Notes != nil {
		updates["notes"] = *patch.Notes
	}
	if patch.Assignee != nil {
		updates["assignee_name"] = strings.TrimSpace(patch.Assignee.Name)
		updates["assignee_email"] = strings.TrimSpace(patch.Assignee.Email)
	}

	if len(updates) == 0 {
		return nil, ErrEmptyUpdate
	}

	lead, err := l.GetLead(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := l.db.WithContext(ctx).Model(lead).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update lead: %w", err)
	}

	return l.GetLead(ctx, id)
}

// DeleteLead is idempotent; deleted is false when the id did not exist.
func (l *LeadLogic) DeleteLead(ctx context.Context, id uint) (bool, error) {
	res := l.db.WithContext(ctx).Delete(&model.Lead{}, id)
	if res.Error != nil {
		return false, fmt.Errorf("failed to delete lead: %w", res.Error)
	}
	return res.RowsAffected > 0, nil
}

// BulkDeleteLeads removes the listed leads in one transaction. Unknown ids are ignored.
func (l *LeadLogic) BulkDeleteLeads(ctx context.Context, ids []uint) (int64, error) {
	if len(ids) == 0 {
		return 0, ErrNoIDs
	}

	var deleted int64
	err := l.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("id IN ?", ids).Delete(&model.Lead{})
		if res.Error != nil {
			return res.Error
		}
		deleted = res.RowsAffected
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to delete leads: %w", err)
	}
	return deleted, nil
}

// GetLeadStats counts leads by status, including zero buckets.
func (l *LeadLogic) GetLeadStats(ctx context.Context) (*LeadStats, error) {
	var rows []struct {
		Status model.LeadStatus
		Count  int64
	}
	err := l.db.WithContext(ctx).Model(&model.Lead{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get lead stats: %w", err)
	}

	stats := &LeadStats{ByStatus: make(map[model.LeadStatus]int64, len(model.LeadStatuses))}
	for _, s := range model.LeadStatuses {
		stats.ByStatus[s] = 0
	}
	for _, r := range rows {
		stats.ByStatus[r.Status] = r.Count
		stats.Total += r.Count
	}
	return stats, nil
}

// CountStaleNew counts NEW leads created before the cutoff.
func (l *LeadLogic) CountStaleNew(ctx context.Context, cutoff time.Time) (int64, error) {
	var count int64
	err := l.db.WithContext(ctx).Model(&model.Lead{}).
		Where("status = ? AND created_at < ?", model.LeadStatusNew, cutoff).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count stale leads: %w", err)
	}
	return count, nil
}
