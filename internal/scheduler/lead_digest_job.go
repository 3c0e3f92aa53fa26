package scheduler

import (
	"context"
	"time"

	"github.com/blues/adagency/internal/logger"
	"github.com/blues/adagency/internal/notify"
	"github.com/go-co-op/gocron/v2"
)

const digestTimeout = 30 * time.Second

// StaleLeadCounter is implemented by logic.LeadLogic.
type StaleLeadCounter interface {
	CountStaleNew(ctx context.Context, cutoff time.Time) (int64, error)
}

// Digest is the payload of a lead.digest event.
type Digest struct {
	StaleNew   int64     `json:"staleNew"`
	OlderThan  time.Time `json:"olderThan"`
	StaleAfter string    `json:"staleAfter"`
}

// LeadDigestJob reports NEW leads nobody has touched for a while. It only reads leads.
type LeadDigestJob struct {
	leads      StaleLeadCounter
	notifier   notify.Notifier
	interval   time.Duration
	staleAfter time.Duration
	now        func() time.Time
}

func NewLeadDigestJob(leads StaleLeadCounter, notifier notify.Notifier, interval, staleAfter time.Duration) *LeadDigestJob {
	return &LeadDigestJob{
		leads:      leads,
		notifier:   notifier,
		interval:   interval,
		staleAfter: staleAfter,
		now:        time.Now,
	}
}

func (j *LeadDigestJob) GetName() string {
	return "new_lead_digest"
}

func (j *LeadDigestJob) GetSchedule() gocron.JobDefinition {
	return gocron.DurationJob(j.interval)
}

func (j *LeadDigestJob) Execute() {
	ctx, cancel := context.WithTimeout(context.Background(), digestTimeout)
	defer cancel()

	cutoff := j.now().Add(-j.staleAfter)
	count, err := j.leads.CountStaleNew(ctx, cutoff)
	if err != nil {
		logger.Error("Lead digest failed: %v", err)
		return
	}
	if count == 0 {
		logger.Debug("Lead digest: no stale leads")
		return
	}

	logger.Info("Lead digest: %d NEW leads older than %s", count, j.staleAfter)
	j.notifier.Notify(notify.NewEvent(notify.EventLeadDigest, Digest{
		StaleNew:   count,
		OlderThan:  cutoff,
		StaleAfter: j.staleAfter.String(),
	}))
}
