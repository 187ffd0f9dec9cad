package notify

import (
	"context"
	"time"

	"gymdesk/internal/billing"
	"gymdesk/internal/gym"
	"gymdesk/internal/logger"
	"gymdesk/internal/member"
	"gymdesk/internal/metrics"
	"gymdesk/internal/owner"
)

// Notifier is the slice of the email service the scanner needs.
type Notifier interface {
	SendSubscriptionReminder(ctx context.Context, email, ownerName, gymName string, daysRemaining int) error
	SendMembershipReminder(ctx context.Context, email, memberName string, daysRemaining int) error
}

// Scanner periodically derives expiry status for every gym and member and
// queues reminder emails for the ones expiring soon. Each scan resolves
// against a single now snapshot.
type Scanner struct {
	notifier Notifier
	gyms     gym.Service
	members  member.Service
	owners   owner.Repository
	interval time.Duration
}

func NewScanner(notifier Notifier, gyms gym.Service, members member.Service, owners owner.Repository, interval time.Duration) *Scanner {
	if interval <= 0 {
		interval = 24 * time.Hour
	}
	return &Scanner{
		notifier: notifier,
		gyms:     gyms,
		members:  members,
		owners:   owners,
		interval: interval,
	}
}

func (s *Scanner) Run(ctx context.Context) {
	logger.Infof("Reminder scanner started, interval %s", s.interval)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.Scan(ctx, time.Now())
	for {
		select {
		case <-ctx.Done():
			logger.Info("Reminder scanner stopped")
			return
		case <-ticker.C:
			s.Scan(ctx, time.Now())
		}
	}
}

// Scan walks all gyms once. Failures on individual subjects are logged and
// skipped so one bad row never stalls the rest of the sweep.
func (s *Scanner) Scan(ctx context.Context, now time.Time) {
	gyms, err := s.gyms.ListGymsWithStatus(ctx, now)
	if err != nil {
		logger.Errorf("Reminder scan: failed to list gyms: %v", err)
		return
	}

	queued := 0
	for _, g := range gyms {
		if g.Status == billing.StatusExpiringSoon && g.DaysRemaining != nil {
			if s.remindOwner(ctx, g) {
				queued++
			}
		}
		queued += s.remindMembers(ctx, g.ID, now)
	}

	logger.Infof("Reminder scan complete: gyms=%d reminders=%d", len(gyms), queued)
}

func (s *Scanner) remindOwner(ctx context.Context, g gym.GymWithStatus) bool {
	o, err := s.owners.GetByID(ctx, g.OwnerID)
	if err != nil {
		logger.Errorf("Reminder scan: owner %d of gym %d not found: %v", g.OwnerID, g.ID, err)
		return false
	}

	if err := s.notifier.SendSubscriptionReminder(ctx, o.Email, o.Name, g.Name, *g.DaysRemaining); err != nil {
		return false
	}
	metrics.RecordReminderQueued("gym")
	return true
}

func (s *Scanner) remindMembers(ctx context.Context, gymID int, now time.Time) int {
	members, err := s.members.ListMembersWithStatus(ctx, gymID, now)
	if err != nil {
		logger.Errorf("Reminder scan: failed to list members of gym %d: %v", gymID, err)
		return 0
	}

	queued := 0
	for _, m := range members {
		if m.Status != billing.StatusExpiringSoon || m.DaysRemaining == nil || m.Email == "" {
			continue
		}
		if err := s.notifier.SendMembershipReminder(ctx, m.Email, m.Name, *m.DaysRemaining); err != nil {
			continue
		}
		metrics.RecordReminderQueued("member")
		queued++
	}
	return queued
}
