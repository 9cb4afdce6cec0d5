package pages

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/stayease/stayease/internal/api"
	"github.com/stayease/stayease/internal/domain"
	"github.com/stayease/stayease/internal/session"
)

// Notifications is the owner's inbox. Unlike the appointment and listing
// pages, mutations here patch the in-memory list instead of reloading, so a
// mark-read or delete is visible without a round trip for the whole page.
type Notifications struct {
	page
	api  *api.Client
	sess *session.Store

	notifications []domain.Notification
}

func NewNotifications(client *api.Client, sess *session.Store) *Notifications {
	return &Notifications{api: client, sess: sess}
}

func (p *Notifications) Load(ctx context.Context) error {
	user, ok := p.guard(p.sess, domain.RoleOwner, RouteHome)
	if !ok {
		return nil
	}

	notifications, err := p.api.NotificationsByUser(ctx, user.ID)
	p.commit(err, func() {
		p.notifications = notifications
	})
	return err
}

func (p *Notifications) Notifications() []domain.Notification {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.notifications
}

func (p *Notifications) UnreadCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	count := 0
	for _, n := range p.notifications {
		if !n.IsRead {
			count++
		}
	}
	return count
}

// MarkRead flips one notification locally after the backend accepts it.
func (p *Notifications) MarkRead(ctx context.Context, id int64) error {
	if err := p.api.MarkNotificationRead(ctx, id); err != nil {
		p.fail("Failed to mark notification as read")
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	for i := range p.notifications {
		if p.notifications[i].ID == id {
			p.notifications[i].IsRead = true
		}
	}
	return nil
}

// MarkAllRead issues one call per unread notification concurrently, then
// patches the whole list.
func (p *Notifications) MarkAllRead(ctx context.Context) error {
	p.mu.Lock()
	var unread []int64
	for _, n := range p.notifications {
		if !n.IsRead {
			unread = append(unread, n.ID)
		}
	}
	p.mu.Unlock()

	g, gctx := errgroup.WithContext(ctx)
	for _, id := range unread {
		id := id
		g.Go(func() error {
			return p.api.MarkNotificationRead(gctx, id)
		})
	}
	if err := g.Wait(); err != nil {
		p.fail("Failed to mark all as read")
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	for i := range p.notifications {
		p.notifications[i].IsRead = true
	}
	return nil
}

// Delete removes the notification from the local list once the backend
// confirms.
func (p *Notifications) Delete(ctx context.Context, id int64) error {
	if err := p.api.DeleteNotification(ctx, id); err != nil {
		p.fail("Failed to delete notification")
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	kept := p.notifications[:0]
	for _, n := range p.notifications {
		if n.ID != id {
			kept = append(kept, n)
		}
	}
	p.notifications = kept
	return nil
}
