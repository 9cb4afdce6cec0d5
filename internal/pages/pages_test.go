package pages_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stayease/stayease/internal/api"
	"github.com/stayease/stayease/internal/devserver"
	"github.com/stayease/stayease/internal/domain"
	"github.com/stayease/stayease/internal/pages"
	"github.com/stayease/stayease/internal/session"
)

// harness runs the pages against the in-memory backend over real HTTP.
type harness struct {
	store  *devserver.Store
	client *api.Client
	sess   *session.Store

	broken atomic.Bool // force 500s to exercise error paths
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	h := &harness{store: devserver.NewStore()}
	routes := devserver.New(h.store, "stayease_jwt", time.Hour).Routes()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.broken.Load() {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		routes.ServeHTTP(w, r)
	}))
	t.Cleanup(srv.Close)

	jar, _ := session.OpenJar("")
	h.client = api.New(srv.URL, jar)
	h.sess = session.NewStore(jar, "stayease_jwt")
	h.sess.Restore()
	return h
}

func (h *harness) seedUser(t *testing.T, name, email string, role domain.Role) *domain.User {
	t.Helper()
	user, ok := h.store.CreateUser(name, email, "unused-hash", role)
	if !ok {
		t.Fatalf("seed user %s", email)
	}
	return user
}

func (h *harness) signIn(user *domain.User) {
	h.sess.Login(*user)
}

func (h *harness) seedListing(owner *domain.User, title, location string) *domain.Listing {
	return h.store.CreateListing(domain.Listing{
		Title:              title,
		Location:           location,
		AvailabilityStatus: domain.Available,
		Owner:              owner,
	})
}

// ---------- guard ----------

func TestGuardAnonymousRedirectsToSignIn(t *testing.T) {
	h := newHarness(t)

	page := pages.NewTenantDashboard(h.client, h.sess)
	if err := page.Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}

	if page.State() != pages.StateRedirecting {
		t.Errorf("state = %v, want redirecting", page.State())
	}
	if page.Redirect() != pages.RouteSignIn {
		t.Errorf("redirect = %q, want %q", page.Redirect(), pages.RouteSignIn)
	}
}

func TestGuardWrongRoleRedirects(t *testing.T) {
	h := newHarness(t)
	owner := h.seedUser(t, "Owen", "owen@example.com", domain.RoleOwner)
	h.signIn(owner)

	page := pages.NewTenantDashboard(h.client, h.sess)
	page.Load(context.Background())

	if page.Redirect() != pages.RouteOwnerDashboard {
		t.Errorf("redirect = %q, want the owner dashboard", page.Redirect())
	}
}

// A bounced page never loads, even if the session becomes valid afterwards.
func TestRedirectIsTerminal(t *testing.T) {
	h := newHarness(t)

	page := pages.NewTenantDashboard(h.client, h.sess)
	page.Load(context.Background())
	if page.Redirect() == "" {
		t.Fatal("expected a redirect")
	}

	tenant := h.seedUser(t, "Jane", "jane@example.com", domain.RoleTenant)
	h.signIn(tenant)
	page.Load(context.Background())

	if page.State() != pages.StateRedirecting {
		t.Errorf("state = %v after late sign-in, want still redirecting", page.State())
	}
}

func TestClosedPageDiscardsResults(t *testing.T) {
	h := newHarness(t)
	tenant := h.seedUser(t, "Jane", "jane@example.com", domain.RoleTenant)
	h.signIn(tenant)

	page := pages.NewTenantDashboard(h.client, h.sess)
	page.Close()
	page.Load(context.Background())

	if page.State() != pages.StateUninitialized {
		t.Errorf("state = %v after load on closed page", page.State())
	}
}

// ---------- tenant dashboard ----------

func TestTenantDashboardLoad(t *testing.T) {
	h := newHarness(t)
	tenant := h.seedUser(t, "Jane", "jane@example.com", domain.RoleTenant)
	owner := h.seedUser(t, "Owen", "owen@example.com", domain.RoleOwner)
	listing := h.seedListing(owner, "Canal View Flat", "Amsterdam")

	a, _ := h.store.CreateAppointment(tenant.ID, listing.ID, "2025-03-01T14:30:00")
	h.store.CreateAppointment(tenant.ID, listing.ID, "2025-03-02T10:00:00")
	h.store.UpdateAppointmentStatus(a.ID, "ACCEPTED")
	h.store.AddNotification(tenant.ID, "welcome")
	h.signIn(tenant)

	page := pages.NewTenantDashboard(h.client, h.sess)
	if err := page.Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}

	if page.State() != pages.StateReady {
		t.Fatalf("state = %v", page.State())
	}
	if got := len(page.Confirmed()); got != 1 {
		t.Errorf("Confirmed() = %d, want 1", got)
	}
	if got := len(page.Pending()); got != 1 {
		t.Errorf("Pending() = %d, want 1", got)
	}
	if got := page.UnreadCount(); got != 1 {
		t.Errorf("UnreadCount() = %d, want 1", got)
	}
}

// One failing call fails the batch, but already rendered data survives.
func TestStaleRenderOverBlank(t *testing.T) {
	h := newHarness(t)
	tenant := h.seedUser(t, "Jane", "jane@example.com", domain.RoleTenant)
	owner := h.seedUser(t, "Owen", "owen@example.com", domain.RoleOwner)
	listing := h.seedListing(owner, "Flat", "Berlin")
	h.store.CreateAppointment(tenant.ID, listing.ID, "2025-03-01T14:30:00")
	h.signIn(tenant)

	page := pages.NewTenantDashboard(h.client, h.sess)
	if err := page.Load(context.Background()); err != nil {
		t.Fatalf("first load: %v", err)
	}
	if len(page.Appointments()) != 1 {
		t.Fatal("first load produced no data")
	}

	h.broken.Store(true)
	if err := page.Load(context.Background()); err == nil {
		t.Fatal("expected the reload to fail")
	}

	if page.State() != pages.StateError {
		t.Errorf("state = %v, want error", page.State())
	}
	if page.Err() == "" {
		t.Error("error slot empty after failed reload")
	}
	if len(page.Appointments()) != 1 {
		t.Error("stale data was dropped on failure")
	}

	// A successful reload clears the error slot again.
	h.broken.Store(false)
	if err := page.Load(context.Background()); err != nil {
		t.Fatalf("recovery load: %v", err)
	}
	if page.Err() != "" {
		t.Errorf("Err() = %q after recovery", page.Err())
	}
}

// ---------- owner dashboard ----------

func TestOwnerDashboardAggregates(t *testing.T) {
	h := newHarness(t)
	owner := h.seedUser(t, "Owen", "owen@example.com", domain.RoleOwner)
	tenantA := h.seedUser(t, "A", "a@example.com", domain.RoleTenant)
	tenantB := h.seedUser(t, "B", "b@example.com", domain.RoleTenant)
	tenantC := h.seedUser(t, "C", "c@example.com", domain.RoleTenant)
	flat := h.seedListing(owner, "Flat", "Berlin")
	loft := h.seedListing(owner, "Loft", "Hamburg")

	a1, _ := h.store.CreateAppointment(tenantA.ID, flat.ID, "2025-03-01T14:30:00")
	a2, _ := h.store.CreateAppointment(tenantB.ID, flat.ID, "2025-03-02T10:00:00")
	h.store.CreateAppointment(tenantA.ID, loft.ID, "2025-03-03T09:00:00")
	h.store.UpdateAppointmentStatus(a1.ID, "ACCEPTED")
	h.store.UpdateAppointmentStatus(a2.ID, "ACCEPTED")

	h.store.CreateReview(tenantA.ID, flat.ID, 4, "good")
	h.store.CreateReview(tenantB.ID, flat.ID, 5, "great")
	h.store.CreateReview(tenantC.ID, flat.ID, 4, "solid")
	h.store.CreateReview(tenantA.ID, loft.ID, 3, "fine")
	h.store.CreateReview(tenantB.ID, loft.ID, 5, "cosy")
	h.store.AddNotification(owner.ID, "unread one")
	h.signIn(owner)

	page := pages.NewOwnerDashboard(h.client, h.sess)
	if err := page.Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}

	if got := len(page.Listings()); got != 2 {
		t.Errorf("Listings() = %d, want 2", got)
	}
	if got := len(page.Confirmed()); got != 2 {
		t.Errorf("Confirmed() = %d, want 2", got)
	}
	if got := len(page.Pending()); got != 1 {
		t.Errorf("Pending() = %d, want 1", got)
	}
	if got := len(page.Reviews()); got != 5 {
		t.Errorf("Reviews() = %d, want 5", got)
	}
	// (4+5+4+3+5)/5 = 4.2
	if got := page.AverageRating(); got != 4.2 {
		t.Errorf("AverageRating() = %v, want 4.2", got)
	}
	if got := page.UnreadCount(); got != 1 {
		t.Errorf("UnreadCount() = %d, want 1", got)
	}
}

func TestAverageRatingRoundsToOneDecimal(t *testing.T) {
	h := newHarness(t)
	owner := h.seedUser(t, "Owen", "owen@example.com", domain.RoleOwner)
	tenantA := h.seedUser(t, "A", "a@example.com", domain.RoleTenant)
	tenantB := h.seedUser(t, "B", "b@example.com", domain.RoleTenant)
	tenantC := h.seedUser(t, "C", "c@example.com", domain.RoleTenant)
	flat := h.seedListing(owner, "Flat", "Berlin")

	// (5+5+4)/3 = 4.666... -> 4.7
	h.store.CreateReview(tenantA.ID, flat.ID, 5, "")
	h.store.CreateReview(tenantB.ID, flat.ID, 5, "")
	h.store.CreateReview(tenantC.ID, flat.ID, 4, "")
	h.signIn(owner)

	page := pages.NewOwnerDashboard(h.client, h.sess)
	if err := page.Load(context.Background()); err != nil {
		t.Fatal(err)
	}
	if got := page.AverageRating(); got != 4.7 {
		t.Errorf("AverageRating() = %v, want 4.7", got)
	}
}

func TestOwnerConfirmReloadsDashboard(t *testing.T) {
	h := newHarness(t)
	owner := h.seedUser(t, "Owen", "owen@example.com", domain.RoleOwner)
	tenant := h.seedUser(t, "Jane", "jane@example.com", domain.RoleTenant)
	flat := h.seedListing(owner, "Flat", "Berlin")
	apt, _ := h.store.CreateAppointment(tenant.ID, flat.ID, "2025-03-01T14:30:00")
	h.signIn(owner)

	page := pages.NewOwnerDashboard(h.client, h.sess)
	if err := page.Load(context.Background()); err != nil {
		t.Fatal(err)
	}
	if len(page.Pending()) != 1 {
		t.Fatal("expected one pending request")
	}

	if err := page.UpdateAppointmentStatus(context.Background(), apt.ID, domain.StatusConfirmed); err != nil {
		t.Fatalf("UpdateAppointmentStatus: %v", err)
	}

	if got := len(page.Pending()); got != 0 {
		t.Errorf("Pending() = %d after confirm", got)
	}
	if got := len(page.Confirmed()); got != 1 {
		t.Errorf("Confirmed() = %d after confirm", got)
	}
}

// ---------- reviews ----------

func TestReviewEligibility(t *testing.T) {
	h := newHarness(t)
	owner := h.seedUser(t, "Owen", "owen@example.com", domain.RoleOwner)
	tenant := h.seedUser(t, "Jane", "jane@example.com", domain.RoleTenant)
	flat := h.seedListing(owner, "Flat", "Berlin")
	loft := h.seedListing(owner, "Loft", "Hamburg")

	confirmed, _ := h.store.CreateAppointment(tenant.ID, flat.ID, "2025-03-01T14:30:00")
	h.store.UpdateAppointmentStatus(confirmed.ID, "ACCEPTED")
	h.store.CreateAppointment(tenant.ID, loft.ID, "2025-03-02T10:00:00") // still pending
	h.signIn(tenant)

	page := pages.NewTenantReviews(h.client, h.sess)
	if err := page.Load(context.Background()); err != nil {
		t.Fatal(err)
	}

	eligible := page.Eligible()
	if len(eligible) != 1 || eligible[0].Listing.ID != flat.ID {
		t.Fatalf("eligible = %+v, want only the confirmed flat visit", eligible)
	}

	// Submitting the review makes the listing drop out of the eligible set.
	if err := page.Submit(context.Background(), flat.ID, 5, "lovely"); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if got := len(page.Eligible()); got != 0 {
		t.Errorf("Eligible() = %d after submitting", got)
	}
	if got := len(page.Reviews()); got != 1 {
		t.Errorf("Reviews() = %d after submitting", got)
	}
}

func TestDuplicateReviewSurfacesError(t *testing.T) {
	h := newHarness(t)
	owner := h.seedUser(t, "Owen", "owen@example.com", domain.RoleOwner)
	tenant := h.seedUser(t, "Jane", "jane@example.com", domain.RoleTenant)
	flat := h.seedListing(owner, "Flat", "Berlin")
	h.store.CreateReview(tenant.ID, flat.ID, 4, "already there")
	h.signIn(tenant)

	page := pages.NewTenantReviews(h.client, h.sess)
	if err := page.Load(context.Background()); err != nil {
		t.Fatal(err)
	}
	err := page.Submit(context.Background(), flat.ID, 5, "again")
	if err == nil {
		t.Fatal("expected duplicate review to fail")
	}
	if page.Err() != "Review already exists" {
		t.Errorf("Err() = %q", page.Err())
	}
}

// ---------- tenant appointments ----------

func TestAppointmentTabs(t *testing.T) {
	h := newHarness(t)
	owner := h.seedUser(t, "Owen", "owen@example.com", domain.RoleOwner)
	tenant := h.seedUser(t, "Jane", "jane@example.com", domain.RoleTenant)
	flat := h.seedListing(owner, "Flat", "Berlin")

	a, _ := h.store.CreateAppointment(tenant.ID, flat.ID, "2025-03-01T14:30:00")
	b, _ := h.store.CreateAppointment(tenant.ID, flat.ID, "2025-03-02T10:00:00")
	h.store.CreateAppointment(tenant.ID, flat.ID, "2025-03-03T09:00:00")
	h.store.UpdateAppointmentStatus(a.ID, "ACCEPTED")
	h.store.UpdateAppointmentStatus(b.ID, "REJECTED")
	h.signIn(tenant)

	page := pages.NewTenantAppointments(h.client, h.sess)
	if err := page.Load(context.Background()); err != nil {
		t.Fatal(err)
	}

	tabs := map[string]int{
		"all":       3,
		"":          3,
		"pending":   1,
		"confirmed": 1,
		"cancelled": 1,
	}
	for tab, want := range tabs {
		if got := len(page.Tab(tab)); got != want {
			t.Errorf("Tab(%q) = %d, want %d", tab, got, want)
		}
	}
}

// ---------- booking ----------

func TestBookAppointmentMissingListingRedirects(t *testing.T) {
	h := newHarness(t)
	tenant := h.seedUser(t, "Jane", "jane@example.com", domain.RoleTenant)
	h.signIn(tenant)

	page := pages.NewBookAppointment(h.client, h.sess, 0)
	page.Load(context.Background())

	if page.Redirect() != pages.RouteTenantListings {
		t.Errorf("redirect = %q, want the listings route", page.Redirect())
	}
}

func TestBookAppointmentUnknownListing(t *testing.T) {
	h := newHarness(t)
	tenant := h.seedUser(t, "Jane", "jane@example.com", domain.RoleTenant)
	h.signIn(tenant)

	page := pages.NewBookAppointment(h.client, h.sess, 99)
	if err := page.Load(context.Background()); err == nil {
		t.Fatal("expected unknown listing to fail the load")
	}
	if page.Err() != "Listing not found" {
		t.Errorf("Err() = %q", page.Err())
	}
}

func TestBookAppointmentSubmit(t *testing.T) {
	h := newHarness(t)
	owner := h.seedUser(t, "Owen", "owen@example.com", domain.RoleOwner)
	tenant := h.seedUser(t, "Jane", "jane@example.com", domain.RoleTenant)
	flat := h.seedListing(owner, "Flat", "Berlin")
	h.signIn(tenant)

	page := pages.NewBookAppointment(h.client, h.sess, flat.ID)
	if err := page.Load(context.Background()); err != nil {
		t.Fatal(err)
	}
	if page.Listing() == nil || page.Listing().ID != flat.ID {
		t.Fatal("listing not resolved")
	}

	if _, err := page.Submit(context.Background(), "", "14:30"); err == nil {
		t.Error("expected empty date to be rejected")
	}

	apt, err := page.Submit(context.Background(), "2025-03-01", "14:30")
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if apt.AppointmentTime != "2025-03-01T14:30:00" {
		t.Errorf("appointmentTime = %q", apt.AppointmentTime)
	}
	if domain.NormalizeStatus(apt.Status) != domain.StatusPending {
		t.Errorf("status = %q", apt.Status)
	}
}

// ---------- notifications ----------

func TestNotificationsPatchLocally(t *testing.T) {
	h := newHarness(t)
	owner := h.seedUser(t, "Owen", "owen@example.com", domain.RoleOwner)
	h.store.AddNotification(owner.ID, "first")
	h.store.AddNotification(owner.ID, "second")
	h.store.AddNotification(owner.ID, "third")
	h.signIn(owner)

	page := pages.NewNotifications(h.client, h.sess)
	if err := page.Load(context.Background()); err != nil {
		t.Fatal(err)
	}
	if got := page.UnreadCount(); got != 3 {
		t.Fatalf("UnreadCount() = %d", got)
	}

	first := page.Notifications()[0]
	if err := page.MarkRead(context.Background(), first.ID); err != nil {
		t.Fatal(err)
	}
	if got := page.UnreadCount(); got != 2 {
		t.Errorf("UnreadCount() = %d after MarkRead", got)
	}

	if err := page.MarkAllRead(context.Background()); err != nil {
		t.Fatal(err)
	}
	if got := page.UnreadCount(); got != 0 {
		t.Errorf("UnreadCount() = %d after MarkAllRead", got)
	}

	second := page.Notifications()[1]
	if err := page.Delete(context.Background(), second.ID); err != nil {
		t.Fatal(err)
	}
	if got := len(page.Notifications()); got != 2 {
		t.Errorf("Notifications() = %d after Delete", got)
	}
	for _, n := range page.Notifications() {
		if n.ID == second.ID {
			t.Error("deleted notification still listed")
		}
	}
}

// ---------- owner listings ----------

func TestOwnerCreateListingReloads(t *testing.T) {
	h := newHarness(t)
	owner := h.seedUser(t, "Owen", "owen@example.com", domain.RoleOwner)
	other := h.seedUser(t, "Olga", "olga@example.com", domain.RoleOwner)
	h.seedListing(other, "Not Mine", "Paris")
	h.signIn(owner)

	page := pages.NewOwnerListings(h.client, h.sess)
	if err := page.Load(context.Background()); err != nil {
		t.Fatal(err)
	}
	if got := len(page.Listings()); got != 0 {
		t.Fatalf("portfolio = %d before creating", got)
	}

	err := page.Create(context.Background(), api.CreateListingRequest{
		Title:              "Canal View Flat",
		Location:           "Amsterdam",
		AvailabilityStatus: domain.Available,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	got := page.Listings()
	if len(got) != 1 || got[0].Title != "Canal View Flat" {
		t.Errorf("portfolio after create = %+v", got)
	}
	if got[0].Owner == nil || got[0].Owner.ID != owner.ID {
		t.Error("created listing not attributed to the signed-in owner")
	}
}
