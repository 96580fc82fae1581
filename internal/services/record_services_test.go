package services

import (
	"context"
	"testing"
	"time"

	"github.com/ahmetcoskunkizilkaya/safeher-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/safeher-backend/internal/models"
	"github.com/ahmetcoskunkizilkaya/safeher-backend/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestContactLifecycle(t *testing.T) {
	db := testutil.NewDB(t)
	svc := NewContactService(db)
	ctx := context.Background()

	base := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	tick := 0
	svc.now = func() time.Time { tick++; return base.Add(time.Duration(tick) * time.Second) }

	mom, err := svc.Create(ctx, "user_a", &dto.CreateContactRequest{Name: ptr("Mom"), Relationship: ptr("mother"), Phone: ptr("+911"), IsPrimary: true})
	require.NoError(t, err)
	assert.Regexp(t, `^contact_[0-9a-f]{12}$`, mom.ContactID)

	sis, err := svc.Create(ctx, "user_a", &dto.CreateContactRequest{Name: ptr("Sis"), Relationship: ptr("sister"), Phone: ptr("+912"), Email: ptr("sis@example.com")})
	require.NoError(t, err)

	list, err := svc.List(ctx, "user_a")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, mom.ContactID, list[0].ContactID)
	assert.Equal(t, sis.ContactID, list[1].ContactID)
	assert.True(t, list[0].IsPrimary)
	assert.False(t, list[1].IsPrimary)

	require.NoError(t, svc.Delete(ctx, "user_a", mom.ContactID))
	list, err = svc.List(ctx, "user_a")
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestContactListEmpty(t *testing.T) {
	svc := NewContactService(testutil.NewDB(t))

	list, err := svc.List(context.Background(), "user_none")
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestContactDeleteByOtherOwner(t *testing.T) {
	svc := NewContactService(testutil.NewDB(t))
	ctx := context.Background()

	c, err := svc.Create(ctx, "user_a", &dto.CreateContactRequest{Name: ptr("Mom"), Relationship: ptr("mother"), Phone: ptr("+911")})
	require.NoError(t, err)

	assert.ErrorIs(t, svc.Delete(ctx, "user_b", c.ContactID), ErrContactNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, "user_a", "contact_missing000"), ErrContactNotFound)

	list, _ := svc.List(ctx, "user_a")
	assert.Len(t, list, 1)
}

func TestContactCreateRequiresFields(t *testing.T) {
	svc := NewContactService(testutil.NewDB(t))

	_, err := svc.Create(context.Background(), "user_a", &dto.CreateContactRequest{Name: ptr("Mom"), Relationship: ptr("mother")})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "phone", verr.Field)
}

func TestContactCreateAcceptsBlankValues(t *testing.T) {
	svc := NewContactService(testutil.NewDB(t))

	c, err := svc.Create(context.Background(), "user_a", &dto.CreateContactRequest{Name: ptr(" "), Relationship: ptr(""), Phone: ptr("  ")})
	require.NoError(t, err)
	assert.Equal(t, " ", c.Name)
	assert.Equal(t, "", c.Relationship)
}

func TestSubmitReportRequiresDescription(t *testing.T) {
	svc := NewReportService(testutil.NewDB(t))

	_, err := svc.Submit(context.Background(), "user_a", &dto.SubmitReportRequest{
		Type:     ptr("harassment"),
		Severity: ptr(2),
		Location: &models.Location{},
	})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "description", verr.Field)
}

func TestTriggerWithoutContacts(t *testing.T) {
	svc := NewAlertService(testutil.NewDB(t))

	alert, err := svc.Trigger(context.Background(), "user_a", &dto.TriggerEmergencyRequest{
		Location: &models.Location{Latitude: 28.6, Longitude: 77.2},
	})
	require.NoError(t, err)
	assert.Equal(t, "manual", alert.Type)
	assert.Equal(t, models.AlertStatusActive, alert.Status)
	assert.NotNil(t, alert.ContactsNotified)
	assert.Empty(t, alert.ContactsNotified)
	assert.Nil(t, alert.ResolvedAt)
}

func TestTriggerSnapshotsContacts(t *testing.T) {
	db := testutil.NewDB(t)
	contacts := NewContactService(db)
	alerts := NewAlertService(db)
	ctx := context.Background()

	c1, err := contacts.Create(ctx, "user_a", &dto.CreateContactRequest{Name: ptr("A"), Relationship: ptr("friend"), Phone: ptr("1")})
	require.NoError(t, err)
	_, err = contacts.Create(ctx, "user_b", &dto.CreateContactRequest{Name: ptr("B"), Relationship: ptr("friend"), Phone: ptr("2")})
	require.NoError(t, err)

	alert, err := alerts.Trigger(ctx, "user_a", &dto.TriggerEmergencyRequest{
		Type:     "shake",
		Location: &models.Location{Latitude: 1, Longitude: 2},
		Evidence: []string{"audio_1"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{c1.ContactID}, alert.ContactsNotified)

	// deleting the contact later does not rewrite the snapshot
	require.NoError(t, contacts.Delete(ctx, "user_a", c1.ContactID))
	active, err := alerts.Active(ctx, "user_a")
	require.NoError(t, err)
	require.NotNil(t, active)
	assert.Equal(t, []string{c1.ContactID}, active.ContactsNotified)
	assert.Equal(t, []string{"audio_1"}, active.Evidence)
	assert.Equal(t, "shake", active.Type)
}

func TestActiveReturnsMostRecent(t *testing.T) {
	svc := NewAlertService(testutil.NewDB(t))
	ctx := context.Background()
	loc := &models.Location{Latitude: 1, Longitude: 1}

	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return base }
	_, err := svc.Trigger(ctx, "user_a", &dto.TriggerEmergencyRequest{Location: loc})
	require.NoError(t, err)

	svc.now = func() time.Time { return base.Add(time.Hour) }
	newer, err := svc.Trigger(ctx, "user_a", &dto.TriggerEmergencyRequest{Location: loc})
	require.NoError(t, err)

	active, err := svc.Active(ctx, "user_a")
	require.NoError(t, err)
	require.NotNil(t, active)
	assert.Equal(t, newer.AlertID, active.AlertID)

	none, err := svc.Active(ctx, "user_b")
	require.NoError(t, err)
	assert.Nil(t, none)
}

func TestResolveAlert(t *testing.T) {
	svc := NewAlertService(testutil.NewDB(t))
	ctx := context.Background()

	alert, err := svc.Trigger(ctx, "user_a", &dto.TriggerEmergencyRequest{Location: &models.Location{}})
	require.NoError(t, err)

	assert.ErrorIs(t, svc.Resolve(ctx, "user_b", alert.AlertID), ErrAlertNotFound)
	assert.ErrorIs(t, svc.Resolve(ctx, "user_a", "alert_doesnotexist"), ErrAlertNotFound)

	require.NoError(t, svc.Resolve(ctx, "user_a", alert.AlertID))

	// already resolved
	assert.ErrorIs(t, svc.Resolve(ctx, "user_a", alert.AlertID), ErrAlertNotFound)

	active, err := svc.Active(ctx, "user_a")
	require.NoError(t, err)
	assert.Nil(t, active)
}

func TestTriggerRequiresLocation(t *testing.T) {
	svc := NewAlertService(testutil.NewDB(t))

	_, err := svc.Trigger(context.Background(), "user_a", &dto.TriggerEmergencyRequest{})
	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestSubmitAnonymousReport(t *testing.T) {
	svc := NewReportService(testutil.NewDB(t))
	ctx := context.Background()

	report, err := svc.Submit(ctx, "user_a", &dto.SubmitReportRequest{
		Type:        ptr("harassment"),
		Severity:    ptr(3),
		Location:    &models.Location{Latitude: 28.6, Longitude: 77.2},
		Description: ptr("followed near metro"),
	})
	require.NoError(t, err)
	assert.True(t, report.Anonymous)
	assert.Nil(t, report.UserID)
	assert.Equal(t, models.ReportStatusPending, report.Status)

	named, err := svc.Submit(ctx, "user_a", &dto.SubmitReportRequest{
		Type:        ptr("poor_lighting"),
		Severity:    ptr(1),
		Location:    &models.Location{},
		Description: ptr(""),
		Anonymous:   ptr(false),
	})
	require.NoError(t, err)
	require.NotNil(t, named.UserID)
	assert.Equal(t, "user_a", *named.UserID)

	list, err := svc.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, list, 2)
	for _, r := range list {
		if r.ReportID == report.ReportID {
			assert.Nil(t, r.UserID)
		}
	}
}

func TestListReportsNewestFirst(t *testing.T) {
	svc := NewReportService(testutil.NewDB(t))
	ctx := context.Background()
	base := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)

	var ids []string
	for i := 0; i < 3; i++ {
		offset := time.Duration(i) * time.Minute
		svc.now = func() time.Time { return base.Add(offset) }
		r, err := svc.Submit(ctx, "user_a", &dto.SubmitReportRequest{Type: ptr("t"), Severity: ptr(i), Location: &models.Location{}, Description: ptr("")})
		require.NoError(t, err)
		ids = append(ids, r.ReportID)
	}

	list, err := svc.List(ctx, 2)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, ids[2], list[0].ReportID)
	assert.Equal(t, ids[1], list[1].ReportID)
}

func TestParseLimit(t *testing.T) {
	assert.Equal(t, 50, ParseLimit(""))
	assert.Equal(t, 50, ParseLimit("abc"))
	assert.Equal(t, 50, ParseLimit("0"))
	assert.Equal(t, 50, ParseLimit("-4"))
	assert.Equal(t, 7, ParseLimit("7"))
}

func TestFakeCall(t *testing.T) {
	now := time.Date(2025, 1, 1, 20, 0, 0, 0, time.UTC)

	call := FakeCall("", "Priya Sharma", now)
	assert.Equal(t, "Mom", call.Caller)
	assert.Equal(t, "Hey Priya, just checking when you'll be home?", call.Message)
	assert.Equal(t, 45, call.Duration)
	assert.Equal(t, "2025-01-01T20:00:00Z", call.Timestamp)

	call = FakeCall("Boss", "   ", now)
	assert.Equal(t, "Boss", call.Caller)
	assert.Equal(t, "Hey there, just checking when you'll be home?", call.Message)
}
