package notify

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leadrouter/crm-backend/ent"
	entactivity "github.com/leadrouter/crm-backend/ent/activity"
	"github.com/leadrouter/crm-backend/ent/enttest"
	entlead "github.com/leadrouter/crm-backend/ent/lead"
	"github.com/leadrouter/crm-backend/pkg/rules"

	_ "github.com/mattn/go-sqlite3"
)

type recordedSend struct {
	phone    string
	campaign string
	source   string
	params   []string
}

type fakeGateway struct {
	sends  []recordedSend
	result *SendResult
	err    error
}

func (g *fakeGateway) Send(_ context.Context, phone, campaignName, sourceLabel string, params []string) (*SendResult, error) {
	g.sends = append(g.sends, recordedSend{phone: phone, campaign: campaignName, source: sourceLabel, params: params})
	if g.err != nil {
		return nil, g.err
	}
	if g.result != nil {
		return g.result, nil
	}
	return &SendResult{Success: true, StatusCode: 200, RawResponse: `{"ok":true}`}, nil
}

type notifyFixture struct {
	client  *ent.Client
	gateway *fakeGateway
	n       *Notifier
	ws      *ent.Workspace
	lead    *ent.Lead
}

func setup(t *testing.T) *notifyFixture {
	client := enttest.Open(t, "sqlite3", "file:"+t.Name()+"?mode=memory&_fk=1")
	ctx := context.Background()

	ws, err := client.Workspace.Create().
		SetName("Acme Coaching").
		SetWebhookSecret("shh").
		Save(ctx)
	require.NoError(t, err)

	lead, err := client.Lead.Create().
		SetWorkspaceID(ws.ID).
		SetFirstName("Ravi").
		SetPhone("9876543210").
		SetEmail("ravi@example.com").
		SetSource("FACEBOOK").
		SetStatus(entlead.StatusQualified).
		SetCourseInterested("Golang Basics").
		Save(ctx)
	require.NoError(t, err)

	gateway := &fakeGateway{}
	n := NewNotifier(client, rules.NewStore(client, nil), gateway, nil, "91", time.Second)

	return &notifyFixture{client: client, gateway: gateway, n: n, ws: ws, lead: lead}
}

func createTrigger(t *testing.T, fx *notifyFixture, status string, opts ...func(*ent.WhatsAppTriggerCreate)) *ent.WhatsAppTrigger {
	t.Helper()
	c := fx.client.WhatsAppTrigger.Create().
		SetWorkspaceID(fx.ws.ID).
		SetStatus(status).
		SetCampaignName("qualified_followup")
	for _, opt := range opts {
		opt(c)
	}
	trigger, err := c.Save(context.Background())
	require.NoError(t, err)
	return trigger
}

func leadActivities(t *testing.T, fx *notifyFixture) []*ent.Activity {
	t.Helper()
	activities, err := fx.client.Activity.Query().
		Where(entactivity.LeadIDEQ(fx.lead.ID)).
		All(context.Background())
	require.NoError(t, err)
	return activities
}

func TestNotifyStatusChange_NoTriggerIsNoop(t *testing.T) {
	fx := setup(t)
	defer fx.client.Close()

	fx.n.NotifyStatusChange(context.Background(), fx.ws.ID, fx.lead.ID, "qualified")

	assert.Empty(t, fx.gateway.sends)
	assert.Empty(t, leadActivities(t, fx))
}

func TestNotifyStatusChange_SuccessfulDispatch(t *testing.T) {
	fx := setup(t)
	defer fx.client.Close()
	createTrigger(t, fx, "qualified", func(c *ent.WhatsAppTriggerCreate) {
		c.SetTemplateParams(`["{{FirstName}}", "{{CourseInterested}}", "{{FeedbackLink}}"]`)
		c.SetParamsFallback(`{"FeedbackLink": "https://acme.test/feedback"}`)
	})

	fx.n.NotifyStatusChange(context.Background(), fx.ws.ID, fx.lead.ID, "qualified")

	require.Len(t, fx.gateway.sends, 1)
	sent := fx.gateway.sends[0]
	assert.Equal(t, "919876543210", sent.phone, "10-digit numbers get the default country code")
	assert.Equal(t, "qualified_followup", sent.campaign)
	assert.Equal(t, []string{"Ravi", "Golang Basics", "https://acme.test/feedback"}, sent.params)

	activities := leadActivities(t, fx)
	require.Len(t, activities, 1, "exactly one activity per dispatch")
	assert.Equal(t, entactivity.TypeWhatsapp, activities[0].Type)
	assert.Contains(t, activities[0].Subject, "WhatsApp sent")
}

func TestNotifyStatusChange_ProviderRejection(t *testing.T) {
	fx := setup(t)
	defer fx.client.Close()
	createTrigger(t, fx, "qualified")
	fx.gateway.result = &SendResult{Success: false, StatusCode: 402, RawResponse: `{"error":"out of credits"}`}

	fx.n.NotifyStatusChange(context.Background(), fx.ws.ID, fx.lead.ID, "qualified")

	activities := leadActivities(t, fx)
	require.Len(t, activities, 1)
	assert.Contains(t, activities[0].Subject, "WhatsApp failed")
	assert.Contains(t, activities[0].Description, "402")
	assert.Contains(t, activities[0].Description, "out of credits")
}

func TestNotifyStatusChange_TransportError(t *testing.T) {
	fx := setup(t)
	defer fx.client.Close()
	createTrigger(t, fx, "qualified")
	fx.gateway.err = errors.New("connection refused")

	fx.n.NotifyStatusChange(context.Background(), fx.ws.ID, fx.lead.ID, "qualified")

	activities := leadActivities(t, fx)
	require.Len(t, activities, 1)
	assert.Contains(t, activities[0].Subject, "WhatsApp failed")
	assert.Contains(t, activities[0].Description, "connection refused")
}

func TestNotifyStatusChange_MalformedConfigDegrades(t *testing.T) {
	fx := setup(t)
	defer fx.client.Close()
	createTrigger(t, fx, "qualified", func(c *ent.WhatsAppTriggerCreate) {
		c.SetTemplateParams(`{"not":"a list"`)
		c.SetParamsFallback(`broken`)
	})

	fx.n.NotifyStatusChange(context.Background(), fx.ws.ID, fx.lead.ID, "qualified")

	require.Len(t, fx.gateway.sends, 1, "bad template config still dispatches")
	assert.Empty(t, fx.gateway.sends[0].params)
	require.Len(t, leadActivities(t, fx), 1)
}

func TestNotifyStatusChange_LongNumberPassesThrough(t *testing.T) {
	fx := setup(t)
	defer fx.client.Close()
	ctx := context.Background()

	_, err := fx.client.Lead.UpdateOneID(fx.lead.ID).SetPhone("+919876543210").Save(ctx)
	require.NoError(t, err)
	createTrigger(t, fx, "qualified")

	fx.n.NotifyStatusChange(ctx, fx.ws.ID, fx.lead.ID, "qualified")

	require.Len(t, fx.gateway.sends, 1)
	assert.Equal(t, "919876543210", fx.gateway.sends[0].phone)
}

func TestNotifyStatusChange_WorkspaceCountryCodeWins(t *testing.T) {
	fx := setup(t)
	defer fx.client.Close()
	ctx := context.Background()

	// The notifier is wired with "91"; the workspace is configured for
	// the UAE and its code must take precedence on 10-digit numbers.
	_, err := fx.client.Workspace.UpdateOneID(fx.ws.ID).
		SetDefaultCountryCode("971").
		Save(ctx)
	require.NoError(t, err)
	createTrigger(t, fx, "qualified")

	fx.n.NotifyStatusChange(ctx, fx.ws.ID, fx.lead.ID, "qualified")

	require.Len(t, fx.gateway.sends, 1)
	assert.Equal(t, "9719876543210", fx.gateway.sends[0].phone)
}

func TestNotifyStatusChange_DigitlessPhoneRecordsFailure(t *testing.T) {
	fx := setup(t)
	defer fx.client.Close()
	ctx := context.Background()

	_, err := fx.client.Lead.UpdateOneID(fx.lead.ID).SetPhone("n/a").Save(ctx)
	require.NoError(t, err)
	createTrigger(t, fx, "qualified")

	fx.n.NotifyStatusChange(ctx, fx.ws.ID, fx.lead.ID, "qualified")

	assert.Empty(t, fx.gateway.sends, "nothing to address, no provider call")
	activities := leadActivities(t, fx)
	require.Len(t, activities, 1)
	assert.Contains(t, activities[0].Subject, "WhatsApp failed")
	assert.Contains(t, activities[0].Description, "no dispatchable phone")
}

func TestNotifyStatusChange_MissingLead(t *testing.T) {
	fx := setup(t)
	defer fx.client.Close()
	createTrigger(t, fx, "qualified")

	fx.n.NotifyStatusChange(context.Background(), fx.ws.ID, fx.lead.ID+999, "qualified")

	assert.Empty(t, fx.gateway.sends)
}
