package template

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRender_LeadFieldWins(t *testing.T) {
	got := Render(
		[]string{"{{FirstName}}", "{{Email}}"},
		LeadView{FirstName: "Asha", Email: "asha@example.com"},
		map[string]string{"FirstName": "Buddy"},
	)
	assert.Equal(t, []string{"Asha", "asha@example.com"}, got)
}

func TestRender_FallbackWhenFieldEmpty(t *testing.T) {
	got := Render(
		[]string{"{{FirstName}}"},
		LeadView{FirstName: ""},
		map[string]string{"FirstName": "Buddy"},
	)
	assert.Equal(t, []string{"Buddy"}, got)
}

func TestRender_HardcodedDefaults(t *testing.T) {
	got := Render(
		[]string{"{{FirstName}}", "{{Email}}", "{{Phone}}", "{{Amount}}"},
		LeadView{},
		nil,
	)
	assert.Equal(t, []string{"User", "N/A", "", ""}, got)
}

func TestRender_UnknownTokenPassesThrough(t *testing.T) {
	got := Render([]string{"{{Unknown}}"}, LeadView{}, nil)
	assert.Equal(t, []string{"{{Unknown}}"}, got)
}

func TestRender_NonTokenParamUnchanged(t *testing.T) {
	got := Render([]string{"plain text", "{{FirstName"}, LeadView{}, nil)
	assert.Equal(t, []string{"plain text", "{{FirstName"}, got)
}

func TestRenderAt_DateDefault(t *testing.T) {
	now := time.Date(2025, time.March, 9, 10, 0, 0, 0, time.UTC)
	got := RenderAt([]string{"{{Date}}"}, LeadView{}, nil, now)
	assert.Equal(t, []string{"09 Mar 2025"}, got)
}

func TestRenderAt_DateFallbackBeatsDefault(t *testing.T) {
	now := time.Date(2025, time.March, 9, 10, 0, 0, 0, time.UTC)
	got := RenderAt([]string{"{{Date}}"}, LeadView{}, map[string]string{"Date": "tomorrow"}, now)
	assert.Equal(t, []string{"tomorrow"}, got)
}

func TestRender_FeedbackLinkFromFallback(t *testing.T) {
	got := Render(
		[]string{"{{FeedbackLink}}"},
		LeadView{},
		map[string]string{"FeedbackLink": "https://example.com/f/123"},
	)
	assert.Equal(t, []string{"https://example.com/f/123"}, got)
}

func TestRender_TokenWithInnerSpaces(t *testing.T) {
	got := Render([]string{"{{ FirstName }}"}, LeadView{FirstName: "Ravi"}, nil)
	assert.Equal(t, []string{"Ravi"}, got)
}
