package assistant

import (
	"strings"
	"testing"

	"atrisure/internal/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func modules(t *testing.T) []catalog.Module {
	t.Helper()
	c, err := catalog.Load()
	require.NoError(t, err)
	return c.Modules()
}

func TestReply_ModuleMatch(t *testing.T) {
	got := Reply("Analytics Pulse", modules(t))

	assert.True(t, strings.HasPrefix(got, "Here are the most relevant modules:\n"))
	assert.Contains(t, got, "• Analytics Pulse: Predictive dashboards for loss ratios, retention, and growth.")
	assert.True(t, strings.HasSuffix(got, "\nI can deep-link you into any module above."))
}

func TestReply_MatchesFeatureText(t *testing.T) {
	got := Reply("renewal", modules(t))
	assert.Contains(t, got, "• Policy Forge:")
}

func TestReply_CapsAtThreeModules(t *testing.T) {
	got := Reply("e", modules(t))
	assert.Equal(t, 3, strings.Count(got, "• "))
}

func TestReply_Keywords(t *testing.T) {
	tests := []struct {
		query string
		want  string
	}{
		{"How do I accelerate renewal workflows?", renewalText},
		{"Remind me of compliance deadlines next month", complianceText},
		{"my license expired yesterday", complianceText},
		{"Show analytics with rising loss ratios", analyticsText},
		{"quarterly report please", analyticsText},
		{"what is the weather tomorrow", fallbackText},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			assert.Equal(t, tt.want, Reply(tt.query, modules(t)))
		})
	}
}

func TestReply_KeywordOrder(t *testing.T) {
	// renewal is checked before compliance.
	assert.Equal(t, renewalText, Reply("renewal and compliance next quarter", nil))
}

func TestReply_NoModules(t *testing.T) {
	assert.Equal(t, fallbackText, Reply("anything", nil))
}

func TestRespond_Deterministic(t *testing.T) {
	mods := modules(t)
	a := Respond("Show analytics with rising loss ratios", mods)
	b := Respond("Show analytics with rising loss ratios", mods)

	assert.Equal(t, a.Content, b.Content)
	assert.Equal(t, RoleAssistant, a.Role)
	assert.NotEqual(t, a.ID, b.ID)
	assert.True(t, strings.HasPrefix(a.ID, "assistant-"))
}

func TestConversation(t *testing.T) {
	c := NewConversation()
	require.Equal(t, 1, c.Len())
	assert.Equal(t, RoleAssistant, c.Messages()[0].Role)

	_, ok := c.Ask("   ", modules(t))
	assert.False(t, ok)
	assert.Equal(t, 1, c.Len())

	reply, ok := c.Ask("  quarterly report please ", modules(t))
	require.True(t, ok)
	assert.Equal(t, analyticsText, reply.Content)

	msgs := c.Messages()
	require.Len(t, msgs, 3)
	assert.Equal(t, RoleUser, msgs[1].Role)
	assert.Equal(t, "quarterly report please", msgs[1].Content)
	assert.Equal(t, reply, msgs[2])
}

func TestCannedIntents(t *testing.T) {
	assert.Len(t, CannedIntents(), 4)
}
