// Package assistant implements the concierge panel's canned responder.
//
// There is no model behind it: Respond matches the query against the module
// catalog and a few keywords and returns a fixed reply. Given the same inputs
// the reply content is always the same; only message ids differ.
package assistant

import (
	"fmt"
	"strings"

	"atrisure/internal/catalog"

	"github.com/google/uuid"
)

// Role is the author of a message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// maxMatches caps how many modules a match reply lists.
const maxMatches = 3

const (
	introText = "Hi! I am the AtriSure Concierge. Ask about policies, claims, compliance, analytics, or anything about your brokerage operations."

	renewalText    = "For renewals, combine Lifecycle Automation Tracks in Policy Forge with Workflow Studio playbooks. I can generate a draft checklist or schedule reminders for upcoming renewals."
	complianceText = "Compliance Archive keeps you audit ready. License Guardian surfaces expiring credentials, and Audit Control Tower builds regulator packets automatically."
	analyticsText  = "Analytics Pulse can generate predictive briefings. Pair it with Narrative Insights Generator for ready-to-send storyboards to clients."
	fallbackText   = "I did not find an exact module, but you can assemble a tailored workspace in the No-Code Studio. Try asking about policies, claims, carriers, or analytics."
)

// Message is one entry in the conversation.
type Message struct {
	ID      string
	Role    Role
	Content string
}

// NewMessage builds a message with a fresh id of the form "<role>-<uuid>".
func NewMessage(role Role, content string) Message {
	return Message{
		ID:      fmt.Sprintf("%s-%s", role, uuid.NewString()),
		Role:    role,
		Content: content,
	}
}

// CannedIntents are the prompt suggestions shown under the chat.
func CannedIntents() []string {
	return []string{
		"How do I accelerate renewal workflows?",
		"Show analytics with rising loss ratios",
		"Set up intake form for commercial fleet",
		"Remind me of compliance deadlines next month",
	}
}

// Reply picks the canned reply text for a query. Checks run in order: module
// matches, then renewal, compliance/license, analytics/report keywords, then a
// generic fallback.
func Reply(query string, modules []catalog.Module) string {
	lower := strings.ToLower(query)

	var lines []string
	for _, m := range modules {
		if len(lines) == maxMatches {
			break
		}
		if m.MatchesQuery(lower) {
			lines = append(lines, fmt.Sprintf("• %s: %s", m.Name, m.Tagline))
		}
	}
	if len(lines) > 0 {
		return "Here are the most relevant modules:\n" + strings.Join(lines, "\n") + "\nI can deep-link you into any module above."
	}

	switch {
	case strings.Contains(lower, "renewal"):
		return renewalText
	case strings.Contains(lower, "compliance"), strings.Contains(lower, "license"):
		return complianceText
	case strings.Contains(lower, "analytics"), strings.Contains(lower, "report"):
		return analyticsText
	default:
		return fallbackText
	}
}

// Respond wraps Reply in an assistant message.
func Respond(query string, modules []catalog.Module) Message {
	return NewMessage(RoleAssistant, Reply(query, modules))
}

// Conversation is the concierge panel's message history.
type Conversation struct {
	messages []Message
}

// NewConversation starts a conversation with the concierge greeting.
func NewConversation() *Conversation {
	return &Conversation{
		messages: []Message{{ID: "intro-1", Role: RoleAssistant, Content: introText}},
	}
}

// Ask records the user's question and the canned reply. Blank input is ignored.
func (c *Conversation) Ask(query string, modules []catalog.Module) (Message, bool) {
	q := strings.TrimSpace(query)
	if q == "" {
		return Message{}, false
	}
	reply := Respond(q, modules)
	c.messages = append(c.messages, NewMessage(RoleUser, q), reply)
	return reply, true
}

// Messages returns the history, oldest first.
func (c *Conversation) Messages() []Message {
	out := make([]Message, len(c.messages))
	copy(out, c.messages)
	return out
}

// Len returns the number of messages.
func (c *Conversation) Len() int {
	return len(c.messages)
}
