package leads

import (
	"context"
	"fmt"
	"strings"

	"github.com/beaconhouse/beacon/internal/domain"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Notifier emails every published lead to the admissions inbox.
type Notifier struct {
	sender  domain.EmailSender
	inbox   string
	baseURL string
}

// NewNotifier creates a new Notifier. baseURL is the site's absolute origin,
// used for links in the email.
func NewNotifier(sender domain.EmailSender, inbox, baseURL string) *Notifier {
	return &Notifier{sender: sender, inbox: inbox, baseURL: strings.TrimRight(baseURL, "/")}
}

// Handle sends the notification for one lead.
func (n *Notifier) Handle(ctx context.Context, lead domain.Lead) error {
	var body strings.Builder
	if err := notificationBody(lead, n.baseURL).Render(&body); err != nil {
		return fmt.Errorf("render notification for lead %s: %w", lead.ID, err)
	}
	subject := fmt.Sprintf("New evaluation request from %s (grade %s)", lead.Name, lead.Grade)
	if err := n.sender.Send(ctx, n.inbox, subject, body.String()); err != nil {
		return fmt.Errorf("send notification for lead %s: %w", lead.ID, err)
	}
	return nil
}

func notificationBody(lead domain.Lead, baseURL string) g.Node {
	row := func(label, value string) g.Node {
		return h.Tr(h.Th(g.Text(label)), h.Td(g.Text(value)))
	}
	return h.Div(
		h.H1(g.Text("New evaluation request")),
		h.Table(
			row("Name", lead.Name),
			row("Email", lead.Email),
			g.If(lead.Phone != "", row("Phone", lead.Phone)),
			row("Grade", lead.Grade),
			row("Submitted", lead.SubmittedAt.Format("2006-01-02 15:04 MST")),
			row("Reference", lead.ID),
		),
		g.If(lead.Message != "", h.P(g.Text(lead.Message))),
		h.P(
			g.Text("Submitted through "),
			h.A(h.Href(baseURL+FormPath), g.Text(baseURL+FormPath)),
			g.Text("."),
		),
	)
}
