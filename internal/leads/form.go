package leads

import (
	"github.com/beaconhouse/beacon/internal/domain"
	"github.com/beaconhouse/beacon/internal/ui"
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	h "maragu.dev/gomponents/html"
)

// FormPath is where the contact form is shown and submitted.
const FormPath = "/contact"

// ContactForm renders the evaluation request form with the submitted values
// and any field errors.
func ContactForm(values ContactRequest, errs FieldErrors) g.Node {
	return h.Div(
		h.ID("contact-form"),
		h.Class("contact-form"),
		h.H2(g.Text("Request an Evaluation")),
		h.P(g.Text("Tell us a little about your family and we will reach out within two business days.")),
		h.Form(
			h.Method("post"),
			h.Action(FormPath),
			hx.Post(FormPath),
			hx.Target("#contact-form"),
			hx.Swap("outerHTML"),
			field("name", "Parent name", "text", values.Name, errs),
			field("email", "Email", "email", values.Email, errs),
			field("phone", "Phone (optional)", "tel", values.Phone, errs),
			gradeField(values.Grade, errs),
			messageField(values.Message, errs),
			h.Button(h.Type("submit"), h.Class("btn btn-primary"), g.Text("Send Request")),
		),
	)
}

// Confirmation replaces the form once a lead has been accepted.
func Confirmation(lead domain.Lead) g.Node {
	return h.Div(
		h.ID("contact-form"),
		h.Class("contact-confirmation"),
		g.Attr("role", "status"),
		h.H2(ui.Emphasize("Thank you. Clarity starts now.", "Clarity")),
		h.P(g.Textf("We received your request, %s. A Beacon House advisor will contact you at %s.", lead.Name, lead.Email)),
		h.P(h.Class("reference"), g.Textf("Reference: %s", lead.ID)),
	)
}

func field(name, label, typ, value string, errs FieldErrors) g.Node {
	return h.Div(
		h.Class("field"),
		g.El("label", h.For(name), g.Text(label)),
		h.Input(
			h.ID(name),
			h.Name(name),
			h.Type(typ),
			h.Value(value),
			g.If(name != "phone", h.Required()),
			g.If(errs[name] != "", h.Aria("invalid", "true")),
		),
		fieldError(name, errs),
	)
}

func gradeField(selected string, errs FieldErrors) g.Node {
	options := g.Group{g.El("option", h.Value(""), g.Text("Current grade"))}
	for _, grade := range domain.Grades {
		options = append(options, g.El("option",
			h.Value(grade),
			g.If(grade == selected, h.Selected()),
			g.Textf("Grade %s", grade),
		))
	}
	return h.Div(
		h.Class("field"),
		g.El("label", h.For("grade"), g.Text("Grade")),
		g.El("select", h.ID("grade"), h.Name("grade"), h.Required(), options),
		fieldError("grade", errs),
	)
}

func messageField(value string, errs FieldErrors) g.Node {
	return h.Div(
		h.Class("field"),
		g.El("label", h.For("message"), g.Text("What would you like help with?")),
		g.El("textarea", h.ID("message"), h.Name("message"), g.Attr("rows", "4"), g.Text(value)),
		fieldError("message", errs),
	)
}

func fieldError(name string, errs FieldErrors) g.Node {
	msg, ok := errs[name]
	if !ok {
		return nil
	}
	return h.P(h.Class("field-error"), h.ID(name+"-error"), g.Text(msg))
}
