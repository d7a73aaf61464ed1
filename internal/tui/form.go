package tui

import (
	"strings"

	"github.com/bcdxn/vsa/internal/contact"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	fieldName = iota
	fieldEmail
	fieldSubject
	fieldMessage
	fieldCount
)

var fieldLabels = [fieldCount]string{"Nom", "Email", "Sujet", "Message"}

func newContactForm() contactForm {
	f := contactForm{}
	placeholders := [fieldMessage]string{"Votre nom", "vous@exemple.fr", "Objet de votre message"}
	for i := range f.inputs {
		in := textinput.New()
		in.Placeholder = placeholders[i]
		in.Prompt = ""
		in.CharLimit = 120
		f.inputs[i] = in
	}
	f.message = textarea.New()
	f.message.Placeholder = "Votre message"
	f.message.ShowLineNumbers = false
	f.message.SetHeight(3)
	return f
}

// contactForm is the terminal rendition of the site's contact form.
type contactForm struct {
	inputs  [fieldMessage]textinput.Model
	message textarea.Model
	focused int
	active  bool
}

func (f *contactForm) focusField(i int) tea.Cmd {
	i = (i%fieldCount + fieldCount) % fieldCount
	f.blur()
	f.focused = i
	f.active = true
	if i == fieldMessage {
		return f.message.Focus()
	}
	return f.inputs[i].Focus()
}

func (f *contactForm) blur() {
	for i := range f.inputs {
		f.inputs[i].Blur()
	}
	f.message.Blur()
	f.active = false
}

func (f contactForm) onMessage() bool {
	return f.focused == fieldMessage
}

func (f contactForm) update(msg tea.Msg) (contactForm, tea.Cmd) {
	var cmd tea.Cmd
	if f.onMessage() {
		f.message, cmd = f.message.Update(msg)
	} else {
		f.inputs[f.focused], cmd = f.inputs[f.focused].Update(msg)
	}
	return f, cmd
}

func (f contactForm) values() contact.Form {
	return contact.Form{
		Name:    strings.TrimSpace(f.inputs[fieldName].Value()),
		Email:   strings.TrimSpace(f.inputs[fieldEmail].Value()),
		Subject: strings.TrimSpace(f.inputs[fieldSubject].Value()),
		Message: strings.TrimSpace(f.message.Value()),
	}
}

func (f *contactForm) reset() {
	for i := range f.inputs {
		f.inputs[i].Reset()
	}
	f.message.Reset()
}

func (f contactForm) view(width int) string {
	var sb strings.Builder
	for i := range f.inputs {
		f.inputs[i].Width = max(10, width-14)
		sb.WriteString(s.FieldLabel.Render(fieldLabels[i]))
		sb.WriteString(" ")
		sb.WriteString(f.inputs[i].View())
		sb.WriteString("\n")
	}
	f.message.SetWidth(max(10, width-14))
	sb.WriteString(s.FieldLabel.Render(fieldLabels[fieldMessage]))
	sb.WriteString("\n")
	sb.WriteString(f.message.View())
	return sb.String()
}
