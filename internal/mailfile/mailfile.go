// Package mailfile turns email files into the plain text handed to the
// prompt builder.
package mailfile

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jhillyerd/enmime"
)

// Message is the part of an email that gets rewritten.
type Message struct {
	Subject string
	Body    string
}

// Text is the email as the model sees it: the body, preceded by a subject
// line when there is one.
func (m Message) Text() string {
	if m.Subject == "" {
		return m.Body
	}
	return "Subject: " + m.Subject + "\n\n" + m.Body
}

// ReadFile loads the email at path.
func ReadFile(path string) (Message, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Message{}, fmt.Errorf("reading %s: %w", path, err)
	}
	return Parse(path, data)
}

// Parse decodes data. RFC 5322 messages (.eml) are parsed as MIME and their
// text body taken, converting HTML-only bodies to text. Anything else is
// treated as plain text and converted to UTF-8 when it is not already.
func Parse(name string, data []byte) (Message, error) {
	if !strings.EqualFold(filepath.Ext(name), ".eml") {
		return Message{Body: EnsureUTF8(string(data))}, nil
	}

	env, err := enmime.ReadEnvelope(bytes.NewReader(data))
	if err != nil {
		return Message{}, fmt.Errorf("parsing %s: %w", name, err)
	}
	for _, perr := range env.Errors {
		if perr.Severe {
			return Message{}, fmt.Errorf("parsing %s: %s", name, perr.Error())
		}
	}

	body := strings.TrimRight(env.Text, "\r\n")
	if body != "" {
		body += "\n"
	}
	return Message{Subject: env.GetHeader("Subject"), Body: body}, nil
}
