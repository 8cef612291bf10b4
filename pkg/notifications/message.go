// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package notifications

import (
	"bytes"
	"fmt"
	"text/template"
	"time"

	"github.com/canonical/tenant-access/internal/types"
)

type Message struct {
	To      string
	Subject string
	Text    string
}

type messageVars struct {
	AppName   string
	Days      int
	ExpiresAt string
	Source    types.PermissionSource
}

var (
	subjectTemplate = template.Must(template.New("subject").Parse(
		`Your {{.AppName}} access expires in {{.Days}} day{{if ne .Days 1}}s{{end}}`,
	))
	textTemplate = template.Must(template.New("text").Parse(`Hello,

Your access to {{.AppName}} expires on {{.ExpiresAt}}.
{{if eq .Source "group"}}It was granted through one of your groups.{{else}}It was granted to you directly.{{end}}

Ask an administrator of your workspace to extend it if you still need it.
`))
)

func render(to, appName string, n *types.ExpirationNotification) (*Message, error) {
	vars := messageVars{
		AppName:   appName,
		Days:      n.Details.DaysUntilExpiration,
		ExpiresAt: n.Details.ExpiresAt.UTC().Format(time.RFC1123),
		Source:    n.Details.PermissionSource,
	}

	var subject, text bytes.Buffer
	if err := subjectTemplate.Execute(&subject, vars); err != nil {
		return nil, fmt.Errorf("failed to render subject: %w", err)
	}
	if err := textTemplate.Execute(&text, vars); err != nil {
		return nil, fmt.Errorf("failed to render body: %w", err)
	}

	return &Message{To: to, Subject: subject.String(), Text: text.String()}, nil
}
