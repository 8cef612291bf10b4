// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package notifications

import (
	"context"
	"crypto/tls"
	"fmt"

	"github.com/go-mail/mail"

	"github.com/canonical/tenant-access/internal/logging"
)

type SMTPConfig struct {
	Host               string
	Port               int
	User               string
	Password           string
	From               string
	InsecureSkipVerify bool
}

// SMTPSender delivers messages through an SMTP relay, negotiating STARTTLS when offered.
type SMTPSender struct {
	cfg    SMTPConfig
	dialer *mail.Dialer

	logger logging.LoggerInterface
}

func (s *SMTPSender) Send(ctx context.Context, msg *Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m := mail.NewMessage()
	m.SetHeader("From", s.cfg.From)
	m.SetHeader("To", msg.To)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/plain", msg.Text)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}

	s.logger.Debugf("sent %q to %s", msg.Subject, msg.To)

	return nil
}

func NewSMTPSender(cfg SMTPConfig, logger logging.LoggerInterface) *SMTPSender {
	d := mail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password)
	d.TLSConfig = &tls.Config{
		ServerName:         cfg.Host,
		InsecureSkipVerify: cfg.InsecureSkipVerify, //nolint:gosec
	}

	return &SMTPSender{cfg: cfg, dialer: d, logger: logger}
}

// LogSender writes messages to the log, used when no SMTP relay is configured.
type LogSender struct {
	logger logging.LoggerInterface
}

func (s *LogSender) Send(_ context.Context, msg *Message) error {
	s.logger.Infof("expiration notification to %s: %s", msg.To, msg.Subject)
	return nil
}

func NewLogSender(logger logging.LoggerInterface) *LogSender {
	return &LogSender{logger: logger}
}

// NewSender picks the SMTP sender when a relay host is configured.
func NewSender(cfg SMTPConfig, logger logging.LoggerInterface) SenderInterface {
	if cfg.Host == "" {
		return NewLogSender(logger)
	}
	return NewSMTPSender(cfg, logger)
}
