// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"go.uber.org/zap"
)

const securityAppID = "tenant-access"

type SecurityLogger struct {
	l *zap.Logger
}

func (s *SecurityLogger) SystemStartup() {
	s.l.Info("system startup", zap.String("event", "sys_startup"))
}

func (s *SecurityLogger) SystemShutdown() {
	s.l.Info("system shutdown", zap.String("event", "sys_shutdown"))
}

func (s *SecurityLogger) AuthzFailure(userID, resource string) {
	s.l.Warn(
		"authorization failure",
		zap.String("event", "authz_fail:"+userID+","+resource),
		zap.String("user_id", userID),
		zap.String("resource", resource),
	)
}

func (s *SecurityLogger) AdminAction(userID, action, resource string) {
	s.l.Info(
		"administrative action",
		zap.String("event", "admin_action:"+userID+","+action+","+resource),
		zap.String("user_id", userID),
		zap.String("action", action),
		zap.String("resource", resource),
	)
}

func NewSecurityLogger(base *zap.Logger) *SecurityLogger {
	return &SecurityLogger{
		l: base.With(
			zap.Bool("security", true),
			zap.String("appid", securityAppID),
		),
	}
}
