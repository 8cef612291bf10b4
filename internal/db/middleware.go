// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package db

import (
	"context"
	"fmt"
	"net/http"

	"github.com/canonical/tenant-access/internal/logging"
)

// TransactionMiddleware runs every mutating request in one lazy transaction, so that a group
// change and the grants, reminders and cache invalidations it triggers land together.
// The transaction commits when the handler answers with a status below 400 and rolls back
// otherwise, OnCommit callbacks registered by the handler only run after a commit.
func TransactionMiddleware(db DBClientInterface, logger logging.LoggerInterface) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.Method {
			case http.MethodGet, http.MethodHead, http.MethodOptions:
				next.ServeHTTP(w, r)
				return
			}

			rw := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			err := db.WithTx(r.Context(), func(txCtx context.Context) error {
				next.ServeHTTP(rw, r.WithContext(txCtx))

				if rw.status >= http.StatusBadRequest {
					return fmt.Errorf("request failed with status %d", rw.status)
				}

				return nil
			})
			if err == nil {
				return
			}

			logger.Debugf("transaction rolled back for %s %s: %v", r.Method, r.URL.Path, err)

			// the handler answered with success but the commit failed
			if rw.status < http.StatusBadRequest {
				logger.Errorf("commit failed after %s %s answered %d: %v", r.Method, r.URL.Path, rw.status, err)
			}
		})
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (rw *statusRecorder) WriteHeader(code int) {
	rw.status = code
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *statusRecorder) Unwrap() http.ResponseWriter {
	return rw.ResponseWriter
}
