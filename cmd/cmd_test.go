// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

func TestMigrateArgs(t *testing.T) {
	testCases := []struct {
		name      string
		args      []string
		expectErr bool
	}{
		{name: "no arguments", args: nil},
		{name: "up", args: []string{"up"}},
		{name: "status", args: []string{"status"}},
		{name: "check", args: []string{"check"}},
		{name: "down to version", args: []string{"down", "3"}},
		{name: "unknown command", args: []string{"sideways"}, expectErr: true},
		{name: "version with up", args: []string{"up", "3"}, expectErr: true},
		{name: "negative version", args: []string{"down", "-1"}, expectErr: true},
		{name: "too many arguments", args: []string{"down", "1", "2"}, expectErr: true},
	}

	validate := customValidArgs()

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := validate(&cobra.Command{}, tc.args)

			if tc.expectErr && err == nil {
				t.Fatal("expected an error")
			}
			if !tc.expectErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestSchema(t *testing.T) {
	testCases := []struct {
		plane     string
		expectErr bool
	}{
		{plane: ""},
		{plane: "controlplane"},
		{plane: "dataplane"},
		{plane: "warehouse", expectErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.plane, func(t *testing.T) {
			source, err := schema(tc.plane)

			if tc.expectErr {
				if err == nil {
					t.Fatal("expected an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if source == nil {
				t.Fatal("expected a migration source")
			}
		})
	}
}

func TestRender(t *testing.T) {
	rows := []struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}{{ID: "t1", Name: "Acme"}}

	table := func(w io.Writer) {
		for _, r := range rows {
			fmt.Fprintf(w, "%s\t%s\n", r.ID, r.Name)
		}
	}

	var text bytes.Buffer
	if err := render(&text, "text", rows, "ID\tNAME", table); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(text.String()), "\n")
	if len(lines) != 2 || !strings.HasPrefix(lines[0], "ID") || !strings.HasPrefix(lines[1], "t1") {
		t.Fatalf("unexpected table output %q", text.String())
	}

	var out bytes.Buffer
	if err := render(&out, "json", rows, "ID\tNAME", table); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var decoded []map[string]string
	if err := json.Unmarshal(out.Bytes(), &decoded); err != nil {
		t.Fatalf("expected json output, got %q: %v", out.String(), err)
	}
	if len(decoded) != 1 || decoded[0]["name"] != "Acme" {
		t.Fatalf("unexpected json output %v", decoded)
	}
}

func TestPrintVersion(t *testing.T) {
	var text bytes.Buffer
	if err := printVersion(&text, "text"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text.String() != "App Version: dev\n" {
		t.Fatalf("unexpected output %q", text.String())
	}

	var out bytes.Buffer
	if err := printVersion(&out, "json"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var decoded versionOutput
	if err := json.Unmarshal(out.Bytes(), &decoded); err != nil {
		t.Fatalf("expected json output, got %q: %v", out.String(), err)
	}
	if decoded.Version != "dev" || decoded.GoVersion == "" {
		t.Fatalf("unexpected version %+v", decoded)
	}
}
