// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package migrations

import (
	"embed"
	"io/fs"
)

//go:embed controlplane/*.sql dataplane/*.sql
var EmbedMigrations embed.FS

// ControlPlane holds the schema of the tenant, membership, group and grant tables.
func ControlPlane() fs.FS {
	return mustSub("controlplane")
}

// DataPlane holds the schema of the business collections, applied to the shared
// database and to every dedicated tenant database.
func DataPlane() fs.FS {
	return mustSub("dataplane")
}

func mustSub(dir string) fs.FS {
	sub, err := fs.Sub(EmbedMigrations, dir)
	if err != nil {
		panic(err)
	}
	return sub
}
