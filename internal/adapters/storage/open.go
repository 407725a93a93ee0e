// Package storage elige el adapter de contenido según la config.
package storage

import (
	"fmt"

	fsstore "ai-nadsenci-web/internal/adapters/storage/fs"
	pg "ai-nadsenci-web/internal/adapters/storage/postgres"
	"ai-nadsenci-web/internal/adapters/storage/remote"
	"ai-nadsenci-web/internal/platform/config"
	"ai-nadsenci-web/internal/platform/httpclient"
	"ai-nadsenci-web/internal/ports/source"
)

// Open devuelve el Source configurado y la función que libera sus
// recursos (la conexión a Postgres); el caller debe llamarla al cerrar.
func Open(c config.ContentConfig) (source.Source, func(), error) {
	noop := func() {}
	switch c.Source {
	case config.SourceHTTP:
		client, err := httpclient.NewWithBaseURL(c.BaseURL, c.Timeout)
		if err != nil {
			return nil, noop, fmt.Errorf("http source: %w", err)
		}
		return remote.NewContentSource(client), noop, nil
	case config.SourcePostgres:
		db, err := pg.Open(c.DSN)
		if err != nil {
			return nil, noop, fmt.Errorf("postgres source: %w", err)
		}
		return pg.NewContentSource(db), func() { _ = db.Close() }, nil
	case config.SourceFS, "":
		return fsstore.NewContentSource(c.Dir), noop, nil
	default:
		return nil, noop, fmt.Errorf("unsupported content source %q", c.Source)
	}
}
