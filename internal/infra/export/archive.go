package export

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// buckets
	_ "gocloud.dev/blob/memblob"  // mem:// buckets

	"rxconsole/config"
	"rxconsole/internal/domain/service"
)

// bucketArchive stores a copy of every export in a gocloud bucket.
type bucketArchive struct {
	bucket *blob.Bucket
}

// NewBucketArchive wraps an open bucket.
func NewBucketArchive(bucket *blob.Bucket) service.ExportArchive {
	return &bucketArchive{bucket: bucket}
}

func (a *bucketArchive) Save(ctx context.Context, key, contentType string, data []byte) error {
	if err := a.bucket.WriteAll(ctx, key, data, &blob.WriterOptions{ContentType: contentType}); err != nil {
		return errors.Wrapf(err, "archive %s", key)
	}

	return nil
}

// ArchiveParams holds dependencies for the export archive, injected by Fx
type ArchiveParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewArchive opens export.archiveUrl. Archiving is disabled when the url is empty.
func NewArchive(params ArchiveParams) (service.ExportArchive, error) {
	url := params.Config.Export.ArchiveURL
	if url == "" {
		params.Logger.Info("Export archive not configured")

		return nil, nil
	}

	bucket, err := blob.OpenBucket(params.Ctx, url)
	if err != nil {
		return nil, errors.Wrapf(err, "open export archive %s", url)
	}
	params.Logger.Info("Archiving exports", slog.String("url", url))

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return bucket.Close()
		},
	})

	return NewBucketArchive(bucket), nil
}

// Exporters returns the writers for every supported format.
func Exporters(cfg *config.Config) []service.Exporter {
	return []service.Exporter{
		NewCSVExporter(),
		NewPDFExporter(cfg.Export.PDFTitle),
		NewXLSXExporter(),
	}
}

// Module provides the export FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewArchive, Exporters),
)
