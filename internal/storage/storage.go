package storage

import (
	"context"
	"fmt"
	"time"
)

const exportExt = ".md"

// Saver stores a generated script and reports where it ended up.
type Saver interface {
	Save(ctx context.Context, name, text string) (string, error)
	List(ctx context.Context) ([]string, error)
}

func FileName(action string, at time.Time) string {
	return fmt.Sprintf("%s-%s%s", action, at.Format("20060102-150405"), exportExt)
}
