package slog

import (
	"context"
	"log/slog"

	"github.com/unkn0wn-root/pagecache"
)

// Adapter bridges a *slog.Logger onto the pagecache Logger port.
type Adapter struct{ L *slog.Logger }

var _ pagecache.Logger = Adapter{}

func (a Adapter) Debug(msg string, f pagecache.Fields) { a.log(slog.LevelDebug, msg, f) }
func (a Adapter) Info(msg string, f pagecache.Fields)  { a.log(slog.LevelInfo, msg, f) }
func (a Adapter) Warn(msg string, f pagecache.Fields)  { a.log(slog.LevelWarn, msg, f) }
func (a Adapter) Error(msg string, f pagecache.Fields) { a.log(slog.LevelError, msg, f) }

func (a Adapter) log(lvl slog.Level, msg string, f pagecache.Fields) {
	args := make([]any, 0, len(f)*2)
	for k, v := range f {
		args = append(args, k, v)
	}
	a.L.Log(context.Background(), lvl, msg, args...)
}
