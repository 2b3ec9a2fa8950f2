package zap

import (
	"go.uber.org/zap"

	"github.com/unkn0wn-root/pagecache"
)

// Adapter bridges a *zap.Logger onto the pagecache Logger port.
type Adapter struct{ L *zap.Logger }

var _ pagecache.Logger = Adapter{}

func (a Adapter) Debug(msg string, f pagecache.Fields) { a.L.Debug(msg, zf(f)...) }
func (a Adapter) Info(msg string, f pagecache.Fields)  { a.L.Info(msg, zf(f)...) }
func (a Adapter) Warn(msg string, f pagecache.Fields)  { a.L.Warn(msg, zf(f)...) }
func (a Adapter) Error(msg string, f pagecache.Fields) { a.L.Error(msg, zf(f)...) }

func zf(f pagecache.Fields) []zap.Field {
	if len(f) == 0 {
		return nil
	}
	out := make([]zap.Field, 0, len(f))
	for k, v := range f {
		out = append(out, zap.Any(k, v))
	}
	return out
}
