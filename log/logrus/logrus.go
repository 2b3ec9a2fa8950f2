package logrus

import (
	"github.com/sirupsen/logrus"

	"github.com/unkn0wn-root/pagecache"
)

// Adapter bridges a *logrus.Entry onto the pagecache Logger port.
type Adapter struct{ E *logrus.Entry }

var _ pagecache.Logger = Adapter{}

func (a Adapter) Debug(msg string, f pagecache.Fields) {
	a.E.WithFields(logrus.Fields(f)).Debug(msg)
}
func (a Adapter) Info(msg string, f pagecache.Fields) { a.E.WithFields(logrus.Fields(f)).Info(msg) }
func (a Adapter) Warn(msg string, f pagecache.Fields) { a.E.WithFields(logrus.Fields(f)).Warn(msg) }
func (a Adapter) Error(msg string, f pagecache.Fields) {
	a.E.WithFields(logrus.Fields(f)).Error(msg)
}
