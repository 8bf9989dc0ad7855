package collections

import (
	log "github.com/sirupsen/logrus"
)

type logFields = log.Fields

var logger = log.WithFields(log.Fields{"pkg": "collections"})

// SetLogger replaces the entry used to report fail-fast detections.
// A nil entry restores the default.
func SetLogger(entry *log.Entry) {
	if entry == nil {
		entry = log.WithFields(log.Fields{"pkg": "collections"})
	}
	logger = entry
}
