/*
Package global holds a number of application level constants and
shared configuration resources for the itemq application.
*/
package global

import (
	"time"
)

// buildRevision stores the commit in the git repository at build time
// and is specified with -ldflags at build time
var buildRevision = ""

var buildTimeString = ""

func BuildRevision() string {
	if buildRevision == "" {
		return "<UNKNOWN>"
	}
	return buildRevision
}

// BuildTime returns the time the binary was built, or the zero time
// when the build did not set it.
func BuildTime() time.Time {
	ts, err := time.Parse(time.DateTime, buildTimeString)
	if err != nil {
		return time.Time{}
	}
	return ts
}
