// Package topicmgr keeps the catalog of message bus topics. Every typed event
// registers itself here when it is defined, so tooling can list what the
// application publishes without starting it.
package topicmgr
