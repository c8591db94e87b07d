// Package ui holds the leaf components every page section is built from:
// the landmark Section, the call-to-action Button, glyph icons and the page Layout.
package ui
