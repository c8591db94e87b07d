// Package sections contains the landing page regions. Each section is a pure
// function of its props; callbacks arrive as action refs bound by the page.
package sections
