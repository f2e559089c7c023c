// Package theme persists a light/dark preference and reflects it onto a
// document root element through the data-theme attribute.
//
// A Manager is wired to a key-value Store and the root Element of a page:
//
//	m := theme.NewManager(st, doc.Root())
//	if err := m.EnsureDefault(); err != nil {
//		return err
//	}
//	m.BindReady(doc)
//	doc.Ready()
//
// Toggle flips the preference shown on the element and persists it.
package theme
