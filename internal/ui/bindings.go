// Package ui models the page's interaction behavior as plain state
// machines: module collapse, the mobile menu, scroll tracking, and the
// hero counters. Every transition is testable without a browser; the
// script shipped with the page mirrors these rules and the fragment
// endpoints apply them directly.
package ui

import (
	"fmt"
	"strings"
)

// Binding declares one wiring between a page event and the state
// transitions it drives. The table is the single description of the
// page's event handling.
type Binding struct {
	Event   string   // DOM event name, or "visible" for intersection
	Target  string   // element id, or a selector for class-based targets
	Actions []string // transitions applied, in order
}

var knownActions = map[string]bool{
	"menu.toggle":        true,
	"menu.close":         true,
	"scroll.smooth":      true,
	"scroll.top":         true,
	"navbar.scrolled":    true,
	"nav.active-section": true,
	"backtotop.visible":  true,
	"module.toggle":      true,
	"counter.start":      true,
}

// Bindings returns the full wiring table for the page.
func Bindings() []Binding {
	return []Binding{
		{Event: "click", Target: "navToggle", Actions: []string{"menu.toggle"}},
		{Event: "click", Target: ".nav-link", Actions: []string{"menu.close", "scroll.smooth"}},
		{Event: "click", Target: `a[href^="#"]`, Actions: []string{"scroll.smooth"}},
		{Event: "click", Target: "backToTop", Actions: []string{"scroll.top"}},
		{Event: "click", Target: ".module-header", Actions: []string{"module.toggle"}},
		{Event: "scroll", Target: "window", Actions: []string{"navbar.scrolled", "nav.active-section", "backtotop.visible"}},
		{Event: "visible", Target: ".stat-number", Actions: []string{"counter.start"}},
	}
}

// Validate checks a binding table: every (event, target) pair unique,
// every action known, no empty rows.
func Validate(bindings []Binding) error {
	seen := make(map[string]bool, len(bindings))
	for _, b := range bindings {
		if b.Event == "" || b.Target == "" {
			return fmt.Errorf("ui: binding with empty event or target: %+v", b)
		}
		key := b.Event + "|" + b.Target
		if seen[key] {
			return fmt.Errorf("ui: duplicate binding for %s on %s", b.Event, b.Target)
		}
		seen[key] = true
		if len(b.Actions) == 0 {
			return fmt.Errorf("ui: binding %s on %s has no actions", b.Event, b.Target)
		}
		for _, a := range b.Actions {
			if !knownActions[a] {
				return fmt.Errorf("ui: unknown action %q for %s on %s", a, b.Event, b.Target)
			}
		}
	}
	return nil
}

// IDTargets returns the element ids referenced by the table, so the
// rendered page can be checked for them. Class selectors, attribute
// selectors and the window pseudo-target are not ids.
func IDTargets(bindings []Binding) []string {
	var ids []string
	for _, b := range bindings {
		if b.Target == "window" || strings.HasPrefix(b.Target, ".") || strings.Contains(b.Target, "[") {
			continue
		}
		ids = append(ids, b.Target)
	}
	return ids
}
