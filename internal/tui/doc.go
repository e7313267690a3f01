// Package tui provides the interactive setup wizard for rackline.
//
// This package uses the Bubble Tea framework to collect a rack
// configuration from the operator: per-type bin capacities, level names,
// the rack name prefix, and the label format.
//
// # Setup Wizard
//
// The wizard walks through the detected container types and produces a
// configuration ready to save:
//
//	bins := allocate.DetectBins(items)
//	cfg, err := tui.RunSetup(bins)
//	if err != nil {
//	    // terminal failure
//	}
//	if cfg == nil {
//	    // user cancelled
//	}
//	config.Save(path, cfg)
//
// Each detected container type becomes one numbered rack ("Rack 01",
// "Rack 02", ...) in detection order, all sharing the collected level
// names. Esc steps back (and cancels on the first step), Ctrl+C cancels
// anywhere, and the confirm step accepts Enter/y or restarts on n.
//
// # Dependencies
//
// Uses the Charm libraries:
//   - github.com/charmbracelet/bubbletea - TUI framework
//   - github.com/charmbracelet/bubbles - UI components
//   - github.com/charmbracelet/lipgloss - Styling
package tui
