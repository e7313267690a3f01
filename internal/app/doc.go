// Package app provides the application context for rackline.
//
// This package manages application-wide dependencies using the functional
// options pattern, enabling easy testing through dependency injection.
//
// # App Context
//
// The App struct holds core dependencies:
//
//	type App struct {
//	    Rules []schema.Rule // Schema resolution rules
//	    Out   io.Writer     // Table and preview output
//	}
//
// # Creating an App
//
// Use New with functional options:
//
//	// Production usage
//	app := app.New()
//
//	// Testing with custom dependencies
//	app := app.New(
//	    app.WithRules(customRules),
//	    app.WithOut(&buf),
//	)
package app
