// Package errors provides structured errors for the prayer loadouts module.
//
// Every internal layer (config store backends, the loadout repository, the
// orchestrators) returns errors built here. The plugin handler is the only
// layer that turns them into the plain bool/no-op results the panel expects.
//
// # Basic Usage
//
// Creating errors:
//
//	err := errors.NotFound("loadout not found")
//	err := errors.InvalidArgumentf("invalid book id: %d", book)
//
// Adding metadata:
//
//	err := errors.NotFoundf("no data for book %d", book).
//	    WithMeta("loadout", name)
//
// Wrapping errors keeps the original code:
//
//	if err := store.Apply(ctx, group, changes); err != nil {
//	    return errors.Wrap(err, "failed to save loadout")
//	}
//
// # Error Checking
//
//	if errors.IsNotFound(err) {
//	    // the loadout has nothing saved for the current book
//	}
//
// # Layer-Specific Guidelines
//
// Store and repository layer:
//   - Return NotFound / AlreadyExists for missing or conflicting names
//   - Wrap backend errors with context (they become Internal)
//
// Orchestrator layer:
//   - Return InvalidArgument for blank names
//   - Return FailedPrecondition when not in session or the prayer feature is off
//
// Handler layer:
//   - Log the error and report false / do nothing
package errors
