// Package cli implements the interactive GrandV client.
//
// The entry point is App, constructed by NewApp from a config.Config and run
// via (*App).Run. The REPL (see runREPL) reads one command per line and
// dispatches to App methods; command availability depends on the session
// state, so account commands are refused until the user signs in.
//
// Session lifecycle
//
// On startup the session is rehydrated synchronously from the local SQLite
// credential store. Login and registration go through services.Session,
// which persists credentials and emits success notifications; failures are
// rendered inline under the prompt that caused them.
package cli
