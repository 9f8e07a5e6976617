// Package events provides types and interfaces for broadcasting todo changes.
//
// Services emit a TodoEvent after each applied mutation without knowing
// which handlers will process it. The primary components are:
// - TodoEvent: describes one applied change to a todo
// - EventHandler: interface for components that can handle events
// - EventEmitter: interface for components that can emit events
// - InMemoryEventEmitter: synchronous fan-out to registered handlers
// - LogEventHandler: records every event in the structured log
package events
