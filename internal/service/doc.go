// Package service contains the application-specific use cases. It sits
// between the HTTP layer and the todo store (defined in internal/store),
// applying each operation to the store and announcing applied mutations
// through an events.EventEmitter.
//
// Services receive their dependencies through constructor injection and
// return store errors unchanged, so callers can match them with errors.Is
// and errors.As.
package service
