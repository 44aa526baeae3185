// Package contracts defines the payload and UI types shared between the
// admin console backends and the dashboard front end.
//
// The types are plain JSON structs. src/cmd/contracts-gen turns this package
// into a TypeScript module so both sides use the same definitions.
package contracts
