// Package pocketbook implements a single-user personal finance tracker.
//
// All state lives in one local JSON key-value store file: the registered
// user's credentials, the login flag, and the transaction collection.
// The package provides the domain core (record store, transaction ledger,
// session gate, currency converter); the cmd package wires it into the
// pkb command line tool.
package pocketbook
