// Package storage provides the run store for GravSweep.
//
// Evaluation runs are persisted in a Badger key-value store under
// run-ID keys, JSON-encoded. A background loop runs Badger's value-log
// garbage collection and keeps the store-size gauge current. Export and
// import move runs in and out as passphrase-sealed archives.
package storage
