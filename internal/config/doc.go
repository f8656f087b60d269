// Package config provides YAML configuration for the builder generator.
//
// A minimal builder.yaml:
//
//	version: "1"
//	packages:
//	  - ./...
//
// With discovery on (the default), every struct carrying at least one
// `builder` field tag gets a generated builder in its own package. Records
// without any tags can be opted in explicitly:
//
//	records:
//	  - basic.Server
//	output:
//	  suffix: _builder.go
//	  coercion: true
package config
