// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

// Package jgram implements a validating parser for JSON documents.
//
// # Parsing
//
// The Parse function checks its input against the JSON grammar and, if the
// input is well-formed, classifies the shape of its root value. A document
// must have an object or an array at its root; primitive values (strings,
// numbers, Booleans, null) are valid JSON values but are rejected as
// document roots:
//
//	doc, err := jgram.Parse(`{"name": "test"}`)
//	if err != nil {
//	   log.Fatalf("Parse failed: %v", err)
//	}
//	fmt.Println(doc.Root) // object
//
// In case of a grammar violation, the returned error has concrete type
// [*SyntaxError] and reports the furthest byte offset the parser reached
// before failing, which is generally the most useful place to point a human.
//
// # Validity checking
//
// The IsValid function answers the strictly broader question of whether the
// input conforms to the JSON grammar at all, without the document root
// restriction:
//
//	jgram.IsValid(`true`) // true: valid JSON grammar
//	jgram.Parse(`true`)   // fails: primitive root
//
// This asymmetry is intentional. IsValid checks grammar conformance; Parse
// additionally enforces the document-root policy.
//
// # Options
//
// A Parser value carries parsing options. The zero Parser applies the strict
// JSON grammar with a default nesting limit; the AllowComments and
// AllowTrailingCommas options enable the common non-standard extensions:
//
//	p := jgram.Parser{AllowComments: true}
//	doc, err := p.Parse(input)
//
// Parsers hold no state between calls, so a single Parser may be shared
// freely among goroutines.
package jgram
