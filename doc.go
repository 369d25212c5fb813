// Package osdsl provides a typed domain model for the OpenSearch query DSL.
//
// The subpackages cover the request and response surfaces a search
// application touches: query builds the polymorphic query tree, aggs builds
// aggregation request trees and decodes their responses, bulk encodes
// newline-delimited bulk batches, search models the search and multi-search
// bodies, and client wraps a signed HTTP transport with typed namespaces.
//
// The root package holds the error taxonomy and the small wire value types
// shared by everything else.
package osdsl
