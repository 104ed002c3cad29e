// Package openapi derives rule sets from OpenAPI 3 schemas so services that
// already publish a contract do not have to restate their constraints by
// hand. Only the validation-relevant subset of the schema is read: required
// lists, length bounds, patterns, email/uri formats and numeric limits.
package openapi
