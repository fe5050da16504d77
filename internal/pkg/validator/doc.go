// Package validator checks request structs against `validate` struct tags.
//
// Usecases depend on the Validator interface. The go-playground/validator v10
// implementation translates failures into English messages keyed by the
// snake_case field name, which the router renders as the "error" map of a
// 400 response.
package validator
