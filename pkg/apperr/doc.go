// Package apperr provides structured error handling for the Chatr backend.
//
// Services return *apperr.Error values (or sentinel errors wrapped into
// them) carrying a typed Code; HTTP handlers translate the code into a
// status via StatusForCode and render the message as the response body.
//
// Creating errors:
//
//	return apperr.New(apperr.CodeNotFound, "User not found")
//	return apperr.Wrap(err, apperr.CodeStore, "SQL Error")
//
// Inspecting errors:
//
//	if apperr.IsCode(err, apperr.CodeEmailExists) { ... }
//	status := apperr.StatusForCode(apperr.GetCode(err))
package apperr
